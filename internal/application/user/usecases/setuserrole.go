package usecases

import (
	"context"

	"tlogi/internal/domain/user"
	"tlogi/internal/shared/errors"
	"tlogi/internal/shared/logger"
)

type SetUserRoleCommand struct {
	DiscordID string
	Role      string
	// GrantedBy is logged for the audit trail.
	GrantedBy string
}

type SetUserRoleResult struct {
	DiscordID string `json:"discord_id"`
	Role      string `json:"role"`
}

type SetUserRoleExecutor interface {
	Execute(ctx context.Context, cmd SetUserRoleCommand) (*SetUserRoleResult, error)
}

type SetUserRoleUseCase struct {
	grantRepo user.StaffGrantRepository
	logger    logger.Interface
}

func NewSetUserRoleUseCase(grantRepo user.StaffGrantRepository, logger logger.Interface) *SetUserRoleUseCase {
	return &SetUserRoleUseCase{grantRepo: grantRepo, logger: logger}
}

// Execute sets a user's dashboard access. Role "none" revokes the grant;
// revoking a user who never had one succeeds.
func (uc *SetUserRoleUseCase) Execute(ctx context.Context, cmd SetUserRoleCommand) (*SetUserRoleResult, error) {
	if cmd.DiscordID == "" {
		return nil, errors.NewValidationError("discord user ID is required")
	}

	level, err := user.ParseAccessLevel(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if level == user.AccessNone {
		if err := uc.grantRepo.Delete(ctx, cmd.DiscordID); err != nil {
			uc.logger.Errorw("failed to revoke staff grant", "discord_id", cmd.DiscordID, "error", err)
			return nil, errors.NewInternalError("failed to revoke access")
		}
	} else {
		grant, err := user.NewStaffGrant(cmd.DiscordID, level)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.grantRepo.Upsert(ctx, grant); err != nil {
			uc.logger.Errorw("failed to upsert staff grant", "discord_id", cmd.DiscordID, "error", err)
			return nil, errors.NewInternalError("failed to grant access")
		}
	}

	uc.logger.Infow("user role updated",
		"discord_id", cmd.DiscordID, "role", string(level), "granted_by", cmd.GrantedBy)

	return &SetUserRoleResult{DiscordID: cmd.DiscordID, Role: string(level)}, nil
}
