package usecases

import (
	"context"
	"fmt"

	"tlogi/internal/domain/user"
	"tlogi/internal/shared/errors"
	"tlogi/internal/shared/logger"
)

type ResolveAccessCommand struct {
	DiscordID string
}

type ResolveAccessResult struct {
	DiscordID    string `json:"discord_id"`
	Username     string `json:"username"`
	Avatar       string `json:"avatar"`
	IsStaff      bool   `json:"is_staff"`
	IsSuperAdmin bool   `json:"is_super_admin"`
	// HasAccess is the dashboard gate: staff or super admin.
	HasAccess bool `json:"has_access"`
}

type ResolveAccessExecutor interface {
	Execute(ctx context.Context, cmd ResolveAccessCommand) (*ResolveAccessResult, error)
}

// ResolveAccessUseCase answers "who am I and what can I do" for a session.
// Grants are read fresh on every call so a revocation takes effect on the
// next request, not at the next login.
type ResolveAccessUseCase struct {
	userRepo  user.Repository
	grantRepo user.StaffGrantRepository
	logger    logger.Interface
}

func NewResolveAccessUseCase(
	userRepo user.Repository,
	grantRepo user.StaffGrantRepository,
	logger logger.Interface,
) *ResolveAccessUseCase {
	return &ResolveAccessUseCase{userRepo: userRepo, grantRepo: grantRepo, logger: logger}
}

func (uc *ResolveAccessUseCase) Execute(ctx context.Context, cmd ResolveAccessCommand) (*ResolveAccessResult, error) {
	if cmd.DiscordID == "" {
		return nil, errors.NewUnauthorizedError("not authenticated")
	}

	u, err := uc.userRepo.FindByDiscordID(ctx, cmd.DiscordID)
	if err != nil {
		uc.logger.Errorw("failed to look up user", "discord_id", cmd.DiscordID, "error", err)
		return nil, errors.NewInternalError("failed to look up user")
	}
	if u == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %s not found", cmd.DiscordID))
	}

	grant, err := uc.grantRepo.FindByDiscordID(ctx, cmd.DiscordID)
	if err != nil {
		uc.logger.Errorw("failed to look up staff grant", "discord_id", cmd.DiscordID, "error", err)
		return nil, errors.NewInternalError("failed to look up access")
	}

	result := &ResolveAccessResult{
		DiscordID: u.DiscordID(),
		Username:  u.Username(),
		Avatar:    u.Avatar(),
	}
	if grant != nil {
		result.IsStaff = true
		result.IsSuperAdmin = grant.IsSuperAdmin()
	}
	result.HasAccess = result.IsStaff || result.IsSuperAdmin
	return result, nil
}
