package usecases

import (
	"context"

	"tlogi/internal/domain/user"
	"tlogi/internal/shared/errors"
	"tlogi/internal/shared/logger"
)

type AuthenticateCommand struct {
	DiscordID string
	Username  string
	Avatar    string
}

type AuthenticateResult struct {
	DiscordID    string `json:"discord_id"`
	Username     string `json:"username"`
	Avatar       string `json:"avatar"`
	IsStaff      bool   `json:"is_staff"`
	IsSuperAdmin bool   `json:"is_super_admin"`
}

type AuthenticateExecutor interface {
	Execute(ctx context.Context, cmd AuthenticateCommand) (*AuthenticateResult, error)
}

// AuthenticateUseCase records a completed Discord OAuth login. The user row
// is upserted so username and avatar track what Discord currently reports.
type AuthenticateUseCase struct {
	userRepo  user.Repository
	grantRepo user.StaffGrantRepository
	logger    logger.Interface
}

func NewAuthenticateUseCase(
	userRepo user.Repository,
	grantRepo user.StaffGrantRepository,
	logger logger.Interface,
) *AuthenticateUseCase {
	return &AuthenticateUseCase{userRepo: userRepo, grantRepo: grantRepo, logger: logger}
}

func (uc *AuthenticateUseCase) Execute(ctx context.Context, cmd AuthenticateCommand) (*AuthenticateResult, error) {
	u, err := user.NewUser(cmd.DiscordID, cmd.Username, cmd.Avatar)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Upsert(ctx, u); err != nil {
		uc.logger.Errorw("failed to upsert user", "discord_id", cmd.DiscordID, "error", err)
		return nil, errors.NewInternalError("failed to record login")
	}

	grant, err := uc.grantRepo.FindByDiscordID(ctx, cmd.DiscordID)
	if err != nil {
		uc.logger.Errorw("failed to look up staff grant", "discord_id", cmd.DiscordID, "error", err)
		return nil, errors.NewInternalError("failed to look up access")
	}

	result := &AuthenticateResult{
		DiscordID: u.DiscordID(),
		Username:  u.Username(),
		Avatar:    u.Avatar(),
	}
	if grant != nil {
		result.IsStaff = true
		result.IsSuperAdmin = grant.IsSuperAdmin()
	}

	uc.logger.Infow("user authenticated", "discord_id", cmd.DiscordID, "is_staff", result.IsStaff)
	return result, nil
}
