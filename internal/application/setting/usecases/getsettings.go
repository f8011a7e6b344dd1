package usecases

import (
	"context"

	"tlogi/internal/domain/setting"
	"tlogi/internal/domain/user"
	"tlogi/internal/shared/logger"
)

type GetSettingsCommand struct{}

type GetSettingsResult struct {
	SiteName string `json:"site_name"`
	HasStaff bool   `json:"has_staff"`
	// NeedsOnboarding is true until the site name has been set once.
	NeedsOnboarding bool `json:"needs_onboarding"`
}

type GetSettingsExecutor interface {
	Execute(ctx context.Context, cmd GetSettingsCommand) (*GetSettingsResult, error)
}

type GetSettingsUseCase struct {
	settingRepo setting.Repository
	grantRepo   user.StaffGrantRepository
	logger      logger.Interface
}

func NewGetSettingsUseCase(
	settingRepo setting.Repository,
	grantRepo user.StaffGrantRepository,
	logger logger.Interface,
) *GetSettingsUseCase {
	return &GetSettingsUseCase{settingRepo: settingRepo, grantRepo: grantRepo, logger: logger}
}

func (uc *GetSettingsUseCase) Execute(ctx context.Context, cmd GetSettingsCommand) (*GetSettingsResult, error) {
	siteName, err := uc.settingRepo.Get(ctx, setting.KeySiteName)
	if err != nil {
		uc.logger.Errorw("failed to read settings", "error", err)
		return nil, err
	}

	staffCount, err := uc.grantRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count staff", "error", err)
		return nil, err
	}

	return &GetSettingsResult{
		SiteName:        siteName,
		HasStaff:        staffCount > 0,
		NeedsOnboarding: siteName == "",
	}, nil
}
