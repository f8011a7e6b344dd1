package usecases

import (
	"context"
	"strings"

	"tlogi/internal/domain/setting"
	"tlogi/internal/domain/user"
	"tlogi/internal/shared/errors"
	"tlogi/internal/shared/logger"
)

type SetSiteNameCommand struct {
	// CallerID is the authenticated Discord user performing the change.
	CallerID string
	SiteName string
}

type SetSiteNameResult struct {
	SiteName string `json:"site_name"`
	// BecameSuperAdmin reports that this call was the onboarding bootstrap
	// and the caller now holds the super_admin grant.
	BecameSuperAdmin bool `json:"became_super_admin"`
}

type SetSiteNameExecutor interface {
	Execute(ctx context.Context, cmd SetSiteNameCommand) (*SetSiteNameResult, error)
}

// SetSiteNameUseCase stores the site name. While no staff exist yet, any
// authenticated user may set it and becomes the first super admin; once
// staff exist, only a super admin may change it.
type SetSiteNameUseCase struct {
	settingRepo setting.Repository
	grantRepo   user.StaffGrantRepository
	logger      logger.Interface
}

func NewSetSiteNameUseCase(
	settingRepo setting.Repository,
	grantRepo user.StaffGrantRepository,
	logger logger.Interface,
) *SetSiteNameUseCase {
	return &SetSiteNameUseCase{settingRepo: settingRepo, grantRepo: grantRepo, logger: logger}
}

func (uc *SetSiteNameUseCase) Execute(ctx context.Context, cmd SetSiteNameCommand) (*SetSiteNameResult, error) {
	if cmd.CallerID == "" {
		return nil, errors.NewUnauthorizedError("not authenticated")
	}

	name := strings.TrimSpace(cmd.SiteName)
	if name == "" {
		return nil, errors.NewValidationError("site name is required")
	}
	if len(name) > setting.MaxSiteNameLength {
		name = name[:setting.MaxSiteNameLength]
	}

	// Count-then-grant is a pre-check, not a transaction: two concurrent
	// first-time setters can both pass and both end up super admins.
	staffCount, err := uc.grantRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count staff", "error", err)
		return nil, errors.NewInternalError("failed to check staff")
	}

	bootstrap := staffCount == 0
	if !bootstrap {
		grant, err := uc.grantRepo.FindByDiscordID(ctx, cmd.CallerID)
		if err != nil {
			uc.logger.Errorw("failed to look up staff grant", "discord_id", cmd.CallerID, "error", err)
			return nil, errors.NewInternalError("failed to look up access")
		}
		if grant == nil || !grant.IsSuperAdmin() {
			return nil, errors.NewForbiddenError("super admin access required")
		}
	}

	if err := uc.settingRepo.Set(ctx, setting.KeySiteName, name); err != nil {
		uc.logger.Errorw("failed to store site name", "error", err)
		return nil, errors.NewInternalError("failed to store site name")
	}

	if bootstrap {
		grant, err := user.NewStaffGrant(cmd.CallerID, user.AccessSuperAdmin)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.grantRepo.Upsert(ctx, grant); err != nil {
			uc.logger.Errorw("failed to grant bootstrap super admin", "discord_id", cmd.CallerID, "error", err)
			return nil, errors.NewInternalError("failed to grant access")
		}
		uc.logger.Infow("bootstrap super admin granted", "discord_id", cmd.CallerID)
	}

	uc.logger.Infow("site name updated", "site_name", name, "updated_by", cmd.CallerID)

	return &SetSiteNameResult{SiteName: name, BecameSuperAdmin: bootstrap}, nil
}
