package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tlogi/internal/domain/setting"
	"tlogi/internal/domain/user"
	"tlogi/internal/shared/errors"
)

func TestSetSiteNameUseCase_Execute(t *testing.T) {
	t.Run("first setter becomes super admin", func(t *testing.T) {
		var storedKey, storedValue string
		settingRepo := &mockSettingRepo{
			setFunc: func(ctx context.Context, key, value string) error {
				storedKey, storedValue = key, value
				return nil
			},
		}
		var granted *user.StaffGrant
		grantRepo := &mockGrantRepo{
			countFunc: func(ctx context.Context) (int64, error) { return 0, nil },
			upsertFunc: func(ctx context.Context, g *user.StaffGrant) error {
				granted = g
				return nil
			},
		}

		uc := NewSetSiteNameUseCase(settingRepo, grantRepo, &mockLogger{})
		result, err := uc.Execute(context.Background(), SetSiteNameCommand{
			CallerID: "user-1",
			SiteName: "  Acme Support  ",
		})

		require.NoError(t, err)
		assert.Equal(t, "Acme Support", result.SiteName)
		assert.True(t, result.BecameSuperAdmin)
		assert.Equal(t, setting.KeySiteName, storedKey)
		assert.Equal(t, "Acme Support", storedValue)
		require.NotNil(t, granted)
		assert.Equal(t, "user-1", granted.DiscordID())
		assert.True(t, granted.IsSuperAdmin())
	})

	t.Run("super admin can rename after onboarding", func(t *testing.T) {
		grant, err := user.NewStaffGrant("admin-1", user.AccessSuperAdmin)
		require.NoError(t, err)
		bootstrapped := false
		grantRepo := &mockGrantRepo{
			countFunc: func(ctx context.Context) (int64, error) { return 2, nil },
			findByDiscordIDFunc: func(ctx context.Context, id string) (*user.StaffGrant, error) {
				return grant, nil
			},
			upsertFunc: func(ctx context.Context, g *user.StaffGrant) error {
				bootstrapped = true
				return nil
			},
		}

		uc := NewSetSiteNameUseCase(&mockSettingRepo{}, grantRepo, &mockLogger{})
		result, err := uc.Execute(context.Background(), SetSiteNameCommand{
			CallerID: "admin-1",
			SiteName: "New Name",
		})

		require.NoError(t, err)
		assert.False(t, result.BecameSuperAdmin)
		assert.False(t, bootstrapped)
	})

	t.Run("plain staff cannot rename after onboarding", func(t *testing.T) {
		grant, err := user.NewStaffGrant("staff-1", user.AccessStaff)
		require.NoError(t, err)
		grantRepo := &mockGrantRepo{
			countFunc: func(ctx context.Context) (int64, error) { return 1, nil },
			findByDiscordIDFunc: func(ctx context.Context, id string) (*user.StaffGrant, error) {
				return grant, nil
			},
		}

		uc := NewSetSiteNameUseCase(&mockSettingRepo{}, grantRepo, &mockLogger{})
		_, err = uc.Execute(context.Background(), SetSiteNameCommand{
			CallerID: "staff-1",
			SiteName: "Takeover",
		})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("long names are truncated", func(t *testing.T) {
		var stored string
		settingRepo := &mockSettingRepo{
			setFunc: func(ctx context.Context, key, value string) error {
				stored = value
				return nil
			},
		}
		grantRepo := &mockGrantRepo{
			countFunc: func(ctx context.Context) (int64, error) { return 0, nil },
		}

		uc := NewSetSiteNameUseCase(settingRepo, grantRepo, &mockLogger{})
		_, err := uc.Execute(context.Background(), SetSiteNameCommand{
			CallerID: "user-1",
			SiteName: strings.Repeat("x", 150),
		})

		require.NoError(t, err)
		assert.Len(t, stored, setting.MaxSiteNameLength)
	})

	t.Run("blank name is a validation error", func(t *testing.T) {
		uc := NewSetSiteNameUseCase(&mockSettingRepo{}, &mockGrantRepo{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), SetSiteNameCommand{
			CallerID: "user-1",
			SiteName: "   ",
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}
