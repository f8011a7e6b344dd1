package usecases

import (
	"context"

	"tlogi/internal/domain/user"
	"tlogi/internal/shared/logger"
)

type mockUserRepo struct {
	upsertFunc           func(ctx context.Context, u *user.User) error
	findByDiscordIDFunc  func(ctx context.Context, discordID string) (*user.User, error)
	findByDiscordIDsFunc func(ctx context.Context, discordIDs []string) (map[string]*user.User, error)
	listWithGrantsFunc   func(ctx context.Context) ([]*user.UserWithGrant, error)
}

func (m *mockUserRepo) Upsert(ctx context.Context, u *user.User) error {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepo) FindByDiscordID(ctx context.Context, discordID string) (*user.User, error) {
	if m.findByDiscordIDFunc != nil {
		return m.findByDiscordIDFunc(ctx, discordID)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByDiscordIDs(ctx context.Context, discordIDs []string) (map[string]*user.User, error) {
	if m.findByDiscordIDsFunc != nil {
		return m.findByDiscordIDsFunc(ctx, discordIDs)
	}
	return map[string]*user.User{}, nil
}

func (m *mockUserRepo) ListWithGrants(ctx context.Context) ([]*user.UserWithGrant, error) {
	if m.listWithGrantsFunc != nil {
		return m.listWithGrantsFunc(ctx)
	}
	return nil, nil
}

type mockGrantRepo struct {
	upsertFunc          func(ctx context.Context, g *user.StaffGrant) error
	deleteFunc          func(ctx context.Context, discordID string) error
	findByDiscordIDFunc func(ctx context.Context, discordID string) (*user.StaffGrant, error)
	countFunc           func(ctx context.Context) (int64, error)
}

func (m *mockGrantRepo) Upsert(ctx context.Context, g *user.StaffGrant) error {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, g)
	}
	return nil
}

func (m *mockGrantRepo) Delete(ctx context.Context, discordID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, discordID)
	}
	return nil
}

func (m *mockGrantRepo) FindByDiscordID(ctx context.Context, discordID string) (*user.StaffGrant, error) {
	if m.findByDiscordIDFunc != nil {
		return m.findByDiscordIDFunc(ctx, discordID)
	}
	return nil, nil
}

func (m *mockGrantRepo) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
