package usecases

import (
	"context"

	"tlogi/internal/domain/user"
	"tlogi/internal/shared/logger"
)

type mockSettingRepo struct {
	getFunc    func(ctx context.Context, key string) (string, error)
	setFunc    func(ctx context.Context, key, value string) error
	getAllFunc func(ctx context.Context) (map[string]string, error)
}

func (m *mockSettingRepo) Get(ctx context.Context, key string) (string, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return "", nil
}

func (m *mockSettingRepo) Set(ctx context.Context, key, value string) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value)
	}
	return nil
}

func (m *mockSettingRepo) GetAll(ctx context.Context) (map[string]string, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return map[string]string{}, nil
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
