package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tlogi/internal/shared/logger"
	"tlogi/internal/shared/version"
)

type mockFeedClient struct {
	fetchFunc func(ctx context.Context) (*UpdateFeed, error)
}

func (m *mockFeedClient) Fetch(ctx context.Context) (*UpdateFeed, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx)
	}
	return nil, nil
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

func TestCheckUpdatesUseCase_Execute(t *testing.T) {
	orig := version.Current
	version.Current = "1.2.0"
	t.Cleanup(func() { version.Current = orig })

	t.Run("newer release with changelog", func(t *testing.T) {
		feed := &mockFeedClient{
			fetchFunc: func(ctx context.Context) (*UpdateFeed, error) {
				return &UpdateFeed{
					Latest: "1.10.0",
					Changelog: []ChangelogEntry{
						{Version: "1.10.0", Date: "2026-08-01", Changes: []string{"Faster close flow"}},
						{Version: "1.3.0", Changes: []string{"Priority filters"}},
					},
				}, nil
			},
		}

		uc := NewCheckUpdatesUseCase(feed, &mockLogger{})
		result, err := uc.Execute(context.Background(), CheckUpdatesCommand{})

		require.NoError(t, err)
		// 1.10.0 > 1.2.0 numerically, segment by segment.
		assert.False(t, result.UpToDate)
		assert.Equal(t, "1.2.0", result.CurrentVersion)
		assert.Equal(t, "1.10.0", result.LatestVersion)
		require.Len(t, result.Changelog, 2)
		assert.Equal(t, "1.10.0", result.Changelog[0].Version)
		assert.Equal(t, []string{"Faster close flow"}, result.Changelog[0].Changes)
	})

	t.Run("same version is up to date", func(t *testing.T) {
		feed := &mockFeedClient{
			fetchFunc: func(ctx context.Context) (*UpdateFeed, error) {
				return &UpdateFeed{Latest: "1.2.0"}, nil
			},
		}

		uc := NewCheckUpdatesUseCase(feed, &mockLogger{})
		result, err := uc.Execute(context.Background(), CheckUpdatesCommand{})

		require.NoError(t, err)
		assert.True(t, result.UpToDate)
	})

	t.Run("older feed version is up to date", func(t *testing.T) {
		feed := &mockFeedClient{
			fetchFunc: func(ctx context.Context) (*UpdateFeed, error) {
				return &UpdateFeed{Latest: "1.1.9"}, nil
			},
		}

		uc := NewCheckUpdatesUseCase(feed, &mockLogger{})
		result, err := uc.Execute(context.Background(), CheckUpdatesCommand{})

		require.NoError(t, err)
		assert.True(t, result.UpToDate)
	})

	t.Run("feed failure degrades instead of erroring", func(t *testing.T) {
		feed := &mockFeedClient{
			fetchFunc: func(ctx context.Context) (*UpdateFeed, error) {
				return nil, fmt.Errorf("connection refused")
			},
		}

		uc := NewCheckUpdatesUseCase(feed, &mockLogger{})
		result, err := uc.Execute(context.Background(), CheckUpdatesCommand{})

		require.NoError(t, err)
		assert.True(t, result.UpToDate)
		assert.Equal(t, "1.2.0", result.CurrentVersion)
		assert.Equal(t, "1.2.0", result.LatestVersion)
		assert.NotNil(t, result.Changelog)
		assert.Empty(t, result.Changelog)
		assert.NotEmpty(t, result.FeedError)
	})

	t.Run("unconfigured feed reports current version without error", func(t *testing.T) {
		uc := NewCheckUpdatesUseCase(&mockFeedClient{}, &mockLogger{})
		result, err := uc.Execute(context.Background(), CheckUpdatesCommand{})

		require.NoError(t, err)
		assert.True(t, result.UpToDate)
		assert.Equal(t, "1.2.0", result.LatestVersion)
		assert.Empty(t, result.FeedError)
	})
}
