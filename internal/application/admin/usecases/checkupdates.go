package usecases

import (
	"context"

	"tlogi/internal/shared/logger"
	"tlogi/internal/shared/version"
)

// ChangelogEntry is one released version as published by the update feed.
type ChangelogEntry struct {
	Version string   `json:"version"`
	Date    string   `json:"date,omitempty"`
	Changes []string `json:"changes,omitempty"`
}

// UpdateFeed is the published feed document: the newest version plus the
// changelog history.
type UpdateFeed struct {
	Latest    string
	Changelog []ChangelogEntry
}

// FeedClient fetches the public update feed. A nil feed without error means
// no feed is configured.
type FeedClient interface {
	Fetch(ctx context.Context) (*UpdateFeed, error)
}

type CheckUpdatesCommand struct{}

type CheckUpdatesResult struct {
	CurrentVersion string           `json:"current_version"`
	LatestVersion  string           `json:"latest_version"`
	UpToDate       bool             `json:"up_to_date"`
	Changelog      []ChangelogEntry `json:"changelog"`
	// FeedError carries a human-readable reason when the feed was
	// unreachable; the endpoint still returns 200 with the current version.
	FeedError string `json:"feed_error,omitempty"`
}

type CheckUpdatesExecutor interface {
	Execute(ctx context.Context, cmd CheckUpdatesCommand) (*CheckUpdatesResult, error)
}

type CheckUpdatesUseCase struct {
	feed   FeedClient
	logger logger.Interface
}

func NewCheckUpdatesUseCase(feed FeedClient, logger logger.Interface) *CheckUpdatesUseCase {
	return &CheckUpdatesUseCase{feed: feed, logger: logger}
}

// Execute compares the running version against the update feed. Feed
// failures degrade to "up to date at the current version" with FeedError
// set, so the dashboard never breaks because a third-party endpoint is
// down.
func (uc *CheckUpdatesUseCase) Execute(ctx context.Context, cmd CheckUpdatesCommand) (*CheckUpdatesResult, error) {
	result := &CheckUpdatesResult{
		CurrentVersion: version.Current,
		LatestVersion:  version.Current,
		Changelog:      []ChangelogEntry{},
	}

	updateFeed, err := uc.feed.Fetch(ctx)
	if err != nil {
		uc.logger.Warnw("update feed unreachable", "error", err)
		result.FeedError = "Unable to reach update server."
		result.UpToDate = true
		return result, nil
	}

	if updateFeed != nil {
		if updateFeed.Latest != "" {
			result.LatestVersion = updateFeed.Latest
		}
		if updateFeed.Changelog != nil {
			result.Changelog = updateFeed.Changelog
		}
	}

	result.UpToDate = version.Compare(version.Current, result.LatestVersion) >= 0
	return result, nil
}
