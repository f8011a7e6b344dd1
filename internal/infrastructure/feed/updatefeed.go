package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tlogi/internal/application/admin/usecases"
)

// UpdateFeedClient reads the published release feed over HTTP. The feed is
// a single JSON document with the newest version and the changelog history.
type UpdateFeedClient struct {
	feedURL string
	client  *http.Client
}

type feedDocument struct {
	Latest    string `json:"latest"`
	Changelog []struct {
		Version string   `json:"version"`
		Date    string   `json:"date"`
		Changes []string `json:"changes"`
	} `json:"changelog"`
}

func NewUpdateFeedClient(feedURL string) *UpdateFeedClient {
	return &UpdateFeedClient{
		feedURL: feedURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch returns (nil, nil) when no feed URL is configured; the caller then
// reports the running version as up to date.
func (c *UpdateFeedClient) Fetch(ctx context.Context) (*usecases.UpdateFeed, error) {
	if c.feedURL == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch update feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("update feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read update feed: %w", err)
	}

	var doc feedDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse update feed: %w", err)
	}

	result := &usecases.UpdateFeed{Latest: doc.Latest}
	for _, entry := range doc.Changelog {
		result.Changelog = append(result.Changelog, usecases.ChangelogEntry{
			Version: entry.Version,
			Date:    entry.Date,
			Changes: entry.Changes,
		})
	}

	return result, nil
}
