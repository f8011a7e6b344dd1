package setting

import (
	"context"
	"fmt"
	"strings"
)

// KeySiteName is the only setting currently stored. Onboarding is needed
// exactly while it is unset.
const KeySiteName = "site_name"

// MaxSiteNameLength caps the site name accepted from the dashboard.
const MaxSiteNameLength = 100

type Setting struct {
	key   string
	value string
}

func NewSetting(key, value string) (*Setting, error) {
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("setting key is required")
	}

	return &Setting{key: key, value: value}, nil
}

func (s *Setting) Key() string   { return s.key }
func (s *Setting) Value() string { return s.value }

type Repository interface {
	// Get returns "" with no error when the key is unset.
	Get(ctx context.Context, key string) (string, error)
	// Set upserts the key.
	Set(ctx context.Context, key, value string) error
	GetAll(ctx context.Context) (map[string]string, error)
}
