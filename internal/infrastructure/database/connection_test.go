package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tlogi/internal/shared/config"
)

func TestPoolLimits(t *testing.T) {
	t.Run("unset config falls back to the fixed defaults", func(t *testing.T) {
		open, idle, lifetime := poolLimits(&config.DatabaseConfig{})
		assert.Equal(t, defaultMaxOpenConns, open)
		assert.Equal(t, defaultMaxIdleConns, idle)
		assert.Equal(t, defaultConnMaxLifetimeMin*time.Minute, lifetime)
	})

	t.Run("config values win", func(t *testing.T) {
		open, idle, lifetime := poolLimits(&config.DatabaseConfig{
			MaxOpenConns:    4,
			MaxIdleConns:    2,
			ConnMaxLifetime: 10,
		})
		assert.Equal(t, 4, open)
		assert.Equal(t, 2, idle)
		assert.Equal(t, 10*time.Minute, lifetime)
	})

	t.Run("idle never exceeds open", func(t *testing.T) {
		open, idle, _ := poolLimits(&config.DatabaseConfig{MaxOpenConns: 3, MaxIdleConns: 8})
		assert.Equal(t, 3, open)
		assert.Equal(t, 3, idle)
	})
}
