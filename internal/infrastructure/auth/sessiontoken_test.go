package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenService(t *testing.T) {
	svc := NewSessionTokenService("test-secret", 7)

	t.Run("round trip", func(t *testing.T) {
		token, err := svc.Generate("user-1", "alice")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.DiscordID)
		assert.Equal(t, "alice", claims.Username)
		require.NotNil(t, claims.ExpiresAt)
		assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token, err := svc.Generate("user-1", "alice")
		require.NoError(t, err)

		other := NewSessionTokenService("different-secret", 7)
		_, err = other.Verify(token)
		assert.Error(t, err)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := svc.Verify("not.a.token")
		assert.Error(t, err)
	})
}
