package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_GenerateAndValidate(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	t.Run("round trip keeps user id and issue time", func(t *testing.T) {
		before := time.Now().Add(-time.Second)

		token, err := manager.GenerateToken("user-123")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := manager.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.UserID)
		require.NotNil(t, claims.IssuedAt)
		assert.True(t, claims.IssuedAt.Time.After(before))
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		other := NewJWTManager("different-secret", time.Hour)
		token, err := other.GenerateToken("user-123")
		require.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -time.Minute)
		token, err := expired.GenerateToken("user-123")
		require.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		claims, err := manager.ValidateToken("not.a.token")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}
