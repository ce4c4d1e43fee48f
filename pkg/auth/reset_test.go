package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResetToken(t *testing.T) {
	raw, hashed, err := NewResetToken()

	require.NoError(t, err)
	assert.Len(t, raw, 64) // 32 random bytes, hex encoded
	assert.NotEqual(t, raw, hashed)

	// The stored hash must be reproducible from the raw token.
	assert.Equal(t, hashed, HashResetToken(raw))
}

func TestNewResetToken_Unique(t *testing.T) {
	raw1, _, err := NewResetToken()
	require.NoError(t, err)
	raw2, _, err := NewResetToken()
	require.NoError(t, err)

	assert.NotEqual(t, raw1, raw2)
}
