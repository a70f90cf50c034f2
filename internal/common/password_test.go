// File: internal/common/password_test.go
package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("a-strong-password")
	require.NoError(t, err)
	assert.NotEqual(t, "a-strong-password", hash)

	assert.True(t, CheckPasswordHash("a-strong-password", hash))
	assert.False(t, CheckPasswordHash("a-wrong-password", hash))
}

func TestCheckPasswordHash_UniformFailure(t *testing.T) {
	// A malformed digest fails exactly like a wrong password.
	assert.False(t, CheckPasswordHash("anything", "not-a-bcrypt-digest"))
	assert.False(t, CheckPasswordHash("anything", ""))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
