// File: internal/common/errors_test.go
package common

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDetailsDoesNotMutateSentinel(t *testing.T) {
	detailed := ErrConflict.WithDetails("Email already registered.")

	assert.Equal(t, "Email already registered.", detailed.Details)
	assert.Nil(t, ErrConflict.Details, "sentinel must stay untouched")
	assert.Equal(t, ErrConflict.Code, detailed.Code)
	assert.Equal(t, http.StatusConflict, detailed.StatusCode)
}

func TestErrorsIsMatchesAcrossClones(t *testing.T) {
	detailed := ErrUnauthorized.WithDetails("Invalid email or password.")

	assert.ErrorIs(t, detailed, ErrUnauthorized)
	assert.NotErrorIs(t, detailed, ErrForbidden)
	assert.NotErrorIs(t, errors.New("plain"), ErrUnauthorized)
}

func TestIsAPIError(t *testing.T) {
	apiErr, ok := IsAPIError(ErrNotFound.WithDetails("Post not found."))
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)

	_, ok = IsAPIError(errors.New("not an api error"))
	assert.False(t, ok)
}
