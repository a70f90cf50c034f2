// File: internal/auth/service_test.go
package auth

import (
	"testing"
	"time"

	"uniconnect_backend/internal/common"
	"uniconnect_backend/internal/config"
	"uniconnect_backend/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestTokenService(expiry time.Duration) *JWTService {
	cfg := &config.Config{
		JWTSecretKey:         "unit-test-signing-secret",
		JWTAccessTokenExpiry: expiry,
		JWTIssuer:            "uniconnect_backend",
	}
	return NewJWTService(cfg, zap.NewNop()).(*JWTService)
}

func testUser() *user.User {
	u := &user.User{
		Name:  "Token Holder",
		Email: "holder@example.com",
		Role:  common.RoleStudent,
	}
	u.ID = uuid.New()
	return u
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestTokenService(time.Hour)
	u := testUser()

	token, expiresAt, err := svc.GenerateToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, u.Email, claims.Email)
	assert.Equal(t, common.RoleStudent, claims.Role)
	assert.Equal(t, u.Email, claims.Subject)
	assert.Equal(t, "uniconnect_backend", claims.Issuer)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestTokenService(-time.Minute)

	token, _, err := svc.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err, "a token past its expiry must be rejected")
}

func TestValidateToken_TamperedSignature(t *testing.T) {
	svc := newTestTokenService(time.Hour)

	token, _, err := svc.GenerateToken(testUser())
	require.NoError(t, err)

	// Flip the last signature byte.
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = svc.ValidateToken(string(tampered))
	assert.Error(t, err)
}

func TestValidateToken_Malformed(t *testing.T) {
	svc := newTestTokenService(time.Hour)

	for _, bad := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		_, err := svc.ValidateToken(bad)
		assert.Error(t, err, "malformed token %q must be rejected", bad)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := newTestTokenService(time.Hour)
	verifier := NewJWTService(&config.Config{
		JWTSecretKey:         "a-different-secret",
		JWTAccessTokenExpiry: time.Hour,
		JWTIssuer:            "uniconnect_backend",
	}, zap.NewNop())

	token, _, err := issuer.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}
