// File: internal/auth/session_test.go
package auth

import (
	"testing"
	"time"

	"uniconnect_backend/internal/common"
	"uniconnect_backend/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionIssuer_ResultShape(t *testing.T) {
	issuer := NewSessionIssuer(newTestTokenService(time.Hour))

	uniID := uuid.New()
	u := &user.User{
		Name:         "Session User",
		Email:        "session@example.com",
		Role:         common.RoleAlumni,
		UniversityID: &uniID,
	}
	u.ID = uuid.New()

	result, err := issuer.IssueFor(user.DBToShared(u))
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "session@example.com", result.Email)
	assert.Equal(t, "Session User", result.Name)
	assert.Equal(t, common.RoleAlumni, result.Role)
	require.NotNil(t, result.UniversityID)
	assert.Equal(t, uniID, *result.UniversityID)
	assert.Equal(t, u.ID, result.UserID)
}

// The register, login and OAuth paths all end in IssueFor, so the only
// variation allowed between them is the user record itself.
func TestSessionIssuer_SamePathForAllIssuance(t *testing.T) {
	tokens := newTestTokenService(time.Hour)
	issuer := NewSessionIssuer(tokens)

	u := &user.User{Name: "Any User", Email: "any@example.com", Role: common.RoleStudent}
	u.ID = uuid.New()

	first, err := issuer.IssueFor(user.DBToShared(u))
	require.NoError(t, err)
	second, err := issuer.IssueFor(user.DBToShared(u))
	require.NoError(t, err)

	assert.Equal(t, first.Email, second.Email)
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, first.Role, second.Role)
	assert.Equal(t, first.UserID, second.UserID)

	// Both tokens must verify to the same claims.
	firstClaims, err := tokens.ValidateToken(first.Token)
	require.NoError(t, err)
	secondClaims, err := tokens.ValidateToken(second.Token)
	require.NoError(t, err)
	assert.Equal(t, firstClaims.UserID, secondClaims.UserID)
	assert.Equal(t, firstClaims.Role, secondClaims.Role)
}

func TestSessionIssuer_NilUniversityOmitted(t *testing.T) {
	issuer := NewSessionIssuer(newTestTokenService(time.Hour))

	u := &user.User{Name: "No Uni", Email: "nouni@example.com", Role: common.RoleStudent}
	u.ID = uuid.New()

	result, err := issuer.IssueFor(user.DBToShared(u))
	require.NoError(t, err)
	assert.Nil(t, result.UniversityID)
}
