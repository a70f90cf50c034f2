// File: internal/auth/session.go
package auth

import (
	"uniconnect_backend/internal/shared"
)

// SessionIssuer wraps a resolved principal into a signed token plus the
// public-facing identity summary. It is a pure function of the principal
// apart from invoking the token codec, and is used identically after
// register, login and the OAuth callback so all three paths return the same
// shape.
type SessionIssuer struct {
	tokens shared.TokenService
}

// NewSessionIssuer creates a new session issuer.
func NewSessionIssuer(tokens shared.TokenService) *SessionIssuer {
	return &SessionIssuer{tokens: tokens}
}

// IssueFor produces the session result for a resolved principal.
func (si *SessionIssuer) IssueFor(u *shared.User) (*shared.SessionResult, error) {
	token, _, err := si.tokens.GenerateToken(u)
	if err != nil {
		return nil, err
	}
	return &shared.SessionResult{
		Token:        token,
		Email:        u.Email,
		Name:         u.Name,
		Role:         u.Role,
		UniversityID: u.UniversityID,
		UserID:       u.ID,
	}, nil
}
