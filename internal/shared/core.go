// File: internal/shared/core.go
package shared

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// User is the resolved principal passed between the identity core and the
// rest of the system. It never carries credential material.
type User struct {
	ID                uuid.UUID
	Name              string
	Email             string
	Role              string
	UniversityID      *uuid.UUID
	GraduationYear    *int
	ProfilePictureURL *string
	OAuthProvider     *string
	CreatedAt         time.Time
}

func (u *User) GetID() uuid.UUID {
	return u.ID
}

func (u *User) GetEmail() string {
	return u.Email
}

func (u *User) GetRole() string {
	return u.Role
}

// Claims represents the JWT claims structure.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// UserDataForToken abstracts the user data needed for token generation.
type UserDataForToken interface {
	GetID() uuid.UUID
	GetEmail() string
	GetRole() string
}

// TokenService defines the interface for session token operations. Issuance
// and verification are pure in-process computations, safe for concurrent use.
type TokenService interface {
	GenerateToken(userData UserDataForToken) (string, time.Time, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// SessionResult is the public-facing identity summary returned by every
// authentication path (register, login, OAuth callback).
type SessionResult struct {
	Token        string     `json:"token"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Role         string     `json:"role"`
	UniversityID *uuid.UUID `json:"university_id,omitempty"`
	UserID       uuid.UUID  `json:"user_id"`
}

// OAuthProfile holds the identity claims supplied by a federated provider
// callback.
type OAuthProfile struct {
	Provider   string
	ProviderID string
	Email      string
	Name       string
	PictureURL string
}
