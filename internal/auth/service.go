// File: internal/auth/service.go
package auth

import (
	"errors"
	"fmt"
	"time"

	"uniconnect_backend/internal/config"
	"uniconnect_backend/internal/shared"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// JWTService signs and verifies session tokens with the process-wide secret.
// The secret is injected once at construction and never rotated at runtime.
type JWTService struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewJWTService creates a new JWT token service.
func NewJWTService(cfg *config.Config, logger *zap.Logger) shared.TokenService {
	return &JWTService{cfg: cfg, logger: logger}
}

// GenerateToken issues a signed session token with the configured validity
// window. The expiry is absolute, baked in at issuance.
func (s *JWTService) GenerateToken(userData shared.UserDataForToken) (string, time.Time, error) {
	now := time.Now()
	expirationTime := now.Add(s.cfg.JWTAccessTokenExpiry)

	claims := &shared.Claims{
		UserID: userData.GetID(),
		Email:  userData.GetEmail(),
		Role:   userData.GetRole(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.cfg.JWTIssuer,
			Subject:   userData.GetEmail(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		s.logger.Error("Failed to sign session token", zap.Error(err))
		return "", time.Time{}, fmt.Errorf("could not sign session token: %w", err)
	}
	return tokenString, expirationTime, nil
}

// ValidateToken verifies a session token and returns its claims. A tampered
// signature, a malformed token and an expired token all fail verification.
func (s *JWTService) ValidateToken(tokenString string) (*shared.Claims, error) {
	claims := &shared.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})
	if err != nil {
		s.logger.Debug("Token validation failed", zap.Error(err))
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if parsed, ok := token.Claims.(*shared.Claims); ok && token.Valid {
		return parsed, nil
	}
	return nil, errors.New("invalid token claims")
}
