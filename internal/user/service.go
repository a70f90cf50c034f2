// File: internal/user/service.go
package user

import (
	"context"
	"errors"
	"fmt"

	"uniconnect_backend/internal/common"
	"uniconnect_backend/internal/shared"
	"uniconnect_backend/internal/university"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service resolves registrations, logins and OAuth callbacks into exactly one
// user record each.
type Service struct {
	repo           Repository
	universityRepo university.Repository
	logger         *zap.Logger
}

// NewService creates a new user service.
func NewService(repo Repository, universityRepo university.Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:           repo,
		universityRepo: universityRepo,
		logger:         logger,
	}
}

// Register creates a new credential-backed user with role STUDENT.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	_, err := s.repo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, common.ErrConflict.WithDetails("Email already registered.")
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user by email: %w", err)
	}

	var universityID *uuid.UUID
	if req.UniversityID != "" {
		id, parseErr := uuid.Parse(req.UniversityID)
		if parseErr != nil {
			return nil, common.ErrBadRequest.WithDetails("Invalid university ID.")
		}
		if _, uniErr := s.universityRepo.FindByID(ctx, id); uniErr != nil {
			return nil, uniErr
		}
		universityID = &id
	}

	hashedPassword, err := common.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("Failed to hash password during registration", zap.Error(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	dbUser := &User{
		Name:           req.Name,
		Email:          NormalizeEmail(req.Email),
		PasswordHash:   &hashedPassword,
		Role:           common.RoleStudent,
		UniversityID:   universityID,
		GraduationYear: req.GraduationYear,
	}

	// The pre-check above can race with a concurrent registration; the
	// repository surfaces the unique-constraint violation as a conflict.
	if err := s.repo.Create(ctx, dbUser); err != nil {
		s.logger.Warn("Failed to create user", zap.Error(err), zap.String("email", dbUser.Email))
		if apiErr, ok := common.IsAPIError(err); ok {
			return nil, apiErr
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User registered", zap.String("userID", dbUser.ID.String()))
	return dbUser, nil
}

// Login verifies credentials and returns the resolved user. Failures are
// uniform: a missing account, a wrong password and an OAuth-only account all
// yield the same unauthorized error.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	dbUser, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.logger.Info("Login attempt for unknown email")
			return nil, common.ErrUnauthorized.WithDetails("Invalid email or password.")
		}
		s.logger.Error("Error finding user by email during login", zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Login failed due to an internal error.")
	}

	if dbUser.PasswordHash == nil || *dbUser.PasswordHash == "" {
		s.logger.Warn("Password login attempt against OAuth-only account",
			zap.String("userID", dbUser.ID.String()))
		return nil, common.ErrUnauthorized.WithDetails("Invalid email or password.")
	}

	if !common.CheckPasswordHash(password, *dbUser.PasswordHash) {
		s.logger.Warn("Invalid password attempt", zap.String("userID", dbUser.ID.String()))
		return nil, common.ErrUnauthorized.WithDetails("Invalid email or password.")
	}

	s.logger.Info("User logged in", zap.String("userID", dbUser.ID.String()))
	return dbUser, nil
}

// ResolveOAuth implements the account-linking algorithm for federated logins:
// lookup by provider identity, else link by email, else create.
//
// Linking trusts the provider's email claim to attach the federated identity
// to a pre-existing password account without re-verifying the password. This
// mirrors the upstream behavior and is a known security-sensitive assumption.
func (s *Service) ResolveOAuth(ctx context.Context, profile shared.OAuthProfile) (*User, error) {
	dbUser, err := s.repo.FindByProvider(ctx, profile.Provider, profile.ProviderID)
	if err == nil {
		// Repeat federated login, nothing to change.
		return dbUser, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		s.logger.Error("Error finding user by provider identity", zap.Error(err),
			zap.String("provider", profile.Provider))
		return nil, err
	}

	dbUser, err = s.repo.FindByEmail(ctx, profile.Email)
	if err == nil {
		s.logger.Info("Linking OAuth identity to existing account",
			zap.String("userID", dbUser.ID.String()),
			zap.String("provider", profile.Provider))

		providerCopy := profile.Provider
		oauthIDCopy := profile.ProviderID
		dbUser.OAuthProvider = &providerCopy
		dbUser.OAuthID = &oauthIDCopy
		if profile.PictureURL != "" {
			pictureCopy := profile.PictureURL
			dbUser.ProfilePictureURL = &pictureCopy
		}

		if err := s.repo.Update(ctx, dbUser); err != nil {
			s.logger.Error("Failed to link OAuth identity", zap.Error(err),
				zap.String("userID", dbUser.ID.String()))
			return nil, err
		}
		return dbUser, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		s.logger.Error("Error finding user by email for OAuth linking", zap.Error(err))
		return nil, err
	}

	// First federated login with an unknown email: create a passwordless
	// STUDENT account.
	providerCopy := profile.Provider
	oauthIDCopy := profile.ProviderID
	newUser := &User{
		Name:          profile.Name,
		Email:         NormalizeEmail(profile.Email),
		Role:          common.RoleStudent,
		OAuthProvider: &providerCopy,
		OAuthID:       &oauthIDCopy,
	}
	if profile.PictureURL != "" {
		pictureCopy := profile.PictureURL
		newUser.ProfilePictureURL = &pictureCopy
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		s.logger.Error("Failed to create user from OAuth profile", zap.Error(err))
		if apiErr, ok := common.IsAPIError(err); ok {
			return nil, apiErr
		}
		return nil, fmt.Errorf("failed to create user from OAuth profile: %w", err)
	}

	s.logger.Info("User created from OAuth profile",
		zap.String("userID", newUser.ID.String()),
		zap.String("provider", profile.Provider))
	return newUser, nil
}

// GetByID retrieves a user by ID.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByEmail retrieves a user by email.
func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// EscalateToAlumni promotes a user to the ALUMNI role. It is a narrow
// capability exposed only to the alumni-profile workflow; when tx is non-nil
// the escalation joins that workflow's transaction.
func (s *Service) EscalateToAlumni(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	if err := s.repo.UpdateRole(ctx, tx, userID, common.RoleAlumni); err != nil {
		return err
	}
	s.logger.Info("User role escalated to alumni", zap.String("userID", userID.String()))
	return nil
}

// GetByIDs retrieves users for a set of IDs.
func (s *Service) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]User, error) {
	return s.repo.FindByIDs(ctx, ids)
}
