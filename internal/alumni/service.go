// File: internal/alumni/service.go
package alumni

import (
	"context"

	"uniconnect_backend/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles business logic for alumni profiles.
type Service struct {
	repo   Repository
	users  *user.Service
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new alumni service.
func NewService(repo Repository, users *user.Service, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{repo: repo, users: users, db: db, logger: logger.Named("AlumniService")}
}

// CreateProfile publishes the caller's alumni profile and promotes them to
// the ALUMNI role. Both writes commit in one transaction.
func (s *Service) CreateProfile(ctx context.Context, callerID uuid.UUID, req CreateProfileRequest) (*Profile, error) {
	caller, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	profile := &Profile{
		UserID:            callerID,
		Company:           req.Company,
		JobRole:           req.JobRole,
		YearsOfExperience: req.YearsOfExperience,
		Review:            req.Review,
		LinkedinURL:       req.LinkedinURL,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(ctx, tx, profile); err != nil {
			return err
		}
		return s.users.EscalateToAlumni(ctx, tx, callerID)
	})
	if err != nil {
		return nil, err
	}
	profile.User = caller

	s.logger.Info("Alumni profile created, role escalated",
		zap.String("userID", callerID.String()))
	return profile, nil
}

// GetProfile returns the alumni profile of a user.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	return s.repo.FindByUserID(ctx, userID)
}

// ListByUniversity returns all alumni profiles of a university's users,
// newest first.
func (s *Service) ListByUniversity(ctx context.Context, universityID uuid.UUID) ([]Profile, error) {
	return s.repo.FindByUniversity(ctx, universityID)
}
