// File: internal/alumni/repository.go
package alumni

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"uniconnect_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines persistence operations for alumni profiles.
type Repository interface {
	// CreateTx inserts a profile inside the caller's transaction so role
	// escalation and profile creation commit together.
	CreateTx(ctx context.Context, tx *gorm.DB, profile *Profile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	FindByUniversity(ctx context.Context, universityID uuid.UUID) ([]Profile, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM-backed alumni repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) CreateTx(ctx context.Context, tx *gorm.DB, profile *Profile) error {
	db := tx
	if db == nil {
		db = r.db
	}
	if err := db.WithContext(ctx).Create(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "UNIQUE constraint") {
			return common.ErrConflict.WithDetails("You already have an alumni profile.")
		}
		return fmt.Errorf("creating alumni profile: %w", err)
	}
	return nil
}

func (r *gormRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	var profile Profile
	err := r.db.WithContext(ctx).Preload("User").First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Alumni profile not found.")
		}
		return nil, fmt.Errorf("finding alumni profile for user %s: %w", userID, err)
	}
	return &profile, nil
}

func (r *gormRepository) FindByUniversity(ctx context.Context, universityID uuid.UUID) ([]Profile, error) {
	var profiles []Profile
	err := r.db.WithContext(ctx).Preload("User").
		Joins("JOIN users ON users.id = alumni_profiles.user_id").
		Where("users.university_id = ?", universityID).
		Order("alumni_profiles.created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("finding alumni profiles for university %s: %w", universityID, err)
	}
	return profiles, nil
}
