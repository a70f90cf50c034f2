// File: internal/housing/repository.go
package housing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines persistence operations for PG listings.
type Repository interface {
	Create(ctx context.Context, listing *PGListing) error
	FindByUniversity(ctx context.Context, universityID uuid.UUID) ([]PGListing, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM-backed housing repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, listing *PGListing) error {
	if err := r.db.WithContext(ctx).Create(listing).Error; err != nil {
		return fmt.Errorf("creating PG listing: %w", err)
	}
	return nil
}

func (r *gormRepository) FindByUniversity(ctx context.Context, universityID uuid.UUID) ([]PGListing, error) {
	var listings []PGListing
	err := r.db.WithContext(ctx).
		Where("university_id = ?", universityID).
		Order("monthly_rent ASC").
		Find(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("finding PG listings for university %s: %w", universityID, err)
	}
	return listings, nil
}
