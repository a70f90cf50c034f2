// File: internal/club/repository.go
package club

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"uniconnect_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines persistence operations for clubs.
type Repository interface {
	Create(ctx context.Context, club *Club) error
	FindByUniversity(ctx context.Context, universityID uuid.UUID) ([]Club, error)
	FindBySlug(ctx context.Context, slug string) (*Club, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM-backed club repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, club *Club) error {
	if err := r.db.WithContext(ctx).Create(club).Error; err != nil {
		if isUniqueViolation(err) {
			return common.ErrConflict.WithDetails("A club with this name already exists.")
		}
		return fmt.Errorf("creating club: %w", err)
	}
	return nil
}

func (r *gormRepository) FindByUniversity(ctx context.Context, universityID uuid.UUID) ([]Club, error) {
	var clubs []Club
	err := r.db.WithContext(ctx).
		Where("university_id = ?", universityID).
		Order("name ASC").
		Find(&clubs).Error
	if err != nil {
		return nil, fmt.Errorf("finding clubs for university %s: %w", universityID, err)
	}
	return clubs, nil
}

func (r *gormRepository) FindBySlug(ctx context.Context, slug string) (*Club, error) {
	var club Club
	err := r.db.WithContext(ctx).First(&club, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Club not found.")
		}
		return nil, fmt.Errorf("finding club by slug %s: %w", slug, err)
	}
	return &club, nil
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "unique constraint") ||
		strings.Contains(err.Error(), "UNIQUE constraint") ||
		strings.Contains(err.Error(), "duplicate key value violates unique constraint")
}
