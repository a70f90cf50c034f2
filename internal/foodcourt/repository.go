// File: internal/foodcourt/repository.go
package foodcourt

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines persistence operations for food courts.
type Repository interface {
	Create(ctx context.Context, fc *FoodCourt) error
	FindByUniversity(ctx context.Context, universityID uuid.UUID) ([]FoodCourt, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM-backed food court repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, fc *FoodCourt) error {
	if err := r.db.WithContext(ctx).Create(fc).Error; err != nil {
		return fmt.Errorf("creating food court: %w", err)
	}
	return nil
}

func (r *gormRepository) FindByUniversity(ctx context.Context, universityID uuid.UUID) ([]FoodCourt, error) {
	var courts []FoodCourt
	err := r.db.WithContext(ctx).
		Where("university_id = ?", universityID).
		Order("name ASC").
		Find(&courts).Error
	if err != nil {
		return nil, fmt.Errorf("finding food courts for university %s: %w", universityID, err)
	}
	return courts, nil
}
