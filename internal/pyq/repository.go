// File: internal/pyq/repository.go
package pyq

import (
	"context"
	"errors"
	"fmt"

	"uniconnect_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines persistence operations for question papers.
type Repository interface {
	Create(ctx context.Context, paper *Paper) error
	FindByID(ctx context.Context, id uuid.UUID) (*Paper, error)
	Search(ctx context.Context, universityID uuid.UUID, subject string, year int) ([]Paper, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM-backed paper repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, paper *Paper) error {
	if err := r.db.WithContext(ctx).Create(paper).Error; err != nil {
		return fmt.Errorf("creating paper: %w", err)
	}
	return nil
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*Paper, error) {
	var paper Paper
	err := r.db.WithContext(ctx).First(&paper, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Paper not found.")
		}
		return nil, fmt.Errorf("finding paper by id %s: %w", id, err)
	}
	return &paper, nil
}

func (r *gormRepository) Search(ctx context.Context, universityID uuid.UUID, subject string, year int) ([]Paper, error) {
	query := r.db.WithContext(ctx).Where("university_id = ?", universityID)
	if subject != "" {
		query = query.Where("subject ILIKE ?", "%"+subject+"%")
	}
	if year > 0 {
		query = query.Where("year = ?", year)
	}

	var papers []Paper
	if err := query.Order("year DESC, created_at DESC").Find(&papers).Error; err != nil {
		return nil, fmt.Errorf("searching papers: %w", err)
	}
	return papers, nil
}

func (r *gormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Paper{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting paper %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound.WithDetails("Paper not found.")
	}
	return nil
}
