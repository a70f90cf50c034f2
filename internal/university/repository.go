// File: internal/university/repository.go
package university

import (
	"context"
	"errors"
	"strings"

	"uniconnect_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the interface for university data operations.
type Repository interface {
	Create(ctx context.Context, uni *University) error
	FindByID(ctx context.Context, id uuid.UUID) (*University, error)
	FindAll(ctx context.Context) ([]University, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM university repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, uni *University) error {
	err := r.db.WithContext(ctx).Create(uni).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "unique constraint") {
			return common.ErrConflict.WithDetails("A university with this name already exists.")
		}
		return err
	}
	return nil
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*University, error) {
	var uni University
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&uni).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("University not found.")
		}
		return nil, err
	}
	return &uni, nil
}

func (r *gormRepository) FindAll(ctx context.Context) ([]University, error) {
	var unis []University
	if err := r.db.WithContext(ctx).Order("name asc").Find(&unis).Error; err != nil {
		return nil, err
	}
	return unis, nil
}
