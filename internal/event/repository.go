// File: internal/event/repository.go
package event

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines persistence operations for events.
type Repository interface {
	Create(ctx context.Context, event *Event) error
	FindByUniversity(ctx context.Context, universityID uuid.UUID) ([]Event, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM-backed event repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, event *Event) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("creating event: %w", err)
	}
	return nil
}

func (r *gormRepository) FindByUniversity(ctx context.Context, universityID uuid.UUID) ([]Event, error) {
	var events []Event
	err := r.db.WithContext(ctx).
		Where("university_id = ?", universityID).
		Order("date DESC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("finding events for university %s: %w", universityID, err)
	}
	return events, nil
}
