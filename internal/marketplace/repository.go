// File: internal/marketplace/repository.go
package marketplace

import (
	"context"
	"errors"
	"fmt"
	"time"

	"uniconnect_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines persistence operations for marketplace items.
type Repository interface {
	Create(ctx context.Context, item *Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)
	FindAvailable(ctx context.Context, universityID uuid.UUID, category string, params common.PaginationQuery) ([]Item, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, universityID uuid.UUID, query string) ([]Item, error)
	MarkExpired(ctx context.Context, olderThan time.Time) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM-backed marketplace repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, item *Item) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("creating marketplace item: %w", err)
	}
	return nil
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*Item, error) {
	var item Item
	err := r.db.WithContext(ctx).Preload("Seller").First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Item not found.")
		}
		return nil, fmt.Errorf("finding item by id %s: %w", id, err)
	}
	return &item, nil
}

func (r *gormRepository) FindAvailable(ctx context.Context, universityID uuid.UUID, category string, params common.PaginationQuery) ([]Item, int64, error) {
	var items []Item
	var total int64

	query := r.db.WithContext(ctx).Model(&Item{}).
		Where("university_id = ?", universityID).
		Where("status = ?", StatusAvailable)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting marketplace items: %w", err)
	}

	err := query.Preload("Seller").
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.Limit()).
		Find(&items).Error
	if err != nil {
		return nil, 0, fmt.Errorf("finding marketplace items: %w", err)
	}
	return items, total, nil
}

func (r *gormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Item{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting item %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound.WithDetails("Item not found.")
	}
	return nil
}

func (r *gormRepository) Search(ctx context.Context, universityID uuid.UUID, query string) ([]Item, error) {
	var items []Item
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).Preload("Seller").
		Where("university_id = ?", universityID).
		Where("status = ?", StatusAvailable).
		Where("title ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("created_at DESC").
		Limit(50).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("searching marketplace items: %w", err)
	}
	return items, nil
}

// MarkExpired flips AVAILABLE items created before the cutoff to EXPIRED and
// returns the number of rows updated.
func (r *gormRepository) MarkExpired(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&Item{}).
		Where("status = ?", StatusAvailable).
		Where("created_at < ?", olderThan).
		Update("status", StatusExpired)
	if result.Error != nil {
		return 0, fmt.Errorf("marking items expired: %w", result.Error)
	}
	return result.RowsAffected, nil
}
