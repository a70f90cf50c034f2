// File: internal/chat/repository.go
package chat

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines persistence operations for chat messages.
type Repository interface {
	Create(ctx context.Context, message *Message) error
	FindConversation(ctx context.Context, userA, userB uuid.UUID) ([]Message, error)
	FindPartnerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM-backed chat repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, message *Message) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return fmt.Errorf("creating chat message: %w", err)
	}
	return nil
}

func (r *gormRepository) FindConversation(ctx context.Context, userA, userB uuid.UUID) ([]Message, error) {
	var messages []Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("finding conversation: %w", err)
	}
	return messages, nil
}

// FindPartnerIDs returns the distinct users the given user has exchanged
// messages with.
func (r *gormRepository) FindPartnerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var sent []uuid.UUID
	err := r.db.WithContext(ctx).Model(&Message{}).
		Distinct("receiver_id").
		Where("sender_id = ?", userID).
		Pluck("receiver_id", &sent).Error
	if err != nil {
		return nil, fmt.Errorf("finding message receivers: %w", err)
	}

	var received []uuid.UUID
	err = r.db.WithContext(ctx).Model(&Message{}).
		Distinct("sender_id").
		Where("receiver_id = ?", userID).
		Pluck("sender_id", &received).Error
	if err != nil {
		return nil, fmt.Errorf("finding message senders: %w", err)
	}

	seen := make(map[uuid.UUID]struct{}, len(sent)+len(received))
	partners := make([]uuid.UUID, 0, len(sent)+len(received))
	for _, id := range append(sent, received...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		partners = append(partners, id)
	}
	return partners, nil
}
