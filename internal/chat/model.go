// File: internal/chat/model.go
package chat

import (
	"time"

	"uniconnect_backend/internal/common"

	"github.com/google/uuid"
)

// Message is a direct message between two users, optionally tied to a
// marketplace item.
type Message struct {
	common.BaseModel
	SenderID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"sender_id"`
	ReceiverID uuid.UUID  `gorm:"type:uuid;not null;index" json:"receiver_id"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	ItemID     *uuid.UUID `gorm:"type:uuid" json:"item_id,omitempty"`
}

// TableName specifies the table name for the Message model.
func (Message) TableName() string {
	return "chat_messages"
}

// SendMessageRequest is the payload for sending a direct message.
type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id" binding:"required,uuid"`
	Content    string `json:"content" binding:"required,max=5000"`
	ItemID     string `json:"item_id" binding:"omitempty,uuid"`
}

// MessageResponse is the API representation of a chat message.
type MessageResponse struct {
	ID         uuid.UUID  `json:"id"`
	SenderID   uuid.UUID  `json:"sender_id"`
	ReceiverID uuid.UUID  `json:"receiver_id"`
	Content    string     `json:"content"`
	ItemID     *uuid.UUID `json:"item_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ToMessageResponse converts a Message model to its API representation.
func ToMessageResponse(m *Message) MessageResponse {
	return MessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		ItemID:     m.ItemID,
		CreatedAt:  m.CreatedAt,
	}
}

// PartnerResponse is one entry in a user's chat partner list.
type PartnerResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
}
