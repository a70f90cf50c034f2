// File: internal/chat/service.go
package chat

import (
	"context"

	"uniconnect_backend/internal/common"
	"uniconnect_backend/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles business logic for direct messaging.
type Service struct {
	repo   Repository
	users  *user.Service
	logger *zap.Logger
}

// NewService creates a new chat service.
func NewService(repo Repository, users *user.Service, logger *zap.Logger) *Service {
	return &Service{repo: repo, users: users, logger: logger.Named("ChatService")}
}

// SendMessage delivers a message from the caller to another user. The
// receiver must exist; messaging yourself is rejected.
func (s *Service) SendMessage(ctx context.Context, senderID uuid.UUID, req SendMessageRequest) (*Message, error) {
	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		return nil, common.ErrBadRequest.WithDetails("Invalid receiver ID.")
	}
	if receiverID == senderID {
		return nil, common.ErrBadRequest.WithDetails("You cannot message yourself.")
	}
	if _, err := s.users.GetByID(ctx, receiverID); err != nil {
		return nil, err
	}

	message := &Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    req.Content,
	}
	if req.ItemID != "" {
		itemID, err := uuid.Parse(req.ItemID)
		if err != nil {
			return nil, common.ErrBadRequest.WithDetails("Invalid item ID.")
		}
		message.ItemID = &itemID
	}

	if err := s.repo.Create(ctx, message); err != nil {
		return nil, err
	}
	s.logger.Info("Message sent",
		zap.String("messageID", message.ID.String()),
		zap.String("receiverID", receiverID.String()))
	return message, nil
}

// GetConversation returns the full message exchange between the caller and
// another user, oldest first.
func (s *Service) GetConversation(ctx context.Context, callerID, otherID uuid.UUID) ([]Message, error) {
	return s.repo.FindConversation(ctx, callerID, otherID)
}

// GetPartners returns the distinct users the caller has chatted with.
func (s *Service) GetPartners(ctx context.Context, callerID uuid.UUID) ([]PartnerResponse, error) {
	ids, err := s.repo.FindPartnerIDs(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []PartnerResponse{}, nil
	}

	partners, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	responses := make([]PartnerResponse, 0, len(partners))
	for i := range partners {
		responses = append(responses, PartnerResponse{UserID: partners[i].ID, Name: partners[i].Name})
	}
	return responses, nil
}
