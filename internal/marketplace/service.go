// File: internal/marketplace/service.go
package marketplace

import (
	"context"
	"time"

	"uniconnect_backend/internal/authz"
	"uniconnect_backend/internal/common"
	"uniconnect_backend/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles business logic for the student marketplace.
type Service struct {
	repo   Repository
	users  *user.Service
	logger *zap.Logger
}

// NewService creates a new marketplace service.
func NewService(repo Repository, users *user.Service, logger *zap.Logger) *Service {
	return &Service{repo: repo, users: users, logger: logger.Named("MarketplaceService")}
}

// CreateItem lists an item for sale under the caller's university.
func (s *Service) CreateItem(ctx context.Context, callerID uuid.UUID, req CreateItemRequest) (*Item, error) {
	seller, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if seller.UniversityID == nil {
		return nil, common.ErrBadRequest.WithDetails("You must set your university before selling items.")
	}

	item := &Item{
		SellerID:     callerID,
		UniversityID: *seller.UniversityID,
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		Status:       StatusAvailable,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	item.Seller = seller

	s.logger.Info("Marketplace item created",
		zap.String("itemID", item.ID.String()),
		zap.String("sellerID", callerID.String()))
	return item, nil
}

// ListAvailable returns a page of AVAILABLE items for a university,
// optionally filtered by category.
func (s *Service) ListAvailable(ctx context.Context, universityID uuid.UUID, category string, params common.PaginationQuery) ([]Item, *common.Pagination, error) {
	items, total, err := s.repo.FindAvailable(ctx, universityID, category, params)
	if err != nil {
		return nil, nil, err
	}
	pagination := common.NewPagination(total, params.Page, params.Limit())
	return items, pagination, nil
}

// GetItem fetches a single item by ID.
func (s *Service) GetItem(ctx context.Context, id uuid.UUID) (*Item, error) {
	return s.repo.FindByID(ctx, id)
}

// DeleteItem removes a listing. Only the seller may delete.
func (s *Service) DeleteItem(ctx context.Context, callerID, itemID uuid.UUID) error {
	existing, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return err
	}
	if err := authz.CheckOwner(callerID, existing.SellerID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, itemID); err != nil {
		return err
	}
	s.logger.Info("Marketplace item deleted", zap.String("itemID", itemID.String()))
	return nil
}

// Search returns AVAILABLE items in a university whose title or description
// matches the query.
func (s *Service) Search(ctx context.Context, universityID uuid.UUID, query string) ([]Item, error) {
	if query == "" {
		return []Item{}, nil
	}
	return s.repo.Search(ctx, universityID, query)
}

// ExpireStaleItems marks AVAILABLE items older than lifespan as EXPIRED.
// Called by the scheduled expiry job.
func (s *Service) ExpireStaleItems(ctx context.Context, lifespan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-lifespan)
	count, err := s.repo.MarkExpired(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.logger.Info("Expired stale marketplace items", zap.Int64("count", count))
	}
	return count, nil
}
