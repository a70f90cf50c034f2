// File: internal/marketplace/service_test.go
package marketplace

import (
	"context"
	"testing"
	"time"

	"uniconnect_backend/internal/common"
	"uniconnect_backend/internal/university"
	"uniconnect_backend/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[uuid.UUID]*user.User
}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, common.ErrNotFound
}
func (f *fakeUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, common.ErrNotFound.WithDetails("User not found with this ID.")
}
func (f *fakeUserRepository) FindByProvider(ctx context.Context, provider, oauthID string) (*user.User, error) {
	return nil, common.ErrNotFound
}
func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepository) UpdateRole(ctx context.Context, tx *gorm.DB, id uuid.UUID, role string) error {
	return nil
}
func (f *fakeUserRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]user.User, error) {
	return nil, nil
}

type fakeUniversityRepository struct{}

func (f *fakeUniversityRepository) Create(ctx context.Context, uni *university.University) error {
	return nil
}
func (f *fakeUniversityRepository) FindByID(ctx context.Context, id uuid.UUID) (*university.University, error) {
	return nil, common.ErrNotFound
}
func (f *fakeUniversityRepository) FindAll(ctx context.Context) ([]university.University, error) {
	return nil, nil
}

type mockItemRepository struct {
	items map[uuid.UUID]*Item
}

func newMockItemRepository() *mockItemRepository {
	return &mockItemRepository{items: make(map[uuid.UUID]*Item)}
}

func (m *mockItemRepository) Create(ctx context.Context, item *Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	m.items[item.ID] = item
	return nil
}

func (m *mockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*Item, error) {
	if item, ok := m.items[id]; ok {
		return item, nil
	}
	return nil, common.ErrNotFound.WithDetails("Item not found.")
}

func (m *mockItemRepository) FindAvailable(ctx context.Context, universityID uuid.UUID, category string, params common.PaginationQuery) ([]Item, int64, error) {
	var result []Item
	for _, item := range m.items {
		if item.UniversityID != universityID || item.Status != StatusAvailable {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		result = append(result, *item)
	}
	return result, int64(len(result)), nil
}

func (m *mockItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.items[id]; !ok {
		return common.ErrNotFound.WithDetails("Item not found.")
	}
	delete(m.items, id)
	return nil
}

func (m *mockItemRepository) Search(ctx context.Context, universityID uuid.UUID, query string) ([]Item, error) {
	return nil, nil
}

func (m *mockItemRepository) MarkExpired(ctx context.Context, olderThan time.Time) (int64, error) {
	var count int64
	for _, item := range m.items {
		if item.Status == StatusAvailable && item.CreatedAt.Before(olderThan) {
			item.Status = StatusExpired
			count++
		}
	}
	return count, nil
}

func setupMarketplaceService(t *testing.T) (*Service, *mockItemRepository, uuid.UUID, uuid.UUID) {
	t.Helper()

	uniID := uuid.New()
	sellerID := uuid.New()
	seller := &user.User{Name: "Seller", Email: "seller@example.com", Role: common.RoleStudent, UniversityID: &uniID}
	seller.ID = sellerID

	userSvc := user.NewService(&fakeUserRepository{users: map[uuid.UUID]*user.User{sellerID: seller}}, &fakeUniversityRepository{}, zap.NewNop())
	repo := newMockItemRepository()
	return NewService(repo, userSvc, zap.NewNop()), repo, sellerID, uniID
}

func TestCreateItem(t *testing.T) {
	svc, _, sellerID, uniID := setupMarketplaceService(t)

	item, err := svc.CreateItem(context.Background(), sellerID, CreateItemRequest{
		Title: "Calculus Textbook",
		Price: 450,
	})
	require.NoError(t, err)
	assert.Equal(t, sellerID, item.SellerID, "the seller is always the caller")
	assert.Equal(t, uniID, item.UniversityID)
	assert.Equal(t, StatusAvailable, item.Status)
}

func TestDeleteItem_OnlySeller(t *testing.T) {
	svc, repo, sellerID, _ := setupMarketplaceService(t)
	ctx := context.Background()

	item, err := svc.CreateItem(ctx, sellerID, CreateItemRequest{Title: "Lamp", Price: 100})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteItem(ctx, uuid.New(), item.ID), common.ErrForbidden)
	assert.Contains(t, repo.items, item.ID)

	require.NoError(t, svc.DeleteItem(ctx, sellerID, item.ID))
	assert.NotContains(t, repo.items, item.ID)
}

func TestExpireStaleItems(t *testing.T) {
	svc, repo, sellerID, uniID := setupMarketplaceService(t)
	ctx := context.Background()

	stale := &Item{SellerID: sellerID, UniversityID: uniID, Title: "Old Chair", Status: StatusAvailable}
	stale.CreatedAt = time.Now().Add(-90 * 24 * time.Hour)
	require.NoError(t, repo.Create(ctx, stale))

	fresh, err := svc.CreateItem(ctx, sellerID, CreateItemRequest{Title: "New Desk", Price: 900})
	require.NoError(t, err)

	count, err := svc.ExpireStaleItems(ctx, 60*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, StatusExpired, repo.items[stale.ID].Status)
	assert.Equal(t, StatusAvailable, repo.items[fresh.ID].Status)

	// Expired items drop out of the public listing.
	listed, _, err := svc.ListAvailable(ctx, uniID, "", common.PaginationQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, fresh.ID, listed[0].ID)
}

func TestSearch_EmptyQueryReturnsNothing(t *testing.T) {
	svc, _, _, uniID := setupMarketplaceService(t)

	results, err := svc.Search(context.Background(), uniID, "")
	require.NoError(t, err)
	assert.Empty(t, results)
}
