// File: internal/pyq/service_test.go
package pyq

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"uniconnect_backend/internal/common"
	"uniconnect_backend/internal/filestorage"
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

// flakyStorage counts deletes and can be told to fail them.
type flakyStorage struct {
	failDelete bool
	deleted    []string
}

func (s *flakyStorage) Upload(fileHeader *multipart.FileHeader, folder string) (*filestorage.UploadResult, error) {
	return &filestorage.UploadResult{URL: "http://localhost/uploads/pyq/x.pdf", ObjectID: "pyq/x.pdf"}, nil
}

func (s *flakyStorage) Delete(objectID string) error {
	s.deleted = append(s.deleted, objectID)
	if s.failDelete {
		return errors.New("storage unavailable")
	}
	return nil
}

type mockPaperRepository struct {
	papers map[uuid.UUID]*Paper
}

func newMockPaperRepository() *mockPaperRepository {
	return &mockPaperRepository{papers: make(map[uuid.UUID]*Paper)}
}

func (m *mockPaperRepository) Create(ctx context.Context, p *Paper) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.papers[p.ID] = p
	return nil
}

func (m *mockPaperRepository) FindByID(ctx context.Context, id uuid.UUID) (*Paper, error) {
	if p, ok := m.papers[id]; ok {
		return p, nil
	}
	return nil, common.ErrNotFound.WithDetails("Paper not found.")
}

func (m *mockPaperRepository) Search(ctx context.Context, universityID uuid.UUID, subject string, year int) ([]Paper, error) {
	return nil, nil
}

func (m *mockPaperRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.papers[id]; !ok {
		return common.ErrNotFound.WithDetails("Paper not found.")
	}
	delete(m.papers, id)
	return nil
}

func setupPaperService(t *testing.T, storage filestorage.Service) (*Service, *mockPaperRepository, uuid.UUID, uuid.UUID) {
	t.Helper()

	uniID := uuid.New()
	uploaderID := uuid.New()
	uploader := &user.User{Name: "Uploader", Email: "uploader@example.com", Role: common.RoleStudent, UniversityID: &uniID}
	uploader.ID = uploaderID

	userSvc := user.NewService(&fakeUserRepository{users: map[uuid.UUID]*user.User{uploaderID: uploader}}, &fakeUniversityRepository{}, zap.NewNop())
	repo := newMockPaperRepository()
	return NewService(repo, userSvc, storage, zap.NewNop()), repo, uploaderID, uniID
}

func seedPaper(repo *mockPaperRepository, uploaderID, uniID uuid.UUID) *Paper {
	p := &Paper{
		UploaderID:   uploaderID,
		UniversityID: uniID,
		Subject:      "Data Structures",
		Year:         2023,
		FileURL:      "http://localhost/uploads/pyq/ds.pdf",
		FileObjectID: "pyq/ds.pdf",
	}
	_ = repo.Create(context.Background(), p)
	return p
}

func TestDeletePaper_SwallowsStorageFailure(t *testing.T) {
	storage := &flakyStorage{failDelete: true}
	svc, repo, uploaderID, uniID := setupPaperService(t, storage)
	paper := seedPaper(repo, uploaderID, uniID)

	err := svc.DeletePaper(context.Background(), uploaderID, paper.ID)
	require.NoError(t, err, "a storage failure must not block removing the record")
	assert.NotContains(t, repo.papers, paper.ID)
	assert.Equal(t, []string{"pyq/ds.pdf"}, storage.deleted, "the storage delete must still be attempted")
}

func TestDeletePaper_OnlyUploader(t *testing.T) {
	storage := &flakyStorage{}
	svc, repo, uploaderID, uniID := setupPaperService(t, storage)
	paper := seedPaper(repo, uploaderID, uniID)

	err := svc.DeletePaper(context.Background(), uuid.New(), paper.ID)
	assert.ErrorIs(t, err, common.ErrForbidden)
	assert.Contains(t, repo.papers, paper.ID)
	assert.Empty(t, storage.deleted, "a forbidden delete must not touch storage")
}

func TestDeletePaper_StorageSuccess(t *testing.T) {
	storage := &flakyStorage{}
	svc, repo, uploaderID, uniID := setupPaperService(t, storage)
	paper := seedPaper(repo, uploaderID, uniID)

	require.NoError(t, svc.DeletePaper(context.Background(), uploaderID, paper.ID))
	assert.NotContains(t, repo.papers, paper.ID)
	assert.Equal(t, []string{"pyq/ds.pdf"}, storage.deleted)
}

func TestUploadPaper_RequiresKnownUploader(t *testing.T) {
	storage := &flakyStorage{}
	svc, _, _, _ := setupPaperService(t, storage)

	_, err := svc.UploadPaper(context.Background(), uuid.New(), UploadPaperRequest{Subject: "Algorithms", Year: 2022}, nil)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
