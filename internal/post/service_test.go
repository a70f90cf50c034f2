// File: internal/post/service_test.go
package post

import (
	"context"
	"testing"

	"uniconnect_backend/internal/common"
	"uniconnect_backend/internal/university"
	"uniconnect_backend/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// fakeUserRepository serves a fixed user set to the user service.
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

// mockPostRepository is an in-memory Repository for service tests.
type mockPostRepository struct {
	posts    map[uuid.UUID]*Post
	comments map[uuid.UUID]*Comment
}

func newMockPostRepository() *mockPostRepository {
	return &mockPostRepository{
		posts:    make(map[uuid.UUID]*Post),
		comments: make(map[uuid.UUID]*Comment),
	}
}

func (m *mockPostRepository) CreatePost(ctx context.Context, p *Post) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.posts[p.ID] = p
	return nil
}

func (m *mockPostRepository) FindPostByID(ctx context.Context, id uuid.UUID) (*Post, error) {
	if p, ok := m.posts[id]; ok {
		return p, nil
	}
	return nil, common.ErrNotFound.WithDetails("Post not found.")
}

func (m *mockPostRepository) FindFeed(ctx context.Context, universityID uuid.UUID, postType string, params common.PaginationQuery) ([]Post, int64, error) {
	var result []Post
	for _, p := range m.posts {
		if p.UniversityID != universityID {
			continue
		}
		if postType != "" && p.Type != postType {
			continue
		}
		result = append(result, *p)
	}
	return result, int64(len(result)), nil
}

func (m *mockPostRepository) IncrementLikeCount(ctx context.Context, postID uuid.UUID) error {
	p, ok := m.posts[postID]
	if !ok {
		return common.ErrNotFound.WithDetails("Post not found.")
	}
	p.LikeCount++
	return nil
}

func (m *mockPostRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.posts[id]; !ok {
		return common.ErrNotFound.WithDetails("Post not found.")
	}
	delete(m.posts, id)
	for cid, c := range m.comments {
		if c.PostID == id {
			delete(m.comments, cid)
		}
	}
	return nil
}

func (m *mockPostRepository) SearchPosts(ctx context.Context, universityID uuid.UUID, query string) ([]Post, error) {
	return nil, nil
}

func (m *mockPostRepository) FindPostsByIDs(ctx context.Context, ids []uuid.UUID) ([]Post, error) {
	return nil, nil
}

func (m *mockPostRepository) TopContributors(ctx context.Context, universityID uuid.UUID, limit int) ([]ContributorStat, error) {
	return nil, nil
}

func (m *mockPostRepository) CreateComment(ctx context.Context, c *Comment) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	m.comments[c.ID] = c
	return nil
}

func (m *mockPostRepository) FindCommentByID(ctx context.Context, id uuid.UUID) (*Comment, error) {
	if c, ok := m.comments[id]; ok {
		return c, nil
	}
	return nil, common.ErrNotFound.WithDetails("Comment not found.")
}

func (m *mockPostRepository) FindCommentsByPost(ctx context.Context, postID uuid.UUID) ([]Comment, error) {
	var result []Comment
	for _, c := range m.comments {
		if c.PostID == postID {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *mockPostRepository) DeleteComment(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.comments[id]; !ok {
		return common.ErrNotFound.WithDetails("Comment not found.")
	}
	delete(m.comments, id)
	return nil
}

func setupPostService(t *testing.T) (*Service, *mockPostRepository, uuid.UUID, uuid.UUID) {
	t.Helper()

	uniID := uuid.New()
	authorID := uuid.New()
	author := &user.User{Name: "Author", Email: "author@example.com", Role: common.RoleStudent, UniversityID: &uniID}
	author.ID = authorID

	userSvc := user.NewService(&fakeUserRepository{users: map[uuid.UUID]*user.User{authorID: author}}, &fakeUniversityRepository{}, zap.NewNop())
	repo := newMockPostRepository()
	return NewService(repo, userSvc, nil, zap.NewNop()), repo, authorID, uniID
}

func TestCreatePost_Defaults(t *testing.T) {
	svc, _, authorID, uniID := setupPostService(t)

	created, err := svc.CreatePost(context.Background(), authorID, CreatePostRequest{Content: "hello campus"})
	require.NoError(t, err)
	assert.Equal(t, TypeNormal, created.Type, "untyped posts default to NORMAL")
	assert.Equal(t, uniID, created.UniversityID, "posts are scoped to the author's university")
	assert.False(t, created.IsAnonymous)
	assert.Equal(t, 0, created.LikeCount)
}

func TestCreatePost_RequiresUniversity(t *testing.T) {
	svc, _, _, _ := setupPostService(t)

	strayID := uuid.New()
	_, err := svc.CreatePost(context.Background(), strayID, CreatePostRequest{Content: "hello"})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestLikePost(t *testing.T) {
	svc, repo, authorID, _ := setupPostService(t)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, authorID, CreatePostRequest{Content: "like me"})
	require.NoError(t, err)

	require.NoError(t, svc.LikePost(ctx, created.ID))
	require.NoError(t, svc.LikePost(ctx, created.ID))
	assert.Equal(t, 2, repo.posts[created.ID].LikeCount)

	assert.ErrorIs(t, svc.LikePost(ctx, uuid.New()), common.ErrNotFound)
}

func TestAddComment_InheritsAnonymity(t *testing.T) {
	svc, _, authorID, _ := setupPostService(t)
	ctx := context.Background()

	anonymous, err := svc.CreatePost(ctx, authorID, CreatePostRequest{Content: "secret", Type: TypeConfession, IsAnonymous: true})
	require.NoError(t, err)
	named, err := svc.CreatePost(ctx, authorID, CreatePostRequest{Content: "open"})
	require.NoError(t, err)

	onAnonymous, err := svc.AddComment(ctx, authorID, anonymous.ID, CreateCommentRequest{Content: "me too"})
	require.NoError(t, err)
	assert.True(t, onAnonymous.IsAnonymous, "comments on anonymous posts stay anonymous")

	onNamed, err := svc.AddComment(ctx, authorID, named.ID, CreateCommentRequest{Content: "nice"})
	require.NoError(t, err)
	assert.False(t, onNamed.IsAnonymous)
}

func TestDeletePost_OnlyOwner(t *testing.T) {
	svc, repo, authorID, _ := setupPostService(t)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, authorID, CreatePostRequest{Content: "mine"})
	require.NoError(t, err)

	err = svc.DeletePost(ctx, uuid.New(), created.ID)
	assert.ErrorIs(t, err, common.ErrForbidden)
	assert.Contains(t, repo.posts, created.ID, "a forbidden delete must leave the post in place")

	require.NoError(t, svc.DeletePost(ctx, authorID, created.ID))
	assert.NotContains(t, repo.posts, created.ID)
}

func TestDeleteComment_OnlyOwner(t *testing.T) {
	svc, repo, authorID, _ := setupPostService(t)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, authorID, CreatePostRequest{Content: "with comment"})
	require.NoError(t, err)
	comment, err := svc.AddComment(ctx, authorID, created.ID, CreateCommentRequest{Content: "hi"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteComment(ctx, uuid.New(), comment.ID), common.ErrForbidden)
	require.NoError(t, svc.DeleteComment(ctx, authorID, comment.ID))
	assert.NotContains(t, repo.comments, comment.ID)
}

func TestGetFeed_RejectsUnknownType(t *testing.T) {
	svc, _, _, uniID := setupPostService(t)

	_, _, err := svc.GetFeed(context.Background(), uniID, "GOSSIP", common.PaginationQuery{Page: 1, PageSize: 10})
	assert.ErrorIs(t, err, common.ErrBadRequest)
}
