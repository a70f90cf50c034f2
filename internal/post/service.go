// File: internal/post/service.go
package post

import (
	"context"
	"time"

	"uniconnect_backend/internal/authz"
	"uniconnect_backend/internal/common"
	"uniconnect_backend/internal/platform/elasticsearch"
	"uniconnect_backend/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles business logic for the campus feed.
type Service struct {
	repo     Repository
	users    *user.Service
	esClient *elasticsearch.ESClientWrapper
	logger   *zap.Logger
}

// NewService creates a new post service. esClient may be nil, in which case
// search queries the database directly.
func NewService(repo Repository, users *user.Service, esClient *elasticsearch.ESClientWrapper, logger *zap.Logger) *Service {
	return &Service{repo: repo, users: users, esClient: esClient, logger: logger.Named("PostService")}
}

// CreatePost creates a feed post for the caller's university.
func (s *Service) CreatePost(ctx context.Context, callerID uuid.UUID, req CreatePostRequest) (*Post, error) {
	author, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if author.UniversityID == nil {
		return nil, common.ErrBadRequest.WithDetails("You must set your university before posting.")
	}

	postType := req.Type
	if postType == "" {
		postType = TypeNormal
	}

	newPost := &Post{
		UserID:       callerID,
		UniversityID: *author.UniversityID,
		Content:      req.Content,
		Type:         postType,
		IsAnonymous:  req.IsAnonymous,
	}
	if err := s.repo.CreatePost(ctx, newPost); err != nil {
		return nil, err
	}
	newPost.User = author

	s.indexPost(ctx, newPost)
	s.logger.Info("Post created",
		zap.String("postID", newPost.ID.String()),
		zap.String("type", newPost.Type),
		zap.Bool("anonymous", newPost.IsAnonymous))
	return newPost, nil
}

// GetFeed returns a page of posts for a university, newest first,
// optionally filtered by type.
func (s *Service) GetFeed(ctx context.Context, universityID uuid.UUID, postType string, params common.PaginationQuery) ([]Post, *common.Pagination, error) {
	if postType != "" && !IsValidType(postType) {
		return nil, nil, common.ErrBadRequest.WithDetails("Unknown post type.")
	}
	posts, total, err := s.repo.FindFeed(ctx, universityID, postType, params)
	if err != nil {
		return nil, nil, err
	}
	pagination := common.NewPagination(total, params.Page, params.Limit())
	return posts, pagination, nil
}

// LikePost increments the like counter of a post.
func (s *Service) LikePost(ctx context.Context, postID uuid.UUID) error {
	return s.repo.IncrementLikeCount(ctx, postID)
}

// DeletePost removes a post and its comments. Only the author may delete.
func (s *Service) DeletePost(ctx context.Context, callerID, postID uuid.UUID) error {
	existing, err := s.repo.FindPostByID(ctx, postID)
	if err != nil {
		return err
	}
	if err := authz.CheckOwner(callerID, existing.UserID); err != nil {
		return err
	}
	if err := s.repo.DeletePost(ctx, postID); err != nil {
		return err
	}
	s.deindexPost(ctx, postID)
	s.logger.Info("Post deleted", zap.String("postID", postID.String()))
	return nil
}

// AddComment creates a comment on a post. Comments on anonymous posts are
// anonymous themselves.
func (s *Service) AddComment(ctx context.Context, callerID, postID uuid.UUID, req CreateCommentRequest) (*Comment, error) {
	parent, err := s.repo.FindPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	author, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	comment := &Comment{
		PostID:      parent.ID,
		UserID:      callerID,
		Content:     req.Content,
		IsAnonymous: parent.IsAnonymous,
	}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	comment.User = author
	return comment, nil
}

// GetComments lists a post's comments, oldest first.
func (s *Service) GetComments(ctx context.Context, postID uuid.UUID) ([]Comment, error) {
	if _, err := s.repo.FindPostByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.repo.FindCommentsByPost(ctx, postID)
}

// DeleteComment removes a comment. Only the comment author may delete.
func (s *Service) DeleteComment(ctx context.Context, callerID, commentID uuid.UUID) error {
	existing, err := s.repo.FindCommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if err := authz.CheckOwner(callerID, existing.UserID); err != nil {
		return err
	}
	return s.repo.DeleteComment(ctx, commentID)
}

// Search returns posts in a university whose content matches the query.
// Uses Elasticsearch when configured, otherwise falls back to the database.
func (s *Service) Search(ctx context.Context, universityID uuid.UUID, query string) ([]Post, error) {
	if query == "" {
		return []Post{}, nil
	}
	if s.esClient != nil {
		rawIDs, err := elasticsearch.SearchPostIDs(ctx, s.esClient, universityID.String(), query, 50)
		if err != nil {
			s.logger.Warn("Elasticsearch search failed, falling back to database", zap.Error(err))
		} else {
			ids := make([]uuid.UUID, 0, len(rawIDs))
			for _, raw := range rawIDs {
				if id, parseErr := uuid.Parse(raw); parseErr == nil {
					ids = append(ids, id)
				}
			}
			return s.repo.FindPostsByIDs(ctx, ids)
		}
	}
	return s.repo.SearchPosts(ctx, universityID, query)
}

// TopContributors returns the five users with the most posts in a university.
func (s *Service) TopContributors(ctx context.Context, universityID uuid.UUID) ([]ContributorStat, error) {
	return s.repo.TopContributors(ctx, universityID, 5)
}

// indexPost pushes a post document to Elasticsearch. Index failures are
// logged and swallowed so the write path never depends on the search tier.
func (s *Service) indexPost(ctx context.Context, p *Post) {
	if s.esClient == nil {
		return
	}
	doc := elasticsearch.PostDocument{
		ID:           p.ID.String(),
		UniversityID: p.UniversityID.String(),
		Content:      p.Content,
		Type:         p.Type,
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339),
	}
	if err := elasticsearch.IndexPost(ctx, s.esClient, doc); err != nil {
		s.logger.Error("Failed to index post", zap.String("postID", p.ID.String()), zap.Error(err))
	}
}

func (s *Service) deindexPost(ctx context.Context, postID uuid.UUID) {
	if s.esClient == nil {
		return
	}
	if err := elasticsearch.DeletePost(ctx, s.esClient, postID.String()); err != nil {
		s.logger.Error("Failed to remove post from index", zap.String("postID", postID.String()), zap.Error(err))
	}
}
