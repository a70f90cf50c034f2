// File: internal/post/repository.go
package post

import (
	"context"
	"errors"
	"fmt"

	"uniconnect_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines persistence operations for posts and comments.
type Repository interface {
	CreatePost(ctx context.Context, post *Post) error
	FindPostByID(ctx context.Context, id uuid.UUID) (*Post, error)
	FindFeed(ctx context.Context, universityID uuid.UUID, postType string, params common.PaginationQuery) ([]Post, int64, error)
	IncrementLikeCount(ctx context.Context, postID uuid.UUID) error
	DeletePost(ctx context.Context, id uuid.UUID) error
	SearchPosts(ctx context.Context, universityID uuid.UUID, query string) ([]Post, error)
	FindPostsByIDs(ctx context.Context, ids []uuid.UUID) ([]Post, error)
	TopContributors(ctx context.Context, universityID uuid.UUID, limit int) ([]ContributorStat, error)

	CreateComment(ctx context.Context, comment *Comment) error
	FindCommentByID(ctx context.Context, id uuid.UUID) (*Comment, error)
	FindCommentsByPost(ctx context.Context, postID uuid.UUID) ([]Comment, error)
	DeleteComment(ctx context.Context, id uuid.UUID) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM-backed post repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) CreatePost(ctx context.Context, post *Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("creating post: %w", err)
	}
	return nil
}

func (r *gormRepository) FindPostByID(ctx context.Context, id uuid.UUID) (*Post, error) {
	var post Post
	err := r.db.WithContext(ctx).Preload("User").First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Post not found.")
		}
		return nil, fmt.Errorf("finding post by id %s: %w", id, err)
	}
	return &post, nil
}

func (r *gormRepository) FindFeed(ctx context.Context, universityID uuid.UUID, postType string, params common.PaginationQuery) ([]Post, int64, error) {
	var posts []Post
	var total int64

	query := r.db.WithContext(ctx).Model(&Post{}).Where("university_id = ?", universityID)
	if postType != "" {
		query = query.Where("type = ?", postType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting feed posts: %w", err)
	}

	err := query.Preload("User").
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.Limit()).
		Find(&posts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("finding feed posts: %w", err)
	}
	return posts, total, nil
}

func (r *gormRepository) IncrementLikeCount(ctx context.Context, postID uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&Post{}).
		Where("id = ?", postID).
		UpdateColumn("like_count", gorm.Expr("like_count + 1"))
	if result.Error != nil {
		return fmt.Errorf("incrementing like count for post %s: %w", postID, result.Error)
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound.WithDetails("Post not found.")
	}
	return nil
}

func (r *gormRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&Comment{}).Error; err != nil {
			return fmt.Errorf("deleting comments for post %s: %w", id, err)
		}
		result := tx.Delete(&Post{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("deleting post %s: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return common.ErrNotFound.WithDetails("Post not found.")
		}
		return nil
	})
}

func (r *gormRepository) SearchPosts(ctx context.Context, universityID uuid.UUID, query string) ([]Post, error) {
	var posts []Post
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).Preload("User").
		Where("university_id = ?", universityID).
		Where("content ILIKE ?", pattern).
		Order("created_at DESC").
		Limit(50).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("searching posts: %w", err)
	}
	return posts, nil
}

func (r *gormRepository) FindPostsByIDs(ctx context.Context, ids []uuid.UUID) ([]Post, error) {
	if len(ids) == 0 {
		return []Post{}, nil
	}
	var posts []Post
	if err := r.db.WithContext(ctx).Preload("User").Where("id IN ?", ids).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("finding posts by ids: %w", err)
	}
	// Preserve the caller's ordering (search relevance).
	byID := make(map[uuid.UUID]Post, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
	}
	ordered := make([]Post, 0, len(posts))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

func (r *gormRepository) TopContributors(ctx context.Context, universityID uuid.UUID, limit int) ([]ContributorStat, error) {
	var stats []ContributorStat
	err := r.db.WithContext(ctx).Model(&Post{}).
		Select("posts.user_id AS user_id, users.name AS name, COUNT(posts.id) AS post_count").
		Joins("JOIN users ON users.id = posts.user_id").
		Where("posts.university_id = ?", universityID).
		Group("posts.user_id, users.name").
		Order("post_count DESC").
		Limit(limit).
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("computing top contributors: %w", err)
	}
	return stats, nil
}

func (r *gormRepository) CreateComment(ctx context.Context, comment *Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("creating comment: %w", err)
	}
	return nil
}

func (r *gormRepository) FindCommentByID(ctx context.Context, id uuid.UUID) (*Comment, error) {
	var comment Comment
	err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Comment not found.")
		}
		return nil, fmt.Errorf("finding comment by id %s: %w", id, err)
	}
	return &comment, nil
}

func (r *gormRepository) FindCommentsByPost(ctx context.Context, postID uuid.UUID) ([]Comment, error) {
	var comments []Comment
	err := r.db.WithContext(ctx).Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("finding comments for post %s: %w", postID, err)
	}
	return comments, nil
}

func (r *gormRepository) DeleteComment(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Comment{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting comment %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound.WithDetails("Comment not found.")
	}
	return nil
}
