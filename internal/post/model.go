// File: internal/post/model.go
package post

import (
	"time"

	"uniconnect_backend/internal/common"
	"uniconnect_backend/internal/user"

	"github.com/google/uuid"
)

// Post types supported by the campus feed.
const (
	TypeNormal     = "NORMAL"
	TypeConfession = "CONFESSION"
	TypeFreshersQA = "FRESHERS_QA"
)

// IsValidType checks if the provided string is a recognized post type.
func IsValidType(t string) bool {
	switch t {
	case TypeNormal, TypeConfession, TypeFreshersQA:
		return true
	}
	return false
}

// Post is a feed entry scoped to a university.
type Post struct {
	common.BaseModel
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	UniversityID uuid.UUID  `gorm:"type:uuid;not null;index" json:"university_id"`
	Content      string     `gorm:"type:text;not null" json:"content"`
	Type         string     `gorm:"type:varchar(20);not null;default:'NORMAL';index" json:"type"`
	IsAnonymous  bool       `gorm:"not null;default:false" json:"is_anonymous"`
	LikeCount    int        `gorm:"not null;default:0" json:"like_count"`
	User         *user.User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for the Post model.
func (Post) TableName() string {
	return "posts"
}

// Comment is a reply on a post. Anonymity is inherited from the parent post.
type Comment struct {
	common.BaseModel
	PostID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"post_id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	IsAnonymous bool       `gorm:"not null;default:false" json:"is_anonymous"`
	User        *user.User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for the Comment model.
func (Comment) TableName() string {
	return "comments"
}

// CreatePostRequest is the payload for creating a post.
type CreatePostRequest struct {
	Content     string `json:"content" binding:"required,max=5000"`
	Type        string `json:"type" binding:"omitempty,oneof=NORMAL CONFESSION FRESHERS_QA"`
	IsAnonymous bool   `json:"is_anonymous"`
}

// CreateCommentRequest is the payload for commenting on a post.
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

// PostResponse is the API representation of a post. The author name is
// withheld for anonymous posts.
type PostResponse struct {
	ID           uuid.UUID `json:"id"`
	UniversityID uuid.UUID `json:"university_id"`
	AuthorName   string    `json:"author_name,omitempty"`
	Content      string    `json:"content"`
	Type         string    `json:"type"`
	IsAnonymous  bool      `json:"is_anonymous"`
	LikeCount    int       `json:"like_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToPostResponse converts a Post model to its API representation.
func ToPostResponse(p *Post) PostResponse {
	resp := PostResponse{
		ID:           p.ID,
		UniversityID: p.UniversityID,
		Content:      p.Content,
		Type:         p.Type,
		IsAnonymous:  p.IsAnonymous,
		LikeCount:    p.LikeCount,
		CreatedAt:    p.CreatedAt,
	}
	if !p.IsAnonymous && p.User != nil {
		resp.AuthorName = p.User.Name
	}
	return resp
}

// CommentResponse is the API representation of a comment.
type CommentResponse struct {
	ID          uuid.UUID `json:"id"`
	PostID      uuid.UUID `json:"post_id"`
	AuthorName  string    `json:"author_name,omitempty"`
	Content     string    `json:"content"`
	IsAnonymous bool      `json:"is_anonymous"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToCommentResponse converts a Comment model to its API representation.
func ToCommentResponse(c *Comment) CommentResponse {
	resp := CommentResponse{
		ID:          c.ID,
		PostID:      c.PostID,
		Content:     c.Content,
		IsAnonymous: c.IsAnonymous,
		CreatedAt:   c.CreatedAt,
	}
	if !c.IsAnonymous && c.User != nil {
		resp.AuthorName = c.User.Name
	}
	return resp
}

// ContributorStat is one row of the top-contributors leaderboard.
type ContributorStat struct {
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	PostCount int64     `json:"post_count"`
}
