// File: internal/user/model.go
package user

import (
	"time"

	"uniconnect_backend/internal/common"

	"github.com/google/uuid"
)

// User represents the user model in the database. PasswordHash is nil for
// accounts created purely via federated login; OAuthProvider/OAuthID are nil
// until the account has been linked to a provider. Post-creation, at least
// one of the two authentication paths is always set.
type User struct {
	common.BaseModel
	Name              string     `gorm:"type:varchar(100);not null"`
	Email             string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash      *string    `gorm:"type:varchar(255)"`
	Role              string     `gorm:"type:varchar(50);not null;default:'STUDENT'"`
	UniversityID      *uuid.UUID `gorm:"type:uuid;index"`
	GraduationYear    *int
	ProfilePictureURL *string `gorm:"type:text"`
	OAuthProvider     *string `gorm:"type:varchar(50);index:idx_oauth_provider_oauth_id,unique"`
	OAuthID           *string `gorm:"type:varchar(255);index:idx_oauth_provider_oauth_id,unique"`
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}

// Sanitize removes sensitive information like the password hash.
func (u *User) Sanitize() {
	u.PasswordHash = nil
}

func (u *User) GetID() uuid.UUID {
	return u.ID
}

func (u *User) GetEmail() string {
	return u.Email
}

func (u *User) GetRole() string {
	return u.Role
}

// --- DTOs for API requests/responses ---

// RegisterRequest defines the structure for credential registration.
type RegisterRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8,max=72"` // bcrypt max is 72 bytes
	UniversityID   string `json:"university_id,omitempty" binding:"omitempty,uuid"`
	GraduationYear *int   `json:"graduation_year,omitempty"`
}

// UserResponse defines the structure for user data sent in API responses.
type UserResponse struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Role              string     `json:"role"`
	UniversityID      *uuid.UUID `json:"university_id,omitempty"`
	GraduationYear    *int       `json:"graduation_year,omitempty"`
	ProfilePictureURL *string    `json:"profile_picture_url,omitempty"`
	OAuthProvider     *string    `json:"oauth_provider,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// ToUserResponse converts a User model to a UserResponse DTO.
func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		Role:              u.Role,
		UniversityID:      u.UniversityID,
		GraduationYear:    u.GraduationYear,
		ProfilePictureURL: u.ProfilePictureURL,
		OAuthProvider:     u.OAuthProvider,
		CreatedAt:         u.CreatedAt,
	}
}
