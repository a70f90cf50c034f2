// File: internal/club/model.go
package club

import (
	"uniconnect_backend/internal/common"

	"github.com/google/uuid"
)

// Club is a student club or society at a university.
type Club struct {
	common.BaseModel
	UniversityID uuid.UUID `gorm:"type:uuid;not null;index" json:"university_id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Slug         string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Description  string    `gorm:"type:text" json:"description"`
	ContactEmail string    `gorm:"type:varchar(255)" json:"contact_email"`
}

// TableName specifies the table name for the Club model.
func (Club) TableName() string {
	return "clubs"
}

// CreateClubRequest is the payload for registering a club.
type CreateClubRequest struct {
	UniversityID string `json:"university_id" binding:"required,uuid"`
	Name         string `json:"name" binding:"required,max=255"`
	Description  string `json:"description" binding:"max=5000"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
}
