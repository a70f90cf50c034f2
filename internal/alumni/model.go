// File: internal/alumni/model.go
package alumni

import (
	"time"

	"uniconnect_backend/internal/common"
	"uniconnect_backend/internal/user"

	"github.com/google/uuid"
)

// Profile is an alumni career profile. A user has at most one.
type Profile struct {
	common.BaseModel
	UserID            uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Company           string     `gorm:"type:varchar(255)" json:"company"`
	JobRole           string     `gorm:"type:varchar(255)" json:"job_role"`
	YearsOfExperience int        `gorm:"default:0" json:"years_of_experience"`
	Review            string     `gorm:"type:text" json:"review"`
	LinkedinURL       string     `gorm:"type:varchar(2048)" json:"linkedin_url"`
	User              *user.User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for the Profile model.
func (Profile) TableName() string {
	return "alumni_profiles"
}

// CreateProfileRequest is the payload for publishing an alumni profile.
type CreateProfileRequest struct {
	Company           string `json:"company" binding:"required,max=255"`
	JobRole           string `json:"job_role" binding:"required,max=255"`
	YearsOfExperience int    `json:"years_of_experience" binding:"gte=0"`
	Review            string `json:"review" binding:"max=5000"`
	LinkedinURL       string `json:"linkedin_url" binding:"omitempty,url"`
}

// ProfileResponse is the API representation of an alumni profile.
type ProfileResponse struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	Name              string    `json:"name,omitempty"`
	GraduationYear    *int      `json:"graduation_year,omitempty"`
	Company           string    `json:"company"`
	JobRole           string    `json:"job_role"`
	YearsOfExperience int       `json:"years_of_experience"`
	Review            string    `json:"review"`
	LinkedinURL       string    `json:"linkedin_url"`
	CreatedAt         time.Time `json:"created_at"`
}

// ToProfileResponse converts a Profile model to its API representation.
func ToProfileResponse(p *Profile) ProfileResponse {
	resp := ProfileResponse{
		ID:                p.ID,
		UserID:            p.UserID,
		Company:           p.Company,
		JobRole:           p.JobRole,
		YearsOfExperience: p.YearsOfExperience,
		Review:            p.Review,
		LinkedinURL:       p.LinkedinURL,
		CreatedAt:         p.CreatedAt,
	}
	if p.User != nil {
		resp.Name = p.User.Name
		resp.GraduationYear = p.User.GraduationYear
	}
	return resp
}
