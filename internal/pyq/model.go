// File: internal/pyq/model.go
package pyq

import (
	"time"

	"uniconnect_backend/internal/common"

	"github.com/google/uuid"
)

// Paper is an uploaded past-year question paper.
type Paper struct {
	common.BaseModel
	UploaderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"uploader_id"`
	UniversityID uuid.UUID `gorm:"type:uuid;not null;index" json:"university_id"`
	Subject      string    `gorm:"type:varchar(255);not null;index" json:"subject"`
	CourseCode   string    `gorm:"type:varchar(50)" json:"course_code"`
	Year         int       `gorm:"not null;index" json:"year"`
	FileURL      string    `gorm:"type:varchar(2048);not null" json:"file_url"`
	FileObjectID string    `gorm:"type:varchar(512);not null" json:"-"`
}

// TableName specifies the table name for the Paper model.
func (Paper) TableName() string {
	return "pyq_papers"
}

// UploadPaperRequest is the multipart form payload for uploading a paper.
// The file itself arrives as the "file" form field.
type UploadPaperRequest struct {
	Subject    string `form:"subject" binding:"required,max=255"`
	CourseCode string `form:"course_code" binding:"max=50"`
	Year       int    `form:"year" binding:"required,gte=1950,lte=2100"`
}

// PaperResponse is the API representation of a paper.
type PaperResponse struct {
	ID           uuid.UUID `json:"id"`
	UploaderID   uuid.UUID `json:"uploader_id"`
	UniversityID uuid.UUID `json:"university_id"`
	Subject      string    `json:"subject"`
	CourseCode   string    `json:"course_code,omitempty"`
	Year         int       `json:"year"`
	FileURL      string    `json:"file_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToPaperResponse converts a Paper model to its API representation.
func ToPaperResponse(p *Paper) PaperResponse {
	return PaperResponse{
		ID:           p.ID,
		UploaderID:   p.UploaderID,
		UniversityID: p.UniversityID,
		Subject:      p.Subject,
		CourseCode:   p.CourseCode,
		Year:         p.Year,
		FileURL:      p.FileURL,
		CreatedAt:    p.CreatedAt,
	}
}
