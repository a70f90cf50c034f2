// File: internal/event/model.go
package event

import (
	"time"

	"uniconnect_backend/internal/common"

	"github.com/google/uuid"
)

// Event is a university event announcement.
type Event struct {
	common.BaseModel
	UniversityID uuid.UUID `gorm:"type:uuid;not null;index" json:"university_id"`
	CreatedBy    uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Venue        string    `gorm:"type:varchar(255)" json:"venue"`
	Date         time.Time `gorm:"not null;index" json:"date"`
}

// TableName specifies the table name for the Event model.
func (Event) TableName() string {
	return "events"
}

// CreateEventRequest is the payload for announcing an event.
type CreateEventRequest struct {
	UniversityID string    `json:"university_id" binding:"required,uuid"`
	Title        string    `json:"title" binding:"required,max=255"`
	Description  string    `json:"description" binding:"max=5000"`
	Venue        string    `json:"venue" binding:"max=255"`
	Date         time.Time `json:"date" binding:"required"`
}
