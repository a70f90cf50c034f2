// File: internal/housing/model.go
package housing

import (
	"uniconnect_backend/internal/common"

	"github.com/google/uuid"
)

// PGListing is a paying-guest accommodation listing near a university.
type PGListing struct {
	common.BaseModel
	UniversityID       uuid.UUID `gorm:"type:uuid;not null;index" json:"university_id"`
	Name               string    `gorm:"type:varchar(255);not null" json:"name"`
	Address            string    `gorm:"type:text" json:"address"`
	MonthlyRent        float64   `gorm:"not null" json:"monthly_rent"`
	DistanceFromCampus float64   `json:"distance_from_campus"`
	Amenities          string    `gorm:"type:text" json:"amenities"`
	ContactNumber      string    `gorm:"type:varchar(32)" json:"contact_number"`
}

// TableName specifies the table name for the PGListing model.
func (PGListing) TableName() string {
	return "pg_listings"
}

// CreatePGListingRequest is the payload for adding a PG listing.
type CreatePGListingRequest struct {
	UniversityID       string  `json:"university_id" binding:"required,uuid"`
	Name               string  `json:"name" binding:"required,max=255"`
	Address            string  `json:"address" binding:"max=1000"`
	MonthlyRent        float64 `json:"monthly_rent" binding:"required,gte=0"`
	DistanceFromCampus float64 `json:"distance_from_campus" binding:"gte=0"`
	Amenities          string  `json:"amenities" binding:"max=2000"`
	ContactNumber      string  `json:"contact_number" binding:"max=32"`
}
