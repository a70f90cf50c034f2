// File: internal/foodcourt/model.go
package foodcourt

import (
	"uniconnect_backend/internal/common"

	"github.com/google/uuid"
)

// FoodCourt is an on-campus or nearby eatery listing.
type FoodCourt struct {
	common.BaseModel
	UniversityID uuid.UUID `gorm:"type:uuid;not null;index" json:"university_id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Location     string    `gorm:"type:varchar(255)" json:"location"`
	Cuisine      string    `gorm:"type:varchar(100)" json:"cuisine"`
	OpeningHours string    `gorm:"type:varchar(100)" json:"opening_hours"`
	Rating       float32   `gorm:"default:0" json:"rating"`
}

// TableName specifies the table name for the FoodCourt model.
func (FoodCourt) TableName() string {
	return "food_courts"
}

// CreateFoodCourtRequest is the payload for adding a food court.
type CreateFoodCourtRequest struct {
	UniversityID string  `json:"university_id" binding:"required,uuid"`
	Name         string  `json:"name" binding:"required,max=255"`
	Location     string  `json:"location" binding:"max=255"`
	Cuisine      string  `json:"cuisine" binding:"max=100"`
	OpeningHours string  `json:"opening_hours" binding:"max=100"`
	Rating       float32 `json:"rating" binding:"gte=0,lte=5"`
}
