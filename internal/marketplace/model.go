// File: internal/marketplace/model.go
package marketplace

import (
	"time"

	"uniconnect_backend/internal/common"
	"uniconnect_backend/internal/user"

	"github.com/google/uuid"
)

// Item statuses.
const (
	StatusAvailable = "AVAILABLE"
	StatusSold      = "SOLD"
	StatusExpired   = "EXPIRED"
)

// Item is a marketplace listing scoped to a university.
type Item struct {
	common.BaseModel
	SellerID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"seller_id"`
	UniversityID uuid.UUID  `gorm:"type:uuid;not null;index" json:"university_id"`
	Title        string     `gorm:"type:varchar(255);not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	Price        float64    `gorm:"not null" json:"price"`
	Category     string     `gorm:"type:varchar(100);index" json:"category"`
	ImageURL     *string    `gorm:"type:varchar(2048)" json:"image_url,omitempty"`
	Status       string     `gorm:"type:varchar(20);not null;default:'AVAILABLE';index" json:"status"`
	Seller       *user.User `gorm:"foreignKey:SellerID" json:"-"`
}

// TableName specifies the table name for the Item model.
func (Item) TableName() string {
	return "marketplace_items"
}

// CreateItemRequest is the payload for listing an item for sale.
type CreateItemRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description" binding:"max=5000"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Category    string  `json:"category" binding:"max=100"`
	ImageURL    *string `json:"image_url" binding:"omitempty,url"`
}

// ItemResponse is the API representation of a marketplace item.
type ItemResponse struct {
	ID           uuid.UUID `json:"id"`
	SellerID     uuid.UUID `json:"seller_id"`
	SellerName   string    `json:"seller_name,omitempty"`
	UniversityID uuid.UUID `json:"university_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	ImageURL     *string   `json:"image_url,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToItemResponse converts an Item model to its API representation.
func ToItemResponse(item *Item) ItemResponse {
	resp := ItemResponse{
		ID:           item.ID,
		SellerID:     item.SellerID,
		UniversityID: item.UniversityID,
		Title:        item.Title,
		Description:  item.Description,
		Price:        item.Price,
		Category:     item.Category,
		ImageURL:     item.ImageURL,
		Status:       item.Status,
		CreatedAt:    item.CreatedAt,
	}
	if item.Seller != nil {
		resp.SellerName = item.Seller.Name
	}
	return resp
}
