// File: internal/platform/database/migrate.go
package database

import (
	"fmt"

	"uniconnect_backend/internal/alumni"
	"uniconnect_backend/internal/chat"
	"uniconnect_backend/internal/club"
	"uniconnect_backend/internal/event"
	"uniconnect_backend/internal/foodcourt"
	"uniconnect_backend/internal/housing"
	"uniconnect_backend/internal/marketplace"
	"uniconnect_backend/internal/post"
	"uniconnect_backend/internal/pyq"
	"uniconnect_backend/internal/university"
	"uniconnect_backend/internal/user"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every registered model.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&university.University{},
		&user.User{},
		&post.Post{},
		&post.Comment{},
		&marketplace.Item{},
		&chat.Message{},
		&event.Event{},
		&foodcourt.FoodCourt{},
		&housing.PGListing{},
		&club.Club{},
		&alumni.Profile{},
		&pyq.Paper{},
	)
	if err != nil {
		return fmt.Errorf("running schema migration: %w", err)
	}
	return nil
}
