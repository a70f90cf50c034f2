// File: internal/user/adapter.go
package user

import (
	"uniconnect_backend/internal/shared"
)

// DBToShared converts a GORM user.User model to the shared principal DTO.
func DBToShared(dbUser *User) *shared.User {
	if dbUser == nil {
		return nil
	}
	return &shared.User{
		ID:                dbUser.ID,
		Name:              dbUser.Name,
		Email:             dbUser.Email,
		Role:              dbUser.Role,
		UniversityID:      dbUser.UniversityID,
		GraduationYear:    dbUser.GraduationYear,
		ProfilePictureURL: dbUser.ProfilePictureURL,
		OAuthProvider:     dbUser.OAuthProvider,
		CreatedAt:         dbUser.CreatedAt,
	}
}
