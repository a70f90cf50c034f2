// File: internal/university/model.go
package university

import (
	"uniconnect_backend/internal/common"
)

// University is the tenant entity. Most listing queries across the system are
// partitioned by its ID.
type University struct {
	common.BaseModel
	Name string `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	City string `gorm:"type:varchar(100)" json:"city,omitempty"`
}

func (University) TableName() string {
	return "universities"
}

// CreateUniversityRequest defines the structure for creating a university.
type CreateUniversityRequest struct {
	Name string `json:"name" binding:"required,max=255"`
	City string `json:"city,omitempty" binding:"omitempty,max=100"`
}
