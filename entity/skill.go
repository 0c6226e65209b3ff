package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Skill groups an ordered list of skill items under one category.
// Items are replaced wholesale on update, never merged.
type Skill struct {
	ID        uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey"`
	Category  string                      `json:"category" binding:"required" gorm:"type:varchar(255);not null"`
	Items     datatypes.JSONSlice[string] `json:"items" gorm:"type:jsonb"`
	CreatedAt time.Time                   `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time                   `json:"updated_at" gorm:"autoUpdateTime"`
}

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
