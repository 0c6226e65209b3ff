package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Project struct {
	ID          uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string                      `json:"title" binding:"required" gorm:"type:varchar(255);not null"`
	Description string                      `json:"description" binding:"required" gorm:"type:text;not null"`
	Category    string                      `json:"category" gorm:"type:varchar(255)"`
	Tech        datatypes.JSONSlice[string] `json:"tech" gorm:"type:jsonb"`
	Github      string                      `json:"github" gorm:"type:text"`
	Live        string                      `json:"live" gorm:"type:text"`
	CreatedAt   time.Time                   `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt   time.Time                   `json:"updated_at" gorm:"autoUpdateTime"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
