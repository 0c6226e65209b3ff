package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact is a public contact-form submission. Records are append-only:
// no endpoint mutates or deletes them.
type Contact struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" binding:"required" gorm:"type:varchar(255);not null"`
	Email     string    `json:"email" binding:"required" gorm:"type:varchar(255);not null"`
	Subject   string    `json:"subject" binding:"required" gorm:"type:varchar(255);not null"`
	Message   string    `json:"message" binding:"required" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
