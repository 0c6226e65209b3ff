package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CV references a file owned by the external media storage. FileURL
// and StorageID are always set together; deleting a CV must also
// delete the remote object or the two drift apart.
type CV struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FileURL   string    `json:"file_url" gorm:"type:text;not null"`
	StorageID string    `json:"storage_id" gorm:"type:varchar(1024);not null"`
	AssetID   string    `json:"asset_id" gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime;index"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (c *CV) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
