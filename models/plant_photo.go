package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlantPhoto struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	PlantID   string    `gorm:"type:char(36);index;not null" json:"plant_id"`
	Data      []byte    `gorm:"type:mediumblob" json:"-"`
	MimeType  string    `gorm:"size:50" json:"mime_type"`
	CreatedAt time.Time `json:"created_at"`
}

func (pp *PlantPhoto) BeforeCreate(tx *gorm.DB) error {
	if pp.ID == "" {
		pp.ID = uuid.NewString()
	}
	return nil
}
