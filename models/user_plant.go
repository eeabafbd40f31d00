package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserPlant links a plant into a user's garden.
type UserPlant struct {
	ID      string    `gorm:"type:char(36);primaryKey" json:"id"`
	UserID  string    `gorm:"type:char(36);index;not null;uniqueIndex:uq_user_plant" json:"user_id"`
	PlantID string    `gorm:"type:char(36);index;not null;uniqueIndex:uq_user_plant" json:"plant_id"`
	AddedAt time.Time `json:"added_at"`
}

func (up *UserPlant) BeforeCreate(tx *gorm.DB) error {
	if up.ID == "" {
		up.ID = uuid.NewString()
	}
	if up.AddedAt.IsZero() {
		up.AddedAt = time.Now()
	}
	return nil
}
