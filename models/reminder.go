package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const ReminderEntityPlant = "plant"

// Reminder is a user-facing notification. The watering scheduler maintains at
// most one active reminder per (user, plant), keyed by EntityType/EntityID.
type Reminder struct {
	ID          string     `gorm:"type:char(36);primaryKey" json:"id"`
	UserID      string     `gorm:"type:char(36);index;not null" json:"user_id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Note        string     `gorm:"size:255" json:"note,omitempty"`
	ScheduledAt time.Time  `gorm:"not null" json:"scheduled_at"`
	DoneAt      *time.Time `json:"done_at,omitempty"`
	EntityType  string     `gorm:"size:50;index" json:"entity_type"`
	EntityID    string     `gorm:"type:char(36);index" json:"entity_id"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (r *Reminder) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
