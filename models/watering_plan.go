package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WateringPlan governs the watering cadence for one (user, plant) pair.
// NextDueAt is always the start-of-day instant of some calendar date.
type WateringPlan struct {
	ID                string    `gorm:"type:char(36);primaryKey" json:"id"`
	UserID            string    `gorm:"type:char(36);index;not null;uniqueIndex:uq_wp_user_plant" json:"user_id"`
	PlantID           string    `gorm:"type:char(36);index;not null;uniqueIndex:uq_wp_user_plant" json:"plant_id"`
	NextDueAt         time.Time `gorm:"index:idx_wp_due;not null" json:"next_due_at"`
	IntervalDays      int       `gorm:"not null" json:"interval_days"`
	CheckSoilMoisture bool      `gorm:"default:false" json:"check_soil_moisture"`
	Notes             string    `gorm:"size:255" json:"notes"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (wp *WateringPlan) BeforeCreate(tx *gorm.DB) error {
	if wp.ID == "" {
		wp.ID = uuid.NewString()
	}
	return nil
}
