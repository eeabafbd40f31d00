package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notes carrying this marker identify scheduled placeholder entries; every
// other log row is a real watering reported by the user.
const ScheduledMarker = "SCHEDULED"

const (
	NoteScheduledFromPlan = "SCHEDULED FROM PLAN"
	NoteScheduledFromUndo = "SCHEDULED FROM PLAN (UNDO)"
)

// WateringLog is the append-only event stream per (user, plant). DoneDay is
// DoneAt truncated to midnight and backs the one-entry-per-day constraint.
type WateringLog struct {
	ID       string    `gorm:"type:char(36);primaryKey" json:"id"`
	UserID   string    `gorm:"type:char(36);index;not null;uniqueIndex:uq_wl_user_plant_day" json:"user_id"`
	PlantID  string    `gorm:"type:char(36);index;not null;uniqueIndex:uq_wl_user_plant_day" json:"plant_id"`
	DoneAt   time.Time `gorm:"not null" json:"done_at"`
	DoneDay  time.Time `gorm:"not null;uniqueIndex:uq_wl_user_plant_day" json:"-"`
	AmountML int       `gorm:"not null" json:"amount_ml"`
	Note     string    `gorm:"size:255" json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

func (wl *WateringLog) BeforeCreate(tx *gorm.DB) error {
	if wl.ID == "" {
		wl.ID = uuid.NewString()
	}
	return nil
}

func (wl *WateringLog) BeforeSave(tx *gorm.DB) error {
	wl.DoneDay = startOfDay(wl.DoneAt)
	return nil
}

// IsScheduled reports whether the row is a placeholder rather than a real event.
func (wl *WateringLog) IsScheduled() bool {
	return strings.Contains(wl.Note, ScheduledMarker)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
