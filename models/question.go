package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Onboarding question types consumed by the preference resolver.
const (
	QuestionTypeCareDay   = "care_day"
	QuestionTypeTimeOfDay = "time_of_day"
	QuestionTypeEcoMode   = "eco_mode"
)

// Question is a per-user onboarding question. Answer, when set, is the
// 1-based position of the chosen option.
type Question struct {
	ID         string         `gorm:"type:char(36);primaryKey" json:"id"`
	UserID     string         `gorm:"type:char(36);index;not null" json:"user_id"`
	Text       string         `gorm:"type:text;not null" json:"text"`
	Type       string         `gorm:"size:50;not null" json:"type"`
	Options    datatypes.JSON `json:"options"`
	Active     bool           `gorm:"default:true" json:"active"`
	Answer     *int           `json:"answer,omitempty"`
	AnsweredAt *time.Time     `json:"answered_at,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}
