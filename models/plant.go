package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plant size categories used by the dose estimator and interval adjustment.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
	SizeGiant  = "giant"
)

// Plant is a catalog entry. WaterLevel and Difficulty are 1..5.
type Plant struct {
	ID             string `gorm:"type:char(36);primaryKey" json:"id"`
	ScientificName string `gorm:"size:255;not null" json:"scientific_name"`
	CommonName     string `gorm:"size:255" json:"common_name"`
	Family         string `gorm:"size:255" json:"family"`
	WaterLevel     int    `json:"water_level"`
	Difficulty     int    `json:"difficulty"`
	Size           string `gorm:"size:16" json:"size"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (p *Plant) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// DisplayName prefers the common name for user-facing text.
func (p *Plant) DisplayName() string {
	if p.CommonName != "" {
		return p.CommonName
	}
	if p.ScientificName != "" {
		return p.ScientificName
	}
	return "your plant"
}
