package services

import (
	"log"

	"github.com/MichelaFaella/EcoGrow-BackEnd/models"

	"gorm.io/gorm"
)

// Preferences are the base scheduling parameters derived from the onboarding
// questionnaire.
type Preferences struct {
	CadenceDays   int
	PreferredHour int
	EcoMode       bool
}

// PreferenceMaps translate a 1-based answer position into a scheduling
// parameter. They are injected so tests can swap alternative mappings.
type PreferenceMaps struct {
	Cadence map[int]int
	Hour    map[int]int
	Eco     map[int]bool
}

// DefaultPreferenceMaps mirrors the onboarding questionnaire options:
// care-day preference (weekdays / weekends / any day / every other day),
// time-of-day availability (morning / lunch / evening / don't care) and the
// eco-mode question.
var DefaultPreferenceMaps = PreferenceMaps{
	Cadence: map[int]int{1: 3, 2: 7, 3: 3, 4: 2},
	Hour:    map[int]int{1: 8, 2: 13, 3: 19, 4: 9},
	Eco:     map[int]bool{1: false, 2: true, 3: true, 4: true},
}

const (
	defaultCadenceDays   = 3
	defaultPreferredHour = 9
)

type PreferenceResolver struct {
	db   *gorm.DB
	maps PreferenceMaps
}

func NewPreferenceResolver(db *gorm.DB, maps PreferenceMaps) *PreferenceResolver {
	return &PreferenceResolver{db: db, maps: maps}
}

// Resolve loads the user's latest questionnaire answers and maps them to base
// scheduling parameters. It never fails: missing or malformed answers fall
// back to fixed defaults.
func (r *PreferenceResolver) Resolve(userID string) Preferences {
	prefs := Preferences{
		CadenceDays:   defaultCadenceDays,
		PreferredHour: defaultPreferredHour,
		EcoMode:       false,
	}

	var questions []models.Question
	err := r.db.
		Where("user_id = ? AND active = ?", userID, true).
		Order("answered_at DESC").
		Find(&questions).Error
	if err != nil {
		log.Printf("preference resolution failed for user %s, using defaults: %v", userID, err)
		return prefs
	}

	seen := map[string]bool{}
	for _, q := range questions {
		if q.Answer == nil || seen[q.Type] {
			continue
		}
		seen[q.Type] = true
		pos := *q.Answer

		switch q.Type {
		case models.QuestionTypeCareDay:
			if days, ok := r.maps.Cadence[pos]; ok {
				prefs.CadenceDays = days
			}
		case models.QuestionTypeTimeOfDay:
			if hour, ok := r.maps.Hour[pos]; ok {
				prefs.PreferredHour = hour
			}
		case models.QuestionTypeEcoMode:
			if eco, ok := r.maps.Eco[pos]; ok {
				prefs.EcoMode = eco
			}
		}
	}

	return prefs
}
