package services

import (
	"fmt"
	"log"
	"time"

	"github.com/MichelaFaella/EcoGrow-BackEnd/models"
	"github.com/MichelaFaella/EcoGrow-BackEnd/utils"

	"gorm.io/gorm"
)

type WateringPlanService struct {
	db    *gorm.DB
	prefs *PreferenceResolver
}

func NewWateringPlanService(db *gorm.DB, prefs *PreferenceResolver) *WateringPlanService {
	return &WateringPlanService{db: db, prefs: prefs}
}

// InitializePlan creates the watering plan for a freshly linked (user, plant)
// pair, together with its first scheduled placeholder log and reminder. It
// never returns an error: any failure is absorbed into a hard-coded fallback
// plan so the caller's "add plant" flow is never blocked. If a plan already
// exists it is returned unchanged.
func (s *WateringPlanService) InitializePlan(userID, plantID string) *models.WateringPlan {
	var existing models.WateringPlan
	if err := s.db.Where("user_id = ? AND plant_id = ?", userID, plantID).
		First(&existing).Error; err == nil {
		return &existing
	}

	plan, err := s.createPlan(userID, plantID)
	if err != nil {
		log.Printf("plan initialization failed for user %s plant %s, using fallback: %v", userID, plantID, err)
		return s.createFallbackPlan(userID, plantID)
	}
	return plan
}

func (s *WateringPlanService) createPlan(userID, plantID string) (*models.WateringPlan, error) {
	prefs := s.prefs.Resolve(userID)

	var plant models.Plant
	if err := s.db.First(&plant, "id = ?", plantID).Error; err != nil {
		return nil, fmt.Errorf("load plant: %w", err)
	}

	interval, plantNotes := adjustIntervalForPlant(prefs.CadenceDays, &plant)
	notes := fmt.Sprintf("base_interval=%d, hour=%d, eco_check=%t | %s",
		prefs.CadenceDays, prefs.PreferredHour, prefs.EcoMode, plantNotes)

	nextDue := dayStart(time.Now().AddDate(0, 0, interval))
	dose := utils.EstimateDoseML(&plant, interval)

	plan := &models.WateringPlan{
		UserID:            userID,
		PlantID:           plantID,
		NextDueAt:         nextDue,
		IntervalDays:      interval,
		CheckSoilMoisture: prefs.EcoMode,
		Notes:             notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.WateringLog{
			UserID:   userID,
			PlantID:  plantID,
			DoneAt:   nextDue,
			AmountML: dose,
			Note:     models.NoteScheduledFromPlan,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&models.Reminder{
			UserID:      userID,
			Title:       fmt.Sprintf("Water %s", plant.DisplayName()),
			ScheduledAt: nextDue,
			EntityType:  models.ReminderEntityPlant,
			EntityID:    plantID,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// createFallbackPlan writes the emergency plan: water every 3 days starting
// tomorrow at midnight, dose estimated without plant data.
func (s *WateringPlanService) createFallbackPlan(userID, plantID string) *models.WateringPlan {
	nextDue := dayStart(time.Now().AddDate(0, 0, 1))
	plan := &models.WateringPlan{
		UserID:       userID,
		PlantID:      plantID,
		NextDueAt:    nextDue,
		IntervalDays: 3,
		Notes:        "FALLBACK PLAN",
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.WateringLog{
			UserID:   userID,
			PlantID:  plantID,
			DoneAt:   nextDue,
			AmountML: utils.EstimateDoseML(nil, 3),
			Note:     models.NoteScheduledFromPlan,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&models.Reminder{
			UserID:      userID,
			Title:       "Water your plant",
			ScheduledAt: nextDue,
			EntityType:  models.ReminderEntityPlant,
			EntityID:    plantID,
		}).Error
	})
	if err != nil {
		log.Printf("fallback plan creation failed for user %s plant %s: %v", userID, plantID, err)
	}
	return plan
}

// adjustIntervalForPlant applies plant-driven deltas to the questionnaire base
// cadence and clamps the result to at least one day.
func adjustIntervalForPlant(intervalDays int, plant *models.Plant) (int, string) {
	notes := ""

	wl := plant.WaterLevel
	if wl < 1 || wl > 5 {
		wl = 3
	}
	switch wl {
	case 1:
		intervalDays += 3
		notes += "water_level=very_low; "
	case 2:
		intervalDays += 1
		notes += "water_level=low; "
	case 3:
		notes += "water_level=medium; "
	case 4:
		intervalDays -= 1
		notes += "water_level=high; "
	case 5:
		intervalDays -= 2
		notes += "water_level=very_high; "
	}

	diff := plant.Difficulty
	if diff < 1 || diff > 5 {
		diff = 3
	}
	if diff >= 4 {
		intervalDays -= 1
		notes += "difficulty=high; "
	} else if diff == 1 {
		intervalDays += 1
		notes += "difficulty=easy; "
	}

	switch plant.Size {
	case models.SizeSmall:
		intervalDays += 1
		notes += "size=small; "
	case models.SizeGiant:
		intervalDays -= 1
		notes += "size=giant; "
	}

	if intervalDays < 1 {
		intervalDays = 1
	}
	return intervalDays, notes
}
