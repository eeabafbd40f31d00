package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/MichelaFaella/EcoGrow-BackEnd/models"
	"github.com/MichelaFaella/EcoGrow-BackEnd/utils"

	"gorm.io/gorm"
)

// ErrPlanNotFound is returned when a watering action targets a (user, plant)
// pair that has no plan.
var ErrPlanNotFound = errors.New("watering plan not found")

type WateringService struct {
	db *gorm.DB
}

func NewWateringService(db *gorm.DB) *WateringService {
	return &WateringService{db: db}
}

type WateringResult struct {
	NextDueAt    time.Time `json:"next_due_at"`
	IntervalDays int       `json:"interval_days"`
	AmountML     int       `json:"amount_ml_used"`
}

type UndoResult struct {
	RestoredTo        time.Time `json:"restored_to"`
	DeletedTodayLogs  int64     `json:"deleted_today_logs"`
	DeletedFutureLogs int64     `json:"deleted_future_logs"`
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Record registers a real watering event at doneAt and rolls the plan forward.
// The day's window is always derived from doneAt, so after this call exactly
// one real log exists for that calendar day, exactly one placeholder marks the
// next due day, and exactly one reminder points at it.
//
// The dose is resolved in order: caller override, amount of the most recent
// log strictly before doneAt's day, fresh estimate from the plan interval.
func (s *WateringService) Record(userID, plantID string, amountML *int, note string, doneAt time.Time) (*WateringResult, error) {
	if doneAt.IsZero() {
		doneAt = time.Now()
	}
	today := dayStart(doneAt)
	tomorrow := today.AddDate(0, 0, 1)

	var result WateringResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var plan models.WateringPlan
		if err := tx.Where("user_id = ? AND plant_id = ?", userID, plantID).
			First(&plan).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPlanNotFound
			}
			return err
		}

		dose, err := s.resolveDose(tx, &plan, amountML, today)
		if err != nil {
			return err
		}

		// Clear any stale placeholder or duplicate from a previous run, then
		// record the single real event for this day.
		if err := tx.Where("user_id = ? AND plant_id = ? AND done_at >= ? AND done_at < ?",
			userID, plantID, today, tomorrow).
			Delete(&models.WateringLog{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.WateringLog{
			UserID:   userID,
			PlantID:  plantID,
			DoneAt:   doneAt,
			AmountML: dose,
			Note:     note,
		}).Error; err != nil {
			return err
		}

		// Advance next_due_at past doneAt, catching up any missed cycles.
		interval := plan.IntervalDays
		if interval < 1 {
			interval = 1
		}
		next := plan.NextDueAt
		if next.IsZero() {
			next = doneAt
		}
		for !next.After(doneAt) {
			next = next.AddDate(0, 0, interval)
		}
		next = dayStart(next)
		plan.NextDueAt = next

		// One placeholder on the due day, delete-then-insert.
		if err := tx.Where("user_id = ? AND plant_id = ? AND done_day = ?",
			userID, plantID, next).
			Delete(&models.WateringLog{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.WateringLog{
			UserID:   userID,
			PlantID:  plantID,
			DoneAt:   next,
			AmountML: dose,
			Note:     models.NoteScheduledFromPlan,
		}).Error; err != nil {
			return err
		}

		if err := tx.Save(&plan).Error; err != nil {
			return err
		}

		if err := s.replaceReminder(tx, userID, plantID, next); err != nil {
			return err
		}

		result = WateringResult{
			NextDueAt:    next,
			IntervalDays: plan.IntervalDays,
			AmountML:     dose,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	EmitReminderReplaced(userID, plantID, result.NextDueAt)
	return &result, nil
}

// Undo reverses today's watering: it removes every log for today and every
// future placeholder, restores a single placeholder at today's midnight and
// resets the plan to be due today. Applying Record then Undo on the same day
// returns the pair to its just-initialized shape.
func (s *WateringService) Undo(userID, plantID string) (*UndoResult, error) {
	now := time.Now()
	today := dayStart(now)
	tomorrow := today.AddDate(0, 0, 1)

	var result UndoResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var plan models.WateringPlan
		if err := tx.Where("user_id = ? AND plant_id = ?", userID, plantID).
			First(&plan).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPlanNotFound
			}
			return err
		}

		delToday := tx.Where("user_id = ? AND plant_id = ? AND done_at >= ? AND done_at < ?",
			userID, plantID, today, tomorrow).
			Delete(&models.WateringLog{})
		if delToday.Error != nil {
			return delToday.Error
		}

		delFuture := tx.Where("user_id = ? AND plant_id = ? AND done_at >= ?",
			userID, plantID, tomorrow).
			Delete(&models.WateringLog{})
		if delFuture.Error != nil {
			return delFuture.Error
		}

		dose, err := s.resolveDose(tx, &plan, nil, today)
		if err != nil {
			return err
		}

		if err := tx.Create(&models.WateringLog{
			UserID:   userID,
			PlantID:  plantID,
			DoneAt:   today,
			AmountML: dose,
			Note:     models.NoteScheduledFromUndo,
		}).Error; err != nil {
			return err
		}

		plan.NextDueAt = today
		if err := tx.Save(&plan).Error; err != nil {
			return err
		}

		if err := s.replaceReminder(tx, userID, plantID, today); err != nil {
			return err
		}

		result = UndoResult{
			RestoredTo:        today,
			DeletedTodayLogs:  delToday.RowsAffected,
			DeletedFutureLogs: delFuture.RowsAffected,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	EmitReminderReplaced(userID, plantID, today)
	return &result, nil
}

// resolveDose prefers an explicit override, then the amount of the most
// recent log strictly before the given day, then a fresh estimate.
func (s *WateringService) resolveDose(tx *gorm.DB, plan *models.WateringPlan, override *int, today time.Time) (int, error) {
	if override != nil {
		return *override, nil
	}

	var last models.WateringLog
	err := tx.Where("user_id = ? AND plant_id = ? AND done_at < ?",
		plan.UserID, plan.PlantID, today).
		Order("done_at DESC").
		First(&last).Error
	if err == nil {
		return last.AmountML, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	var plant models.Plant
	if err := tx.First(&plant, "id = ?", plan.PlantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.EstimateDoseML(nil, plan.IntervalDays), nil
		}
		return 0, err
	}
	return utils.EstimateDoseML(&plant, plan.IntervalDays), nil
}

// replaceReminder enforces the at-most-one-reminder-per-plant invariant.
func (s *WateringService) replaceReminder(tx *gorm.DB, userID, plantID string, scheduledAt time.Time) error {
	if err := tx.Where("user_id = ? AND entity_type = ? AND entity_id = ?",
		userID, models.ReminderEntityPlant, plantID).
		Delete(&models.Reminder{}).Error; err != nil {
		return err
	}

	title := "Water your plant"
	var plant models.Plant
	if err := tx.First(&plant, "id = ?", plantID).Error; err == nil {
		title = fmt.Sprintf("Water %s", plant.DisplayName())
	}

	return tx.Create(&models.Reminder{
		UserID:      userID,
		Title:       title,
		ScheduledAt: scheduledAt,
		EntityType:  models.ReminderEntityPlant,
		EntityID:    plantID,
	}).Error
}
