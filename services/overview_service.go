package services

import (
	"errors"
	"time"

	"github.com/MichelaFaella/EcoGrow-BackEnd/models"
	"github.com/MichelaFaella/EcoGrow-BackEnd/utils"

	"gorm.io/gorm"
)

const overviewDays = 7

// Fallback dose used for placeholders synthesized on the read path.
const overviewDefaultDoseML = 150

const thumbnailMaxDim = 160

type OverviewService struct {
	db *gorm.DB
}

func NewOverviewService(db *gorm.DB) *OverviewService {
	return &OverviewService{db: db}
}

type OverviewLogEntry struct {
	DoneAt   time.Time `json:"done_at"`
	AmountML int       `json:"amount_ml"`
	Note     string    `json:"note"`
}

type OverviewPlant struct {
	PlantID   string             `json:"plant_id"`
	Name      string             `json:"name"`
	Logs      []OverviewLogEntry `json:"logs"`
	Thumbnail string             `json:"thumbnail,omitempty"`
}

type OverviewDay struct {
	Date        string          `json:"date"`
	PlantsCount int             `json:"plants_count"`
	Plants      []OverviewPlant `json:"plants"`
}

type CalendarEvent struct {
	ID           string    `json:"id"`
	PlantID      string    `json:"plant_id"`
	PlantName    string    `json:"plant_name"`
	Title        string    `json:"title"`
	Start        time.Time `json:"start"`
	IntervalDays int       `json:"interval_days"`
}

// WeeklyOverview projects the user's plans onto the next seven calendar days,
// anchored at today. A plan with no log rows in the window gets exactly one
// placeholder synthesized (and persisted) at its next due day, so the plant
// never silently disappears from the calendar.
func (s *OverviewService) WeeklyOverview(userID string) ([]OverviewDay, error) {
	today := dayStart(time.Now())
	windowEnd := today.AddDate(0, 0, overviewDays)

	var plans []models.WateringPlan
	if err := s.db.Where("user_id = ?", userID).Find(&plans).Error; err != nil {
		return nil, err
	}

	days := make([]OverviewDay, overviewDays)
	for i := range days {
		days[i] = OverviewDay{
			Date:   today.AddDate(0, 0, i).Format("2006-01-02"),
			Plants: []OverviewPlant{},
		}
	}

	for _, plan := range plans {
		var plant models.Plant
		if err := s.db.First(&plant, "id = ?", plan.PlantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}

		var logs []models.WateringLog
		if err := s.db.
			Where("user_id = ? AND plant_id = ? AND done_at >= ? AND done_at < ?",
				userID, plan.PlantID, today, windowEnd).
			Order("done_at ASC").
			Find(&logs).Error; err != nil {
			return nil, err
		}

		if len(logs) == 0 {
			placeholder, err := s.backfillPlaceholder(&plan)
			if err != nil {
				return nil, err
			}
			if !placeholder.DoneAt.Before(today) && placeholder.DoneAt.Before(windowEnd) {
				logs = append(logs, *placeholder)
			}
		}

		thumb := s.thumbnailFor(plan.PlantID)

		byDay := map[int][]OverviewLogEntry{}
		for _, l := range logs {
			idx := int(dayStart(l.DoneAt).Sub(today).Hours() / 24)
			if idx < 0 || idx >= overviewDays {
				continue
			}
			byDay[idx] = append(byDay[idx], OverviewLogEntry{
				DoneAt:   l.DoneAt,
				AmountML: l.AmountML,
				Note:     l.Note,
			})
		}

		for idx, entries := range byDay {
			days[idx].Plants = append(days[idx].Plants, OverviewPlant{
				PlantID:   plan.PlantID,
				Name:      plant.DisplayName(),
				Logs:      entries,
				Thumbnail: thumb,
			})
			days[idx].PlantsCount = len(days[idx].Plants)
		}
	}

	return days, nil
}

// backfillPlaceholder lazily restores the missing placeholder at the plan's
// next due day. FirstOrCreate keeps the read path idempotent under the
// one-entry-per-day constraint.
func (s *OverviewService) backfillPlaceholder(plan *models.WateringPlan) (*models.WateringLog, error) {
	due := dayStart(plan.NextDueAt)
	placeholder := models.WateringLog{
		UserID:   plan.UserID,
		PlantID:  plan.PlantID,
		DoneAt:   due,
		AmountML: overviewDefaultDoseML,
		Note:     models.NoteScheduledFromPlan,
	}
	err := s.db.
		Where("user_id = ? AND plant_id = ? AND done_day = ?", plan.UserID, plan.PlantID, due).
		FirstOrCreate(&placeholder).Error
	if err != nil {
		return nil, err
	}
	return &placeholder, nil
}

// thumbnailFor returns a best-effort compressed thumbnail for the plant's most
// recent photo, or "" when no usable photo exists.
func (s *OverviewService) thumbnailFor(plantID string) string {
	var photo models.PlantPhoto
	err := s.db.Where("plant_id = ?", plantID).
		Order("created_at DESC").
		First(&photo).Error
	if err != nil {
		return ""
	}
	thumb, err := utils.ThumbnailBase64(photo.Data, thumbnailMaxDim)
	if err != nil {
		return ""
	}
	return thumb
}

// CalendarExport flattens each plan into a single recurring event for
// calendar sync clients.
func (s *OverviewService) CalendarExport(userID string) ([]CalendarEvent, error) {
	var plans []models.WateringPlan
	if err := s.db.Where("user_id = ?", userID).Find(&plans).Error; err != nil {
		return nil, err
	}

	events := make([]CalendarEvent, 0, len(plans))
	for _, plan := range plans {
		name := "your plant"
		var plant models.Plant
		if err := s.db.First(&plant, "id = ?", plan.PlantID).Error; err == nil {
			name = plant.DisplayName()
		}
		events = append(events, CalendarEvent{
			ID:           plan.ID,
			PlantID:      plan.PlantID,
			PlantName:    name,
			Title:        "Water " + name,
			Start:        plan.NextDueAt,
			IntervalDays: plan.IntervalDays,
		})
	}
	return events, nil
}
