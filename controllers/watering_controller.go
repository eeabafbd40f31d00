package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/MichelaFaella/EcoGrow-BackEnd/config"
	"github.com/MichelaFaella/EcoGrow-BackEnd/models"
	"github.com/MichelaFaella/EcoGrow-BackEnd/services"

	"github.com/gin-gonic/gin"
)

type waterInput struct {
	AmountML *int   `json:"amount_ml" binding:"required"`
	Note     string `json:"note"`
	DoneAt   string `json:"done_at"`
}

// WaterPlant handles "I watered this plant now".
func WaterPlant(c *gin.Context) {
	userID := c.GetString("userID")
	plantID := c.Param("plant_id")

	var input waterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if *input.AmountML <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "amount_ml must be a positive integer"})
		return
	}

	doneAt := time.Now()
	if input.DoneAt != "" {
		parsed, err := time.Parse(time.RFC3339, input.DoneAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "done_at must be an ISO-8601 timestamp"})
			return
		}
		doneAt = parsed
	}

	result, err := services.NewWateringService(config.DB).
		Record(userID, plantID, input.AmountML, input.Note, doneAt)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, services.ErrPlanNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":             true,
		"next_due_at":    result.NextDueAt,
		"interval_days":  result.IntervalDays,
		"amount_ml_used": result.AmountML,
	})
}

// UndoWatering reverses today's watering for the plant.
func UndoWatering(c *gin.Context) {
	userID := c.GetString("userID")
	plantID := c.Param("plant_id")

	result, err := services.NewWateringService(config.DB).Undo(userID, plantID)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, services.ErrPlanNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":                  true,
		"restored_to":         result.RestoredTo,
		"deleted_today_logs":  result.DeletedTodayLogs,
		"deleted_future_logs": result.DeletedFutureLogs,
	})
}

// WeeklyOverview returns seven day-buckets of watering activity.
func WeeklyOverview(c *gin.Context) {
	userID := c.GetString("userID")

	days, err := services.NewOverviewService(config.DB).WeeklyOverview(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, days)
}

// CalendarExport returns one recurring event per plan for calendar sync.
func CalendarExport(c *gin.Context) {
	userID := c.GetString("userID")

	events, err := services.NewOverviewService(config.DB).CalendarExport(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, events)
}

func ListWateringPlans(c *gin.Context) {
	userID := c.GetString("userID")

	var plans []models.WateringPlan
	if err := config.DB.Where("user_id = ?", userID).Find(&plans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plans)
}

func ListWateringLogs(c *gin.Context) {
	userID := c.GetString("userID")

	q := config.DB.Where("user_id = ?", userID)
	if plantID := c.Query("plant_id"); plantID != "" {
		q = q.Where("plant_id = ?", plantID)
	}

	var logs []models.WateringLog
	if err := q.Order("done_at DESC").Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}
