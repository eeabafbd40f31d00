package services

import (
	"testing"
	"time"

	"github.com/MichelaFaella/EcoGrow-BackEnd/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializePlanGiantDemandingPlant(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	plant := createTestPlant(t, db, models.SizeGiant, 5, 5)
	seedAndAnswer(t, db, user.ID, map[string]int{
		models.QuestionTypeCareDay:   2, // weekends -> 7 days
		models.QuestionTypeTimeOfDay: 1,
	})

	plan := newPlanService(db).InitializePlan(user.ID, plant.ID)

	// 7 base, -2 water level, -1 difficulty, -1 giant
	assert.Equal(t, 3, plan.IntervalDays)
	assert.Equal(t, dayStart(time.Now().AddDate(0, 0, 3)), plan.NextDueAt)

	var log models.WateringLog
	require.NoError(t, db.Where("user_id = ? AND plant_id = ?", user.ID, plant.ID).First(&log).Error)
	assert.Equal(t, 420, log.AmountML) // 350 * 1.2
	assert.Equal(t, models.NoteScheduledFromPlan, log.Note)
	assert.True(t, log.DoneAt.Equal(plan.NextDueAt))

	var reminder models.Reminder
	require.NoError(t, db.Where("user_id = ? AND entity_id = ?", user.ID, plant.ID).First(&reminder).Error)
	assert.True(t, reminder.ScheduledAt.Equal(plan.NextDueAt))
	assert.Equal(t, "Water Swiss cheese plant", reminder.Title)
}

func TestInitializePlanIntervalNeverBelowOneDay(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	plant := createTestPlant(t, db, models.SizeGiant, 5, 4)
	seedAndAnswer(t, db, user.ID, map[string]int{
		models.QuestionTypeCareDay: 4, // every other day -> 2
	})

	plan := newPlanService(db).InitializePlan(user.ID, plant.ID)

	// 2 - 2 - 1 - 1 clamps to 1
	assert.Equal(t, 1, plan.IntervalDays)
}

func TestInitializePlanFallbackOnMissingPlant(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)

	plan := newPlanService(db).InitializePlan(user.ID, uuid.NewString())

	assert.Equal(t, 3, plan.IntervalDays)
	assert.Equal(t, "FALLBACK PLAN", plan.Notes)
	assert.Equal(t, dayStart(time.Now().AddDate(0, 0, 1)), plan.NextDueAt)

	var log models.WateringLog
	require.NoError(t, db.Where("user_id = ? AND plant_id = ?", user.ID, plan.PlantID).First(&log).Error)
	assert.Equal(t, 150, log.AmountML)
	assert.Equal(t, models.NoteScheduledFromPlan, log.Note)
}

func TestInitializePlanIsIdempotentPerPair(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	plant := createTestPlant(t, db, models.SizeMedium, 3, 3)
	svc := newPlanService(db)

	first := svc.InitializePlan(user.ID, plant.ID)
	second := svc.InitializePlan(user.ID, plant.ID)

	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.WateringPlan{}).
		Where("user_id = ? AND plant_id = ?", user.ID, plant.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAdjustIntervalForPlantDefaults(t *testing.T) {
	plant := &models.Plant{WaterLevel: 0, Difficulty: 0, Size: ""}

	interval, _ := adjustIntervalForPlant(3, plant)

	// out-of-range attributes fall back to medium everything
	assert.Equal(t, 3, interval)
}
