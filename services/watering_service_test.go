package services

import (
	"testing"
	"time"

	"github.com/MichelaFaella/EcoGrow-BackEnd/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupPlannedPair creates a user, a plant and an initialized plan.
func setupPlannedPair(t *testing.T, db *gorm.DB) (string, string) {
	t.Helper()
	user := createTestUser(t, db)
	plant := createTestPlant(t, db, models.SizeMedium, 3, 3)
	newPlanService(db).InitializePlan(user.ID, plant.ID)
	return user.ID, plant.ID
}

func intPtr(v int) *int { return &v }

func TestRecordNoPlan(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)

	_, err := NewWateringService(db).Record(user.ID, uuid.NewString(), intPtr(100), "", time.Now())

	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestRecordAdvancesStrictlyPastDoneAt(t *testing.T) {
	db := newTestDB(t)
	userID, plantID := setupPlannedPair(t, db)

	// Plan fell behind by ten days.
	oldDue := dayStart(time.Now().AddDate(0, 0, -10))
	require.NoError(t, db.Model(&models.WateringPlan{}).
		Where("user_id = ? AND plant_id = ?", userID, plantID).
		Update("next_due_at", oldDue).Error)

	doneAt := time.Now()
	result, err := NewWateringService(db).Record(userID, plantID, intPtr(100), "", doneAt)
	require.NoError(t, err)

	assert.True(t, result.NextDueAt.After(doneAt))
	assert.Equal(t, dayStart(result.NextDueAt), result.NextDueAt)

	// The catch-up loop adds whole interval multiples, never assigns "now".
	gap := result.NextDueAt.Sub(oldDue)
	days := int(gap.Hours()/24 + 0.5)
	assert.Equal(t, 0, days%3)
	assert.GreaterOrEqual(t, days, 12)
}

func TestRecordSingleRealLogPerDay(t *testing.T) {
	db := newTestDB(t)
	userID, plantID := setupPlannedPair(t, db)
	svc := NewWateringService(db)

	doneAt := time.Now()
	for _, amount := range []int{100, 200, 300} {
		_, err := svc.Record(userID, plantID, intPtr(amount), "", doneAt)
		require.NoError(t, err)
	}

	today := dayStart(doneAt)
	var logs []models.WateringLog
	require.NoError(t, db.
		Where("user_id = ? AND plant_id = ? AND done_at >= ? AND done_at < ?",
			userID, plantID, today, today.AddDate(0, 0, 1)).
		Find(&logs).Error)

	require.Len(t, logs, 1)
	assert.False(t, logs[0].IsScheduled())
	assert.Equal(t, 300, logs[0].AmountML)
}

func TestRecordDosePrefersHistory(t *testing.T) {
	db := newTestDB(t)
	userID, plantID := setupPlannedPair(t, db)

	require.NoError(t, db.Create(&models.WateringLog{
		UserID:   userID,
		PlantID:  plantID,
		DoneAt:   time.Now().AddDate(0, 0, -5),
		AmountML: 300,
		Note:     "weekly watering",
	}).Error)

	result, err := NewWateringService(db).Record(userID, plantID, nil, "", time.Now())
	require.NoError(t, err)

	assert.Equal(t, 300, result.AmountML)

	// The new placeholder carries the same dose.
	var placeholder models.WateringLog
	require.NoError(t, db.
		Where("user_id = ? AND plant_id = ? AND note LIKE ?", userID, plantID, "%SCHEDULED%").
		First(&placeholder).Error)
	assert.Equal(t, 300, placeholder.AmountML)
}

func TestRecordOverrideBeatsHistory(t *testing.T) {
	db := newTestDB(t)
	userID, plantID := setupPlannedPair(t, db)

	require.NoError(t, db.Create(&models.WateringLog{
		UserID:   userID,
		PlantID:  plantID,
		DoneAt:   time.Now().AddDate(0, 0, -5),
		AmountML: 300,
		Note:     "weekly watering",
	}).Error)

	result, err := NewWateringService(db).Record(userID, plantID, intPtr(222), "", time.Now())
	require.NoError(t, err)

	assert.Equal(t, 222, result.AmountML)
}

func TestRecordMaintainsSingleReminder(t *testing.T) {
	db := newTestDB(t)
	userID, plantID := setupPlannedPair(t, db)
	svc := NewWateringService(db)

	_, err := svc.Record(userID, plantID, intPtr(100), "", time.Now())
	require.NoError(t, err)
	result, err := svc.Record(userID, plantID, intPtr(120), "", time.Now())
	require.NoError(t, err)

	var reminders []models.Reminder
	require.NoError(t, db.
		Where("user_id = ? AND entity_type = ? AND entity_id = ?",
			userID, models.ReminderEntityPlant, plantID).
		Find(&reminders).Error)

	require.Len(t, reminders, 1)
	assert.True(t, reminders[0].ScheduledAt.Equal(result.NextDueAt))
}

func TestUndoRestoresInitializedState(t *testing.T) {
	db := newTestDB(t)
	userID, plantID := setupPlannedPair(t, db)
	svc := NewWateringService(db)

	_, err := svc.Record(userID, plantID, intPtr(100), "", time.Now())
	require.NoError(t, err)

	result, err := svc.Undo(userID, plantID)
	require.NoError(t, err)

	today := dayStart(time.Now())
	assert.True(t, result.RestoredTo.Equal(today))
	assert.EqualValues(t, 1, result.DeletedTodayLogs)
	assert.EqualValues(t, 1, result.DeletedFutureLogs)

	var plan models.WateringPlan
	require.NoError(t, db.Where("user_id = ? AND plant_id = ?", userID, plantID).First(&plan).Error)
	assert.True(t, plan.NextDueAt.Equal(today))

	var logs []models.WateringLog
	require.NoError(t, db.Where("user_id = ? AND plant_id = ?", userID, plantID).Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.True(t, logs[0].IsScheduled())
	assert.True(t, logs[0].DoneAt.Equal(today))
	assert.Equal(t, models.NoteScheduledFromUndo, logs[0].Note)

	var reminders []models.Reminder
	require.NoError(t, db.
		Where("user_id = ? AND entity_id = ?", userID, plantID).
		Find(&reminders).Error)
	require.Len(t, reminders, 1)
	assert.True(t, reminders[0].ScheduledAt.Equal(today))
}

func TestUndoTwiceIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	userID, plantID := setupPlannedPair(t, db)
	svc := NewWateringService(db)

	_, err := svc.Record(userID, plantID, intPtr(100), "", time.Now())
	require.NoError(t, err)

	_, err = svc.Undo(userID, plantID)
	require.NoError(t, err)
	_, err = svc.Undo(userID, plantID)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.WateringLog{}).
		Where("user_id = ? AND plant_id = ?", userID, plantID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUndoNoPlan(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)

	_, err := NewWateringService(db).Undo(user.ID, uuid.NewString())

	assert.ErrorIs(t, err, ErrPlanNotFound)
}
