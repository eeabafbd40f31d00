package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestWateringLogDoneDayTruncation(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&WateringLog{}))

	doneAt := time.Date(2026, 8, 31, 14, 45, 12, 0, time.Local)
	log := WateringLog{
		UserID:   "u1",
		PlantID:  "p1",
		DoneAt:   doneAt,
		AmountML: 120,
	}
	require.NoError(t, db.Create(&log).Error)

	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local), log.DoneDay)

	// Second entry on the same calendar day violates the per-day constraint.
	dup := WateringLog{
		UserID:   "u1",
		PlantID:  "p1",
		DoneAt:   doneAt.Add(2 * time.Hour),
		AmountML: 90,
	}
	assert.Error(t, db.Create(&dup).Error)
}

func TestWateringLogIsScheduled(t *testing.T) {
	assert.True(t, (&WateringLog{Note: NoteScheduledFromPlan}).IsScheduled())
	assert.True(t, (&WateringLog{Note: NoteScheduledFromUndo}).IsScheduled())
	assert.False(t, (&WateringLog{Note: "evening watering"}).IsScheduled())
}
