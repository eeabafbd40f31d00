package services

import (
	"testing"
	"time"

	"github.com/MichelaFaella/EcoGrow-BackEnd/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Plant{},
		&models.PlantPhoto{},
		&models.UserPlant{},
		&models.Question{},
		&models.WateringPlan{},
		&models.WateringLog{},
		&models.Reminder{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{
		Email:     "tester@example.com",
		Password:  "hashed",
		FirstName: "Test",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPlant(t *testing.T, db *gorm.DB, size string, waterLevel, difficulty int) *models.Plant {
	t.Helper()
	plant := &models.Plant{
		ScientificName: "Monstera deliciosa",
		CommonName:     "Swiss cheese plant",
		Size:           size,
		WaterLevel:     waterLevel,
		Difficulty:     difficulty,
	}
	require.NoError(t, db.Create(plant).Error)
	return plant
}

func seedAndAnswer(t *testing.T, db *gorm.DB, userID string, answers map[string]int) {
	t.Helper()
	require.NoError(t, NewQuestionService(db).SeedDefaults(userID))
	for qtype, pos := range answers {
		var q models.Question
		require.NoError(t, db.Where("user_id = ? AND type = ?", userID, qtype).First(&q).Error)
		p := pos
		now := time.Now()
		q.Answer = &p
		q.AnsweredAt = &now
		require.NoError(t, db.Save(&q).Error)
	}
}

func newPlanService(db *gorm.DB) *WateringPlanService {
	return NewWateringPlanService(db, NewPreferenceResolver(db, DefaultPreferenceMaps))
}
