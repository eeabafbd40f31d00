package services

import (
	"errors"
	"fmt"

	"github.com/MichelaFaella/EcoGrow-BackEnd/models"

	"gorm.io/gorm"
)

var ErrPlantNotFound = errors.New("plant not found")

type GardenService struct {
	db    *gorm.DB
	plans *WateringPlanService
}

func NewGardenService(db *gorm.DB, plans *WateringPlanService) *GardenService {
	return &GardenService{db: db, plans: plans}
}

// AddPlant links a plant into the user's garden. The first link for a
// (user, plant) pair synchronously initializes its watering plan; relinking
// an already-present plant is a no-op on the plan.
func (g *GardenService) AddPlant(userID, plantID string) (*models.UserPlant, error) {
	var plant models.Plant
	if err := g.db.First(&plant, "id = ?", plantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlantNotFound
		}
		return nil, err
	}

	link := models.UserPlant{UserID: userID, PlantID: plantID}
	res := g.db.Where("user_id = ? AND plant_id = ?", userID, plantID).FirstOrCreate(&link)
	if res.Error != nil {
		return nil, fmt.Errorf("link plant: %w", res.Error)
	}

	if res.RowsAffected > 0 {
		g.plans.InitializePlan(userID, plantID)
	}
	return &link, nil
}

// ListPlants returns the catalog entries currently in the user's garden.
func (g *GardenService) ListPlants(userID string) ([]models.Plant, error) {
	var plants []models.Plant
	err := g.db.
		Joins("JOIN user_plants ON user_plants.plant_id = plants.id").
		Where("user_plants.user_id = ?", userID).
		Find(&plants).Error
	return plants, err
}

// RemovePlant unlinks a plant from the garden. Plan, logs and reminders are
// left in place so history survives a re-add.
func (g *GardenService) RemovePlant(userID, plantID string) error {
	res := g.db.Where("user_id = ? AND plant_id = ?", userID, plantID).
		Delete(&models.UserPlant{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("plant is not in the garden")
	}
	return nil
}
