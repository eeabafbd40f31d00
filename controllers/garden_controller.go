package controllers

import (
	"errors"
	"net/http"

	"github.com/MichelaFaella/EcoGrow-BackEnd/config"
	"github.com/MichelaFaella/EcoGrow-BackEnd/services"

	"github.com/gin-gonic/gin"
)

func gardenService() *services.GardenService {
	prefs := services.NewPreferenceResolver(config.DB, services.DefaultPreferenceMaps)
	plans := services.NewWateringPlanService(config.DB, prefs)
	return services.NewGardenService(config.DB, plans)
}

type userPlantInput struct {
	PlantID string `json:"plant_id" binding:"required"`
}

// AddUserPlant links a plant into the caller's garden and, on first link,
// initializes its watering plan.
func AddUserPlant(c *gin.Context) {
	userID := c.GetString("userID")

	var input userPlantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := gardenService().AddPlant(userID, input.PlantID)
	if err != nil {
		if errors.Is(err, services.ErrPlantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, link)
}

func ListUserPlants(c *gin.Context) {
	userID := c.GetString("userID")

	plants, err := gardenService().ListPlants(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plants)
}

func DeleteUserPlant(c *gin.Context) {
	userID := c.GetString("userID")

	var input userPlantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := gardenService().RemovePlant(userID, input.PlantID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
