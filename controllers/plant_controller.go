package controllers

import (
	"net/http"

	"github.com/MichelaFaella/EcoGrow-BackEnd/config"
	"github.com/MichelaFaella/EcoGrow-BackEnd/models"

	"github.com/gin-gonic/gin"
)

// ListPlants returns the plant catalog, optionally filtered by size.
func ListPlants(c *gin.Context) {
	q := config.DB.Model(&models.Plant{})
	if size := c.Query("size"); size != "" {
		q = q.Where("size = ?", size)
	}

	var plants []models.Plant
	if err := q.Order("scientific_name ASC").Find(&plants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plants)
}

func GetPlant(c *gin.Context) {
	var plant models.Plant
	if err := config.DB.First(&plant, "id = ?", c.Param("plant_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "plant not found"})
		return
	}

	c.JSON(http.StatusOK, plant)
}
