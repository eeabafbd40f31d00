package controllers

import (
	"net/http"

	"github.com/MichelaFaella/EcoGrow-BackEnd/config"
	"github.com/MichelaFaella/EcoGrow-BackEnd/models"

	"github.com/gin-gonic/gin"
)

func ListReminders(c *gin.Context) {
	userID := c.GetString("userID")

	var reminders []models.Reminder
	if err := config.DB.Where("user_id = ?", userID).
		Order("scheduled_at ASC").
		Find(&reminders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reminders)
}
