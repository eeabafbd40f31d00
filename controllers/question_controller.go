package controllers

import (
	"net/http"

	"github.com/MichelaFaella/EcoGrow-BackEnd/config"
	"github.com/MichelaFaella/EcoGrow-BackEnd/services"

	"github.com/gin-gonic/gin"
)

func ListQuestions(c *gin.Context) {
	userID := c.GetString("userID")

	questions, err := services.NewQuestionService(config.DB).List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, questions)
}

type answersInput struct {
	Answers map[string]int `json:"answers" binding:"required"`
}

// SaveQuestionAnswers stores 1-based option positions keyed by question id.
func SaveQuestionAnswers(c *gin.Context) {
	userID := c.GetString("userID")

	var input answersInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.NewQuestionService(config.DB).SaveAnswers(userID, input.Answers); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "answers saved"})
}
