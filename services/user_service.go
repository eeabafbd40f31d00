package services

import (
	"errors"

	"github.com/MichelaFaella/EcoGrow-BackEnd/config"
	"github.com/MichelaFaella/EcoGrow-BackEnd/models"
)

type ProfileInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func GetUserProfile(userID string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	return map[string]interface{}{
		"id":         user.ID,
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
	}, nil
}

func UpdateUserProfile(userID string, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}

	return config.DB.Save(&user).Error
}

// DeleteUser disables the account rather than dropping the row, so watering
// history and audit trails stay intact.
func DeleteUser(userID string) error {
	var user models.User
	result := config.DB.First(&user, "id = ?", userID)
	if result.Error != nil {
		return result.Error
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}
