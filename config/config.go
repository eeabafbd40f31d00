package config

import (
	"fmt"
	"log"
	"os"

	"github.com/MichelaFaella/EcoGrow-BackEnd/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment as-is")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Plant{},
		&models.PlantPhoto{},
		&models.UserPlant{},
		&models.Question{},
		&models.WateringPlan{},
		&models.WateringLog{},
		&models.Reminder{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
