package database

import (
	"log"

	"nourishlab/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Recipe{},
		&models.MealPlan{},
		&models.MealPlanTemplate{},
		&models.WeeklyUpdate{},
		&models.FoodLog{},
		&models.Message{},
		&models.LabResult{},
		&models.NutritionistNote{},
	)
	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
