package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal types accepted on a FoodLog.
const (
	MealTypeBreakfast = "Breakfast"
	MealTypeLunch     = "Lunch"
	MealTypeDinner    = "Dinner"
	MealTypeSnack     = "Snack"
)

type FoodLog struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID    uint           `gorm:"index" json:"user_id" example:"1"`
	User      *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Date      time.Time      `json:"date" example:"2023-01-01T00:00:00Z"`
	MealType  string         `json:"meal_type" example:"Breakfast"`
	Content   string         `json:"content" example:"Oatmeal with blueberries"`
	ImageURL  string         `json:"image_url" example:"https://files.example.com/logs/abc.jpg"`
}
