package models

import (
	"time"

	"gorm.io/gorm"
)

// Profile holds the coaching intake data for a user. It is created in the
// same transaction as its User and cascades with it.
type Profile struct {
	ID             uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt      time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt      time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID         uint           `gorm:"unique" json:"user_id" example:"1"`
	Age            *int           `json:"age" example:"30"`
	Height         *float64       `json:"height" example:"180"`
	Weight         *float64       `json:"weight" example:"75"`
	Goals          string         `json:"goals" example:"Lose 5kg before summer"`
	DietaryPrefs   string         `json:"dietary_prefs" example:"Vegetarian"`
	Allergies      string         `json:"allergies" example:"Peanuts"`
	IsApproved     bool           `gorm:"default:false" json:"is_approved" example:"false"`
	IsNutritionist bool           `gorm:"default:false" json:"is_nutritionist" example:"false"`
	NutritionistID *uint          `json:"nutritionist_id,omitempty" example:"2"`
}
