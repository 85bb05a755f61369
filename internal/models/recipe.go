package models

import (
	"time"

	"gorm.io/gorm"
)

type Recipe struct {
	ID              uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt       time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt       time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Title           string         `json:"title" example:"Berry Smoothie Bowl"`
	PrepTimeMinutes int            `json:"prep_time_minutes" example:"5"`
	CookTimeMinutes int            `json:"cook_time_minutes" example:"0"`
	Servings        int            `json:"servings" example:"1"`
	Calories        float64        `json:"calories" example:"320"`
	ProteinG        float64        `json:"protein_g" example:"15"`
	CarbsG          float64        `json:"carbs_g" example:"45"`
	FatG            float64        `json:"fat_g" example:"10"`
	Ingredients     string         `json:"ingredients" example:"Frozen Berries\nBanana\nProtein Powder"`
	Instructions    string         `json:"instructions" example:"Blend all ingredients until smooth."`
	Tags            string         `json:"tags" example:"Breakfast, Vegan, Quick"`
}
