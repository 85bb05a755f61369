package models

import (
	"time"

	"gorm.io/gorm"
)

// MealPlanTemplate is a reusable starting point for meal plans. Creating a
// plan from a template copies the content, it does not reference it.
type MealPlanTemplate struct {
	ID             uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt      time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt      time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Name           string         `json:"name" example:"Low Carb Week"`
	Description    string         `json:"description" example:"A week of low carb dinners."`
	Content        string         `json:"content" example:"<p>Low carb plan</p>"`
	StructuredPlan StructuredPlan `gorm:"type:jsonb" json:"structured_plan" swaggertype:"object"`
}
