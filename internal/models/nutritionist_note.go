package models

import (
	"time"

	"gorm.io/gorm"
)

// NutritionistNote is a private note a nutritionist keeps about a patient.
// Only the authoring nutritionist may read or modify it.
type NutritionistNote struct {
	ID             uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt      time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt      time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	NutritionistID uint           `gorm:"index" json:"nutritionist_id" example:"2"`
	PatientID      uint           `gorm:"index" json:"patient_id" example:"1"`
	Patient        *User          `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Content        string         `json:"content" example:"Responding well to higher protein."`
	Tags           string         `json:"tags" example:"protein, progress"`
}
