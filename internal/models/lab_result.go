package models

import (
	"time"

	"gorm.io/gorm"
)

type LabResult struct {
	ID          uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID      uint           `gorm:"index" json:"user_id" example:"1"`
	User        *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Title       string         `json:"title" example:"Blood panel March"`
	FileURL     string         `json:"file_url" example:"https://files.example.com/labs/abc.pdf"`
	Description string         `json:"description" example:"Fasting blood work"`
}
