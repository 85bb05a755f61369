package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Username  string         `gorm:"unique" json:"username" example:"janedoe"`
	Email     string         `json:"email" example:"jane.doe@example.com"`
	Password  string         `json:"-"`
	IsStaff   bool           `gorm:"default:false" json:"is_staff" example:"false"`
	Profile   *Profile       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
}
