package models

import (
	"time"

	"gorm.io/gorm"
)

// WeeklyUpdate is a patient's weekly check-in. Date is set at creation and
// never changes; at most one update is accepted per user per rolling 7 days.
type WeeklyUpdate struct {
	ID              uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt       time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt       time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID          uint           `gorm:"index" json:"user_id" example:"1"`
	User            *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Date            time.Time      `json:"date" example:"2023-01-01T00:00:00Z"`
	CurrentWeight   float64        `json:"current_weight" example:"74.5"`
	WaistCm         *float64       `json:"waist_cm" example:"80"`
	HipsCm          *float64       `json:"hips_cm" example:"95"`
	ChestCm         *float64       `json:"chest_cm" example:"100"`
	ArmCm           *float64       `json:"arm_cm" example:"32"`
	ThighCm         *float64       `json:"thigh_cm" example:"55"`
	EnergyLevel     *int           `json:"energy_level" example:"7"`
	ComplianceScore *int           `json:"compliance_score" example:"85"`
	Notes           string         `json:"notes" example:"Felt strong this week."`
	PhotoURL        string         `json:"photo_url" example:"https://files.example.com/updates/abc.jpg"`
}
