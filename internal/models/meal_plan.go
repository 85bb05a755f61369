package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// StructuredPlan maps a day of week to meal slots ("Breakfast", "Lunch", ...)
// to recipe ids. Stored as a JSONB column.
type StructuredPlan map[string]map[string]uint

func (p StructuredPlan) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

func (p *StructuredPlan) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StructuredPlan", value)
	}
	return json.Unmarshal(raw, p)
}

type MealPlan struct {
	ID             uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt      time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt      time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID         uint           `gorm:"index" json:"user_id" example:"1"`
	User           *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	StartDate      time.Time      `json:"start_date" example:"2023-01-02T00:00:00Z"`
	EndDate        time.Time      `json:"end_date" example:"2023-01-08T00:00:00Z"`
	Content        string         `json:"content" example:"<p>Focus on whole foods this week.</p>"`
	StructuredPlan StructuredPlan `gorm:"type:jsonb" json:"structured_plan" swaggertype:"object"`
}
