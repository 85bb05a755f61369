package models

import (
	"time"

	"gorm.io/gorm"
)

// Message is an immutable direct message between two users. Only the is_read
// flag changes after creation.
type Message struct {
	ID          uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	SenderID    uint           `gorm:"index" json:"sender_id" example:"1"`
	Sender      *User          `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	RecipientID uint           `gorm:"index" json:"recipient_id" example:"2"`
	Recipient   *User          `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
	Subject     string         `json:"subject" example:"Check-in"`
	Content     string         `json:"content" example:"How did the new plan go?"`
	IsRead      bool           `gorm:"default:false" json:"is_read" example:"false"`
}
