package repository

import (
	"gorm.io/gorm"

	"nourishlab/internal/models"
)

type MessageRepository interface {
	Create(message *models.Message) error
	ListForUser(userID uint, peerID *uint) ([]models.Message, error)
	MarkConversationRead(recipientID, senderID uint) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// ListForUser returns every message the user sent or received, oldest first.
// With a peer it narrows to that one conversation.
func (r *messageRepository) ListForUser(userID uint, peerID *uint) ([]models.Message, error) {
	var messages []models.Message
	q := r.db.Preload("Sender").Preload("Recipient")
	if peerID != nil {
		q = q.Where(
			"(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID, *peerID, *peerID, userID,
		)
	} else {
		q = q.Where("sender_id = ? OR recipient_id = ?", userID, userID)
	}
	err := q.Order("created_at ASC").Find(&messages).Error
	return messages, err
}

// MarkConversationRead flips is_read on every unread message the recipient
// has from the given sender and reports how many rows changed.
func (r *messageRepository) MarkConversationRead(recipientID, senderID uint) (int64, error) {
	res := r.db.Model(&models.Message{}).
		Where("recipient_id = ? AND sender_id = ? AND is_read = ?", recipientID, senderID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
