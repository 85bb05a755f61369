package repository

import (
	"time"

	"gorm.io/gorm"

	"nourishlab/internal/models"
)

type FoodLogRepository interface {
	Create(log *models.FoodLog) error
	ListByUser(userID uint) ([]models.FoodLog, error)
	ListByUserLimited(userID uint, limit int) ([]models.FoodLog, error)
	ListSince(since time.Time, limit int) ([]models.FoodLog, error)
}

type foodLogRepository struct {
	db *gorm.DB
}

func NewFoodLogRepository(db *gorm.DB) FoodLogRepository {
	return &foodLogRepository{db: db}
}

func (r *foodLogRepository) Create(log *models.FoodLog) error {
	return r.db.Create(log).Error
}

func (r *foodLogRepository) ListByUser(userID uint) ([]models.FoodLog, error) {
	var logs []models.FoodLog
	err := r.db.Where("user_id = ?", userID).Order("date DESC").Find(&logs).Error
	return logs, err
}

func (r *foodLogRepository) ListByUserLimited(userID uint, limit int) ([]models.FoodLog, error) {
	var logs []models.FoodLog
	err := r.db.Where("user_id = ?", userID).Order("date DESC").Limit(limit).Find(&logs).Error
	return logs, err
}

func (r *foodLogRepository) ListSince(since time.Time, limit int) ([]models.FoodLog, error) {
	var logs []models.FoodLog
	err := r.db.Preload("User").
		Joins("JOIN profiles ON profiles.user_id = food_logs.user_id").
		Where("food_logs.created_at >= ? AND profiles.is_nutritionist = ?", since, false).
		Order("food_logs.created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
