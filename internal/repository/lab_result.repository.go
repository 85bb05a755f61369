package repository

import (
	"time"

	"gorm.io/gorm"

	"nourishlab/internal/models"
)

type LabResultRepository interface {
	Create(result *models.LabResult) error
	ListByUser(userID uint) ([]models.LabResult, error)
	ListSince(since time.Time, limit int) ([]models.LabResult, error)
}

type labResultRepository struct {
	db *gorm.DB
}

func NewLabResultRepository(db *gorm.DB) LabResultRepository {
	return &labResultRepository{db: db}
}

func (r *labResultRepository) Create(result *models.LabResult) error {
	return r.db.Create(result).Error
}

func (r *labResultRepository) ListByUser(userID uint) ([]models.LabResult, error) {
	var results []models.LabResult
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&results).Error
	return results, err
}

func (r *labResultRepository) ListSince(since time.Time, limit int) ([]models.LabResult, error) {
	var results []models.LabResult
	err := r.db.Preload("User").
		Joins("JOIN profiles ON profiles.user_id = lab_results.user_id").
		Where("lab_results.created_at >= ? AND profiles.is_nutritionist = ?", since, false).
		Order("lab_results.created_at DESC").
		Limit(limit).
		Find(&results).Error
	return results, err
}
