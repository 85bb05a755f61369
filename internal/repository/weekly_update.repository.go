package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"nourishlab/internal/models"
	"nourishlab/internal/validation"
)

type WeeklyUpdateRepository interface {
	CreateChecked(update *models.WeeklyUpdate) error
	ListByUser(userID uint) ([]models.WeeklyUpdate, error)
	ListByUserAsc(userID uint) ([]models.WeeklyUpdate, error)
	ListRecentExcluding(userID uint, limit int) ([]models.WeeklyUpdate, error)
	ListSince(since time.Time, limit int) ([]models.WeeklyUpdate, error)
}

// Advisory lock class for weekly-update writes, keyed with the user id.
const weeklyUpdateLockClass = 1

type weeklyUpdateRepository struct {
	db *gorm.DB
}

func NewWeeklyUpdateRepository(db *gorm.DB) WeeklyUpdateRepository {
	return &weeklyUpdateRepository{db: db}
}

// CreateChecked enforces the 7-day throttle. A per-user advisory lock
// serializes concurrent submissions; under plain read committed two
// transactions could otherwise both read the same latest row and both pass
// the window check. Returns *validation.ErrUpdateTooSoon when the window has
// not elapsed.
func (r *weeklyUpdateRepository) CreateChecked(update *models.WeeklyUpdate) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?, ?)", weeklyUpdateLockClass, update.UserID).Error; err != nil {
			return err
		}
		var last models.WeeklyUpdate
		err := tx.Where("user_id = ?", update.UserID).Order("date DESC").First(&last).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil {
			if werr := validation.CheckUpdateWindow(last.Date, update.Date); werr != nil {
				return werr
			}
		}
		return tx.Create(update).Error
	})
}

func (r *weeklyUpdateRepository) ListByUser(userID uint) ([]models.WeeklyUpdate, error) {
	var updates []models.WeeklyUpdate
	err := r.db.Where("user_id = ?", userID).Order("date DESC").Find(&updates).Error
	return updates, err
}

func (r *weeklyUpdateRepository) ListByUserAsc(userID uint) ([]models.WeeklyUpdate, error) {
	var updates []models.WeeklyUpdate
	err := r.db.Where("user_id = ?", userID).Order("date ASC").Find(&updates).Error
	return updates, err
}

// ListRecentExcluding feeds the social view: newest updates across all users
// except the caller, ties broken by id.
func (r *weeklyUpdateRepository) ListRecentExcluding(userID uint, limit int) ([]models.WeeklyUpdate, error) {
	var updates []models.WeeklyUpdate
	err := r.db.Preload("User").Preload("User.Profile").
		Where("user_id <> ?", userID).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&updates).Error
	return updates, err
}

// ListSince returns recent patient updates for the activity feed.
func (r *weeklyUpdateRepository) ListSince(since time.Time, limit int) ([]models.WeeklyUpdate, error) {
	var updates []models.WeeklyUpdate
	err := r.db.Preload("User").
		Joins("JOIN profiles ON profiles.user_id = weekly_updates.user_id").
		Where("weekly_updates.date >= ? AND profiles.is_nutritionist = ?", since, false).
		Order("weekly_updates.date DESC").
		Limit(limit).
		Find(&updates).Error
	return updates, err
}
