package repository

import (
	"gorm.io/gorm"

	"nourishlab/internal/models"
)

type ProfileRepository interface {
	FindByUserID(userID uint) (*models.Profile, error)
	Update(profile *models.Profile) error
	Approve(userID uint) error
	Promote(userID uint) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}

func (r *profileRepository) Approve(userID uint) error {
	res := r.db.Model(&models.Profile{}).
		Where("user_id = ? AND is_nutritionist = ?", userID, false).
		Update("is_approved", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Promote marks a user's profile as nutritionist, approving it as well.
func (r *profileRepository) Promote(userID uint) error {
	res := r.db.Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{"is_nutritionist": true, "is_approved": true})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
