package repository

import (
	"gorm.io/gorm"

	"nourishlab/internal/models"
)

type UserRepository interface {
	CreateWithProfile(user *models.User, profile *models.Profile) error
	FindByID(id uint) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindPatientByID(id uint) (*models.User, error)
	ListPatients(approved bool) ([]models.User, error)
	CountPatients() (total int64, approved int64, err error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateWithProfile creates the user and its profile in one transaction so a
// user row never exists without a profile.
func (r *userRepository) CreateWithProfile(user *models.User, profile *models.Profile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
}

func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindPatientByID resolves a non-nutritionist user. Nutritionist and staff
// ids come back as record-not-found.
func (r *userRepository) FindPatientByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").
		Joins("JOIN profiles ON profiles.user_id = users.id").
		Where("users.id = ? AND profiles.is_nutritionist = ? AND users.is_staff = ?", id, false, false).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListPatients(approved bool) ([]models.User, error) {
	var users []models.User
	q := r.db.Preload("Profile").
		Joins("JOIN profiles ON profiles.user_id = users.id").
		Where("profiles.is_nutritionist = ? AND users.is_staff = ?", false, false).
		Where("profiles.is_approved = ?", approved)
	if approved {
		q = q.Order("users.username ASC")
	} else {
		q = q.Order("users.created_at DESC")
	}
	err := q.Find(&users).Error
	return users, err
}

func (r *userRepository) CountPatients() (int64, int64, error) {
	patients := r.db.Model(&models.User{}).
		Joins("JOIN profiles ON profiles.user_id = users.id").
		Where("profiles.is_nutritionist = ? AND users.is_staff = ?", false, false)

	var total int64
	if err := patients.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	var approved int64
	if err := patients.Session(&gorm.Session{}).Where("profiles.is_approved = ?", true).Count(&approved).Error; err != nil {
		return 0, 0, err
	}
	return total, approved, nil
}
