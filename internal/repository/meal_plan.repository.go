package repository

import (
	"time"

	"gorm.io/gorm"

	"nourishlab/internal/models"
)

type MealPlanRepository interface {
	Create(plan *models.MealPlan) error
	Update(plan *models.MealPlan) error
	Delete(id uint) error
	FindByID(id uint) (*models.MealPlan, error)
	FindByIDForUser(id, userID uint) (*models.MealPlan, error)
	ListByUser(userID uint) ([]models.MealPlan, error)
	ListAll() ([]models.MealPlan, error)
	CountActive(ref time.Time) (int64, error)
}

type mealPlanRepository struct {
	db *gorm.DB
}

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) Create(plan *models.MealPlan) error {
	return r.db.Create(plan).Error
}

func (r *mealPlanRepository) Update(plan *models.MealPlan) error {
	return r.db.Save(plan).Error
}

func (r *mealPlanRepository) Delete(id uint) error {
	res := r.db.Delete(&models.MealPlan{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *mealPlanRepository) FindByID(id uint) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := r.db.First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// FindByIDForUser scopes the lookup to the owner so foreign ids surface as
// record-not-found.
func (r *mealPlanRepository) FindByIDForUser(id, userID uint) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanRepository) ListByUser(userID uint) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := r.db.Where("user_id = ?", userID).Order("start_date DESC").Find(&plans).Error
	return plans, err
}

func (r *mealPlanRepository) ListAll() ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := r.db.Preload("User").Order("start_date DESC").Find(&plans).Error
	return plans, err
}

func (r *mealPlanRepository) CountActive(ref time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.MealPlan{}).Where("end_date >= ?", ref).Count(&count).Error
	return count, err
}
