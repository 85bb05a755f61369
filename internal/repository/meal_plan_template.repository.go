package repository

import (
	"gorm.io/gorm"

	"nourishlab/internal/models"
)

type MealPlanTemplateRepository interface {
	Create(template *models.MealPlanTemplate) error
	FindByID(id uint) (*models.MealPlanTemplate, error)
	FindAll() ([]models.MealPlanTemplate, error)
	Update(template *models.MealPlanTemplate) error
	Delete(id uint) error
}

type mealPlanTemplateRepository struct {
	db *gorm.DB
}

func NewMealPlanTemplateRepository(db *gorm.DB) MealPlanTemplateRepository {
	return &mealPlanTemplateRepository{db: db}
}

func (r *mealPlanTemplateRepository) Create(template *models.MealPlanTemplate) error {
	return r.db.Create(template).Error
}

func (r *mealPlanTemplateRepository) FindByID(id uint) (*models.MealPlanTemplate, error) {
	var template models.MealPlanTemplate
	err := r.db.First(&template, id).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *mealPlanTemplateRepository) FindAll() ([]models.MealPlanTemplate, error) {
	var templates []models.MealPlanTemplate
	err := r.db.Order("created_at DESC").Find(&templates).Error
	return templates, err
}

func (r *mealPlanTemplateRepository) Update(template *models.MealPlanTemplate) error {
	return r.db.Save(template).Error
}

func (r *mealPlanTemplateRepository) Delete(id uint) error {
	res := r.db.Delete(&models.MealPlanTemplate{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
