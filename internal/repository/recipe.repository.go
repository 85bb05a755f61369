package repository

import (
	"gorm.io/gorm"

	"nourishlab/internal/models"
)

type RecipeRepository interface {
	Create(recipe *models.Recipe) error
	FindByID(id uint) (*models.Recipe, error)
	FindAll() ([]models.Recipe, error)
	Update(recipe *models.Recipe) error
	Delete(id uint) error
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Create(recipe).Error
}

func (r *recipeRepository) FindByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) FindAll() ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.Order("title ASC").Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepository) Update(recipe *models.Recipe) error {
	return r.db.Save(recipe).Error
}

func (r *recipeRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Recipe{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
