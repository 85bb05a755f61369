package repository

import (
	"gorm.io/gorm"

	"nourishlab/internal/models"
)

// NutritionistNoteRepository scopes every operation to the authoring
// nutritionist; notes are never visible across authors.
type NutritionistNoteRepository interface {
	Create(note *models.NutritionistNote) error
	FindByIDForNutritionist(id, nutritionistID uint) (*models.NutritionistNote, error)
	ListByNutritionist(nutritionistID uint, patientID *uint) ([]models.NutritionistNote, error)
	Update(note *models.NutritionistNote) error
	Delete(id, nutritionistID uint) error
}

type nutritionistNoteRepository struct {
	db *gorm.DB
}

func NewNutritionistNoteRepository(db *gorm.DB) NutritionistNoteRepository {
	return &nutritionistNoteRepository{db: db}
}

func (r *nutritionistNoteRepository) Create(note *models.NutritionistNote) error {
	return r.db.Create(note).Error
}

func (r *nutritionistNoteRepository) FindByIDForNutritionist(id, nutritionistID uint) (*models.NutritionistNote, error) {
	var note models.NutritionistNote
	err := r.db.Where("id = ? AND nutritionist_id = ?", id, nutritionistID).First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *nutritionistNoteRepository) ListByNutritionist(nutritionistID uint, patientID *uint) ([]models.NutritionistNote, error) {
	var notes []models.NutritionistNote
	q := r.db.Preload("Patient").Where("nutritionist_id = ?", nutritionistID)
	if patientID != nil {
		q = q.Where("patient_id = ?", *patientID)
	}
	err := q.Order("created_at DESC").Find(&notes).Error
	return notes, err
}

func (r *nutritionistNoteRepository) Update(note *models.NutritionistNote) error {
	return r.db.Save(note).Error
}

func (r *nutritionistNoteRepository) Delete(id, nutritionistID uint) error {
	res := r.db.Where("nutritionist_id = ?", nutritionistID).Delete(&models.NutritionistNote{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
