package mocks

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"nourishlab/internal/models"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateWithProfile(user *models.User, profile *models.Profile) error {
	args := m.Called(user, profile)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindPatientByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ListPatients(approved bool) ([]models.User, error) {
	args := m.Called(approved)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) CountPatients() (int64, int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

// Shared MockProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByUserID(userID uint) (*models.Profile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) Update(profile *models.Profile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockProfileRepository) Approve(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockProfileRepository) Promote(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

// Shared MockMealPlanRepository
type MockMealPlanRepository struct {
	mock.Mock
}

func (m *MockMealPlanRepository) Create(plan *models.MealPlan) error {
	args := m.Called(plan)
	return args.Error(0)
}

func (m *MockMealPlanRepository) Update(plan *models.MealPlan) error {
	args := m.Called(plan)
	return args.Error(0)
}

func (m *MockMealPlanRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMealPlanRepository) FindByID(id uint) (*models.MealPlan, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MealPlan), args.Error(1)
}

func (m *MockMealPlanRepository) FindByIDForUser(id, userID uint) (*models.MealPlan, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MealPlan), args.Error(1)
}

func (m *MockMealPlanRepository) ListByUser(userID uint) ([]models.MealPlan, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.MealPlan), args.Error(1)
}

func (m *MockMealPlanRepository) ListAll() ([]models.MealPlan, error) {
	args := m.Called()
	return args.Get(0).([]models.MealPlan), args.Error(1)
}

func (m *MockMealPlanRepository) CountActive(ref time.Time) (int64, error) {
	args := m.Called(ref)
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockMealPlanTemplateRepository
type MockMealPlanTemplateRepository struct {
	mock.Mock
}

func (m *MockMealPlanTemplateRepository) Create(template *models.MealPlanTemplate) error {
	args := m.Called(template)
	return args.Error(0)
}

func (m *MockMealPlanTemplateRepository) FindByID(id uint) (*models.MealPlanTemplate, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MealPlanTemplate), args.Error(1)
}

func (m *MockMealPlanTemplateRepository) FindAll() ([]models.MealPlanTemplate, error) {
	args := m.Called()
	return args.Get(0).([]models.MealPlanTemplate), args.Error(1)
}

func (m *MockMealPlanTemplateRepository) Update(template *models.MealPlanTemplate) error {
	args := m.Called(template)
	return args.Error(0)
}

func (m *MockMealPlanTemplateRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockRecipeRepository
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(recipe *models.Recipe) error {
	args := m.Called(recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) FindByID(id uint) (*models.Recipe, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindAll() ([]models.Recipe, error) {
	args := m.Called()
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) Update(recipe *models.Recipe) error {
	args := m.Called(recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockWeeklyUpdateRepository
type MockWeeklyUpdateRepository struct {
	mock.Mock
}

func (m *MockWeeklyUpdateRepository) CreateChecked(update *models.WeeklyUpdate) error {
	args := m.Called(update)
	return args.Error(0)
}

func (m *MockWeeklyUpdateRepository) ListByUser(userID uint) ([]models.WeeklyUpdate, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.WeeklyUpdate), args.Error(1)
}

func (m *MockWeeklyUpdateRepository) ListByUserAsc(userID uint) ([]models.WeeklyUpdate, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.WeeklyUpdate), args.Error(1)
}

func (m *MockWeeklyUpdateRepository) ListRecentExcluding(userID uint, limit int) ([]models.WeeklyUpdate, error) {
	args := m.Called(userID, limit)
	return args.Get(0).([]models.WeeklyUpdate), args.Error(1)
}

func (m *MockWeeklyUpdateRepository) ListSince(since time.Time, limit int) ([]models.WeeklyUpdate, error) {
	args := m.Called(since, limit)
	return args.Get(0).([]models.WeeklyUpdate), args.Error(1)
}

// Shared MockFoodLogRepository
type MockFoodLogRepository struct {
	mock.Mock
}

func (m *MockFoodLogRepository) Create(log *models.FoodLog) error {
	args := m.Called(log)
	return args.Error(0)
}

func (m *MockFoodLogRepository) ListByUser(userID uint) ([]models.FoodLog, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.FoodLog), args.Error(1)
}

func (m *MockFoodLogRepository) ListByUserLimited(userID uint, limit int) ([]models.FoodLog, error) {
	args := m.Called(userID, limit)
	return args.Get(0).([]models.FoodLog), args.Error(1)
}

func (m *MockFoodLogRepository) ListSince(since time.Time, limit int) ([]models.FoodLog, error) {
	args := m.Called(since, limit)
	return args.Get(0).([]models.FoodLog), args.Error(1)
}

// Shared MockMessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(message *models.Message) error {
	args := m.Called(message)
	return args.Error(0)
}

func (m *MockMessageRepository) ListForUser(userID uint, peerID *uint) ([]models.Message, error) {
	args := m.Called(userID, peerID)
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockMessageRepository) MarkConversationRead(recipientID, senderID uint) (int64, error) {
	args := m.Called(recipientID, senderID)
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockLabResultRepository
type MockLabResultRepository struct {
	mock.Mock
}

func (m *MockLabResultRepository) Create(result *models.LabResult) error {
	args := m.Called(result)
	return args.Error(0)
}

func (m *MockLabResultRepository) ListByUser(userID uint) ([]models.LabResult, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.LabResult), args.Error(1)
}

func (m *MockLabResultRepository) ListSince(since time.Time, limit int) ([]models.LabResult, error) {
	args := m.Called(since, limit)
	return args.Get(0).([]models.LabResult), args.Error(1)
}

// Shared MockNutritionistNoteRepository
type MockNutritionistNoteRepository struct {
	mock.Mock
}

func (m *MockNutritionistNoteRepository) Create(note *models.NutritionistNote) error {
	args := m.Called(note)
	return args.Error(0)
}

func (m *MockNutritionistNoteRepository) FindByIDForNutritionist(id, nutritionistID uint) (*models.NutritionistNote, error) {
	args := m.Called(id, nutritionistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NutritionistNote), args.Error(1)
}

func (m *MockNutritionistNoteRepository) ListByNutritionist(nutritionistID uint, patientID *uint) ([]models.NutritionistNote, error) {
	args := m.Called(nutritionistID, patientID)
	return args.Get(0).([]models.NutritionistNote), args.Error(1)
}

func (m *MockNutritionistNoteRepository) Update(note *models.NutritionistNote) error {
	args := m.Called(note)
	return args.Error(0)
}

func (m *MockNutritionistNoteRepository) Delete(id, nutritionistID uint) error {
	args := m.Called(id, nutritionistID)
	return args.Error(0)
}

// MockUploader fakes the file storage backend.
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, folder, filename, contentType, body)
	return args.String(0), args.Error(1)
}
