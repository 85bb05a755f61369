package controllers_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"nourishlab/internal/controllers"
	"nourishlab/internal/mocks"
	"nourishlab/internal/models"
)

type nutritionistMocks struct {
	userRepo    *mocks.MockUserRepository
	profileRepo *mocks.MockProfileRepository
	planRepo    *mocks.MockMealPlanRepository
	updateRepo  *mocks.MockWeeklyUpdateRepository
	logRepo     *mocks.MockFoodLogRepository
	labRepo     *mocks.MockLabResultRepository
}

func setupNutritionistController() (*controllers.NutritionistController, *nutritionistMocks) {
	m := &nutritionistMocks{
		userRepo:    new(mocks.MockUserRepository),
		profileRepo: new(mocks.MockProfileRepository),
		planRepo:    new(mocks.MockMealPlanRepository),
		updateRepo:  new(mocks.MockWeeklyUpdateRepository),
		logRepo:     new(mocks.MockFoodLogRepository),
		labRepo:     new(mocks.MockLabResultRepository),
	}
	controller := controllers.NewNutritionistController(
		m.userRepo, m.profileRepo, m.planRepo, m.updateRepo, m.logRepo, m.labRepo,
	)
	return controller, m
}

func TestApprovePatient(t *testing.T) {
	t.Run("pending patient", func(t *testing.T) {
		controller, m := setupNutritionistController()
		m.profileRepo.On("Approve", uint(1)).Return(nil)

		router := setupTestRouter()
		router.POST("/nutritionist/patients/:id/approve", authAs(2, "nutritionist"), controller.ApprovePatient)

		w := performJSON(router, http.MethodPost, "/nutritionist/patients/1/approve", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Patient approved successfully", body["message"])
		m.profileRepo.AssertExpectations(t)
	})

	t.Run("unknown patient", func(t *testing.T) {
		controller, m := setupNutritionistController()
		m.profileRepo.On("Approve", uint(42)).Return(gorm.ErrRecordNotFound)

		router := setupTestRouter()
		router.POST("/nutritionist/patients/:id/approve", authAs(2, "nutritionist"), controller.ApprovePatient)

		w := performJSON(router, http.MethodPost, "/nutritionist/patients/42/approve", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		controller, _ := setupNutritionistController()

		router := setupTestRouter()
		router.POST("/nutritionist/patients/:id/approve", authAs(2, "nutritionist"), controller.ApprovePatient)

		w := performJSON(router, http.MethodPost, "/nutritionist/patients/abc/approve", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDashboardStats(t *testing.T) {
	controller, m := setupNutritionistController()
	m.userRepo.On("CountPatients").Return(int64(12), int64(9), nil)
	m.planRepo.On("CountActive", mock.AnythingOfType("time.Time")).Return(int64(4), nil)

	router := setupTestRouter()
	router.GET("/nutritionist/dashboard/stats", authAs(2, "nutritionist"), controller.DashboardStats)

	w := performJSON(router, http.MethodGet, "/nutritionist/dashboard/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(12), data["total_patients"])
	assert.Equal(t, float64(9), data["approved_patients"])
	assert.Equal(t, float64(3), data["pending_patients"])
	assert.Equal(t, float64(4), data["active_meal_plans"])
}

func TestPatientDetail(t *testing.T) {
	t.Run("full detail", func(t *testing.T) {
		controller, m := setupNutritionistController()
		patient := &models.User{ID: 1, Username: "janedoe", Profile: &models.Profile{UserID: 1, IsApproved: true}}
		m.userRepo.On("FindPatientByID", uint(1)).Return(patient, nil)
		m.planRepo.On("ListByUser", uint(1)).Return([]models.MealPlan{{ID: 1, UserID: 1}}, nil)
		m.updateRepo.On("ListByUser", uint(1)).Return([]models.WeeklyUpdate{{ID: 1, UserID: 1, CurrentWeight: 74.5}}, nil)
		m.logRepo.On("ListByUserLimited", uint(1), 20).Return([]models.FoodLog{{ID: 1, UserID: 1}}, nil)
		m.labRepo.On("ListByUser", uint(1)).Return([]models.LabResult{}, nil)

		router := setupTestRouter()
		router.GET("/nutritionist/patients/:id", authAs(2, "nutritionist"), controller.PatientDetail)

		w := performJSON(router, http.MethodGet, "/nutritionist/patients/1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.NotNil(t, data["user"])
		assert.Len(t, data["meal_plans"], 1)
		assert.Len(t, data["weekly_updates"], 1)
		assert.Len(t, data["food_logs"], 1)
		assert.Len(t, data["lab_results"], 0)
	})

	t.Run("nutritionist id reads as not found", func(t *testing.T) {
		controller, m := setupNutritionistController()
		m.userRepo.On("FindPatientByID", uint(2)).Return(nil, errors.New("record not found"))

		router := setupTestRouter()
		router.GET("/nutritionist/patients/:id", authAs(2, "nutritionist"), controller.PatientDetail)

		w := performJSON(router, http.MethodGet, "/nutritionist/patients/2", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPatientProgress(t *testing.T) {
	controller, m := setupNutritionistController()
	patient := &models.User{ID: 1, Username: "janedoe"}
	m.userRepo.On("FindPatientByID", uint(1)).Return(patient, nil)

	energy := 7
	m.updateRepo.On("ListByUserAsc", uint(1)).Return([]models.WeeklyUpdate{
		{
			Date:          time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC),
			CurrentWeight: 76.2,
			WaistCm:       floatPtr(81),
			EnergyLevel:   &energy,
		},
		{
			Date:          time.Date(2023, 1, 16, 0, 0, 0, 0, time.UTC),
			CurrentWeight: 75.4,
		},
	}, nil)

	router := setupTestRouter()
	router.GET("/nutritionist/patients/:id/progress", authAs(2, "nutritionist"), controller.PatientProgress)

	w := performJSON(router, http.MethodGet, "/nutritionist/patients/1/progress", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})

	weight := data["weight"].([]interface{})
	assert.Len(t, weight, 2)
	first := weight[0].(map[string]interface{})
	assert.Equal(t, "2023-01-09", first["date"])
	assert.Equal(t, 76.2, first["value"])

	measurements := data["measurements"].(map[string]interface{})
	assert.Len(t, measurements["waist"], 1)
	assert.Len(t, measurements["hips"], 0)
	assert.Len(t, data["energy_levels"], 1)
	assert.Len(t, data["compliance"], 0)
}

func TestMergeActivity(t *testing.T) {
	base := time.Date(2023, 6, 10, 12, 0, 0, 0, time.UTC)
	patient := &models.User{ID: 1, Username: "janedoe"}

	logs := []models.FoodLog{
		{UserID: 1, User: patient, MealType: models.MealTypeLunch, Content: "Salad", CreatedAt: base.Add(-1 * time.Hour)},
	}
	updates := []models.WeeklyUpdate{
		{UserID: 1, User: patient, CurrentWeight: 74.5, Date: base},
	}
	labs := []models.LabResult{
		{UserID: 1, User: patient, Title: "Blood panel", CreatedAt: base.Add(-2 * time.Hour)},
	}

	activities := controllers.MergeActivity(logs, updates, labs, 20)

	assert.Len(t, activities, 3)
	assert.Equal(t, "weekly_update", activities[0].Type)
	assert.Equal(t, "food_log", activities[1].Type)
	assert.Equal(t, "lab_result", activities[2].Type)
	assert.Equal(t, "janedoe", activities[0].Patient)
	assert.Contains(t, activities[0].Content, "74.5")
}

func TestMergeActivityCapsResults(t *testing.T) {
	base := time.Date(2023, 6, 10, 12, 0, 0, 0, time.UTC)
	patient := &models.User{ID: 1, Username: "janedoe"}

	var logs []models.FoodLog
	for i := 0; i < 15; i++ {
		logs = append(logs, models.FoodLog{
			UserID:    1,
			User:      patient,
			MealType:  models.MealTypeSnack,
			Content:   "Snack",
			CreatedAt: base.Add(-time.Duration(i) * time.Hour),
		})
	}
	var updates []models.WeeklyUpdate
	for i := 0; i < 10; i++ {
		updates = append(updates, models.WeeklyUpdate{
			UserID:        1,
			User:          patient,
			CurrentWeight: 74.5,
			Date:          base.Add(-time.Duration(i) * time.Minute),
		})
	}

	activities := controllers.MergeActivity(logs, updates, nil, 20)

	assert.Len(t, activities, 20)
	for i := 1; i < len(activities); i++ {
		assert.False(t, activities[i].Timestamp.After(activities[i-1].Timestamp))
	}
}

func TestMergeActivityTruncatesOnRuneBoundary(t *testing.T) {
	base := time.Date(2023, 6, 10, 12, 0, 0, 0, time.UTC)
	patient := &models.User{ID: 1, Username: "janedoe"}

	logs := []models.FoodLog{
		{UserID: 1, User: patient, MealType: models.MealTypeLunch, Content: strings.Repeat("€", 60), CreatedAt: base},
	}

	activities := controllers.MergeActivity(logs, nil, nil, 20)

	assert.Len(t, activities, 1)
	assert.True(t, utf8.ValidString(activities[0].Content))
	assert.Equal(t, "Lunch - "+strings.Repeat("€", 50)+"...", activities[0].Content)
}

func TestPromotePatients(t *testing.T) {
	controller, m := setupNutritionistController()
	m.userRepo.On("FindByUsername", "janedoe").Return(&models.User{ID: 1, Username: "janedoe"}, nil)
	m.userRepo.On("FindByUsername", "ghost").Return(nil, errors.New("record not found"))
	m.profileRepo.On("Promote", uint(1)).Return(nil)

	router := setupTestRouter()
	router.POST("/nutritionist/patients/promote", authAs(2, "nutritionist"), controller.PromotePatients)

	w := performJSON(router, http.MethodPost, "/nutritionist/patients/promote", map[string]interface{}{
		"usernames": []string{"janedoe", "ghost"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	promoted := data["promoted"].([]interface{})
	failed := data["failed"].(map[string]interface{})
	assert.Len(t, promoted, 1)
	assert.Equal(t, "janedoe", promoted[0])
	assert.Contains(t, failed, "ghost")
	m.profileRepo.AssertExpectations(t)
}

func TestListPendingPatients(t *testing.T) {
	controller, m := setupNutritionistController()
	m.userRepo.On("ListPatients", false).Return([]models.User{
		{ID: 3, Username: "newuser", Profile: &models.Profile{UserID: 3}},
	}, nil)

	router := setupTestRouter()
	router.GET("/nutritionist/patients/pending", authAs(2, "nutritionist"), controller.ListPendingPatients)

	w := performJSON(router, http.MethodGet, "/nutritionist/patients/pending", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].([]interface{})
	assert.Len(t, data, 1)
	m.userRepo.AssertExpectations(t)
}
