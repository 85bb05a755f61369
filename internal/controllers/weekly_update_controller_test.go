package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"nourishlab/internal/controllers"
	"nourishlab/internal/mocks"
	"nourishlab/internal/models"
	"nourishlab/internal/validation"
)

func setupWeeklyUpdateController() (*controllers.WeeklyUpdateController, *mocks.MockWeeklyUpdateRepository, *mocks.MockUploader) {
	mockUpdateRepo := new(mocks.MockWeeklyUpdateRepository)
	mockUploader := new(mocks.MockUploader)
	controller := controllers.NewWeeklyUpdateController(mockUpdateRepo, mockUploader)
	return controller, mockUpdateRepo, mockUploader
}

func TestCreateWeeklyUpdate(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockWeeklyUpdateRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful update",
			requestBody: map[string]interface{}{
				"current_weight": 74.5,
				"notes":          "Felt strong this week.",
			},
			setupMocks: func(updateRepo *mocks.MockWeeklyUpdateRepository) {
				updateRepo.On("CreateChecked", mock.AnythingOfType("*models.WeeklyUpdate")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Weekly update created successfully",
		},
		{
			name: "submitted inside the throttle window",
			requestBody: map[string]interface{}{
				"current_weight": 74.5,
			},
			setupMocks: func(updateRepo *mocks.MockWeeklyUpdateRepository) {
				next := time.Date(2023, 6, 8, 0, 0, 0, 0, time.UTC)
				updateRepo.On("CreateChecked", mock.AnythingOfType("*models.WeeklyUpdate")).
					Return(&validation.ErrUpdateTooSoon{NextAllowed: next})
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Weekly update not allowed yet",
		},
		{
			name: "weight out of range",
			requestBody: map[string]interface{}{
				"current_weight": 10.0,
			},
			setupMocks:     func(updateRepo *mocks.MockWeeklyUpdateRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name: "energy level out of range",
			requestBody: map[string]interface{}{
				"current_weight": 74.5,
				"energy_level":   11,
			},
			setupMocks:     func(updateRepo *mocks.MockWeeklyUpdateRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name:           "missing weight",
			requestBody:    map[string]interface{}{},
			setupMocks:     func(updateRepo *mocks.MockWeeklyUpdateRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockUpdateRepo, _ := setupWeeklyUpdateController()
			tt.setupMocks(mockUpdateRepo)

			router := setupTestRouter()
			router.POST("/weekly-updates", authAs(1, "janedoe"), controller.CreateWeeklyUpdate)

			w := performJSON(router, http.MethodPost, "/weekly-updates", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, tt.expectedMsg, body["message"])
			mockUpdateRepo.AssertExpectations(t)
		})
	}
}

func TestCreateWeeklyUpdateThrottleErrorNamesNextDate(t *testing.T) {
	controller, mockUpdateRepo, _ := setupWeeklyUpdateController()
	next := time.Date(2023, 6, 8, 0, 0, 0, 0, time.UTC)
	mockUpdateRepo.On("CreateChecked", mock.AnythingOfType("*models.WeeklyUpdate")).
		Return(&validation.ErrUpdateTooSoon{NextAllowed: next})

	router := setupTestRouter()
	router.POST("/weekly-updates", authAs(1, "janedoe"), controller.CreateWeeklyUpdate)

	w := performJSON(router, http.MethodPost, "/weekly-updates", map[string]interface{}{
		"current_weight": 74.5,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body["error"], "2023-06-08")
}

func TestListWeeklyUpdates(t *testing.T) {
	controller, mockUpdateRepo, _ := setupWeeklyUpdateController()
	mockUpdateRepo.On("ListByUser", uint(1)).Return([]models.WeeklyUpdate{
		{ID: 2, UserID: 1, CurrentWeight: 74.5},
		{ID: 1, UserID: 1, CurrentWeight: 75.2},
	}, nil)

	router := setupTestRouter()
	router.GET("/weekly-updates", authAs(1, "janedoe"), controller.ListWeeklyUpdates)

	w := performJSON(router, http.MethodGet, "/weekly-updates", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].([]interface{})
	assert.Len(t, data, 2)
	mockUpdateRepo.AssertExpectations(t)
}
