package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"nourishlab/internal/controllers"
	"nourishlab/internal/mocks"
	"nourishlab/internal/models"
)

func setupSocialController() (*controllers.SocialController, *mocks.MockWeeklyUpdateRepository, *mocks.MockUserRepository) {
	mockUpdateRepo := new(mocks.MockWeeklyUpdateRepository)
	mockUserRepo := new(mocks.MockUserRepository)
	controller := controllers.NewSocialController(mockUpdateRepo, mockUserRepo)
	return controller, mockUpdateRepo, mockUserRepo
}

func floatPtr(v float64) *float64 { return &v }

func TestFeed(t *testing.T) {
	controller, mockUpdateRepo, _ := setupSocialController()

	otherUser := &models.User{
		ID:       2,
		Username: "johndoe",
		Profile:  &models.Profile{UserID: 2, Weight: floatPtr(80)},
	}
	mockUpdateRepo.On("ListRecentExcluding", uint(1), 20).Return([]models.WeeklyUpdate{
		{
			ID:            10,
			UserID:        2,
			User:          otherUser,
			Date:          time.Date(2023, 6, 8, 0, 0, 0, 0, time.UTC),
			CurrentWeight: 77.5,
			Notes:         "Good week.",
		},
	}, nil)

	router := setupTestRouter()
	router.GET("/social/feed", authAs(1, "janedoe"), controller.Feed)

	w := performJSON(router, http.MethodGet, "/social/feed", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].([]interface{})
	assert.Len(t, data, 1)

	entry := data[0].(map[string]interface{})
	assert.Equal(t, "johndoe", entry["username"])
	assert.Equal(t, 77.5, entry["current_weight"])
	assert.InDelta(t, 2.5, entry["weight_lost"], 0.001)
	mockUpdateRepo.AssertExpectations(t)
}

func TestFeedWithoutIntakeWeight(t *testing.T) {
	controller, mockUpdateRepo, _ := setupSocialController()

	mockUpdateRepo.On("ListRecentExcluding", uint(1), 20).Return([]models.WeeklyUpdate{
		{
			ID:            11,
			UserID:        3,
			User:          &models.User{ID: 3, Username: "noweight", Profile: &models.Profile{UserID: 3}},
			CurrentWeight: 90,
		},
	}, nil)

	router := setupTestRouter()
	router.GET("/social/feed", authAs(1, "janedoe"), controller.Feed)

	w := performJSON(router, http.MethodGet, "/social/feed", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	entry := decodeBody(t, w)["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, float64(0), entry["weight_lost"])
}

func TestBuildWeightHistory(t *testing.T) {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	user := &models.User{
		ID:        1,
		Username:  "janedoe",
		CreatedAt: created,
		Profile:   &models.Profile{UserID: 1, Weight: floatPtr(77)},
	}
	updates := []models.WeeklyUpdate{
		{Date: time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC), CurrentWeight: 76.2, Notes: "Week one"},
		{Date: time.Date(2023, 1, 16, 0, 0, 0, 0, time.UTC), CurrentWeight: 75.4, Notes: "Week two"},
	}

	history := controllers.BuildWeightHistory(user, updates)

	assert.Len(t, history, 3)
	assert.Equal(t, "Starting weight", history[0].Note)
	assert.Equal(t, 77.0, history[0].Weight)
	assert.Equal(t, created, history[0].Date)
	assert.Equal(t, 76.2, history[1].Weight)
	assert.Equal(t, 75.4, history[2].Weight)
}

func TestBuildWeightHistoryWithoutIntakeWeight(t *testing.T) {
	user := &models.User{ID: 1, Username: "janedoe", Profile: &models.Profile{UserID: 1}}
	updates := []models.WeeklyUpdate{
		{Date: time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC), CurrentWeight: 76.2},
	}

	history := controllers.BuildWeightHistory(user, updates)

	assert.Len(t, history, 1)
	assert.Equal(t, 76.2, history[0].Weight)
}

func TestWeightHistoryEndpoint(t *testing.T) {
	controller, mockUpdateRepo, mockUserRepo := setupSocialController()

	user := &models.User{
		ID:        1,
		Username:  "janedoe",
		CreatedAt: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		Profile:   &models.Profile{UserID: 1, Weight: floatPtr(77)},
	}
	mockUserRepo.On("FindByID", uint(1)).Return(user, nil)
	mockUpdateRepo.On("ListByUserAsc", uint(1)).Return([]models.WeeklyUpdate{
		{Date: time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC), CurrentWeight: 76.2},
	}, nil)

	router := setupTestRouter()
	router.GET("/progress", authAs(1, "janedoe"), controller.WeightHistory)

	w := performJSON(router, http.MethodGet, "/progress", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].([]interface{})
	assert.Len(t, data, 2)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "Starting weight", first["note"])
}
