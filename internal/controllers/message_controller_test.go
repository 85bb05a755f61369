package controllers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"nourishlab/internal/controllers"
	"nourishlab/internal/mocks"
	"nourishlab/internal/models"
)

func setupMessageController() (*controllers.MessageController, *mocks.MockMessageRepository, *mocks.MockUserRepository) {
	mockMessageRepo := new(mocks.MockMessageRepository)
	mockUserRepo := new(mocks.MockUserRepository)
	controller := controllers.NewMessageController(mockMessageRepo, mockUserRepo)
	return controller, mockMessageRepo, mockUserRepo
}

func TestSendMessage(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockMessageRepository, *mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful send",
			requestBody: map[string]interface{}{
				"recipient": "nutritionist",
				"subject":   "Check-in",
				"content":   "How did the new plan go?",
			},
			setupMocks: func(messageRepo *mocks.MockMessageRepository, userRepo *mocks.MockUserRepository) {
				userRepo.On("FindByUsername", "nutritionist").Return(&models.User{ID: 2, Username: "nutritionist"}, nil)
				messageRepo.On("Create", mock.AnythingOfType("*models.Message")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Message sent successfully",
		},
		{
			name: "unknown recipient",
			requestBody: map[string]interface{}{
				"recipient": "ghost",
				"content":   "Hello?",
			},
			setupMocks: func(messageRepo *mocks.MockMessageRepository, userRepo *mocks.MockUserRepository) {
				userRepo.On("FindByUsername", "ghost").Return(nil, errors.New("record not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Recipient not found",
		},
		{
			name: "missing content",
			requestBody: map[string]interface{}{
				"recipient": "nutritionist",
			},
			setupMocks:     func(messageRepo *mocks.MockMessageRepository, userRepo *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockMessageRepo, mockUserRepo := setupMessageController()
			tt.setupMocks(mockMessageRepo, mockUserRepo)

			router := setupTestRouter()
			router.POST("/messages", authAs(1, "janedoe"), controller.SendMessage)

			w := performJSON(router, http.MethodPost, "/messages", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, tt.expectedMsg, body["message"])
			mockMessageRepo.AssertExpectations(t)
			mockUserRepo.AssertExpectations(t)
		})
	}
}

func TestSendMessageSetsSenderAndRecipient(t *testing.T) {
	controller, mockMessageRepo, mockUserRepo := setupMessageController()
	mockUserRepo.On("FindByUsername", "nutritionist").Return(&models.User{ID: 2, Username: "nutritionist"}, nil)

	var created *models.Message
	mockMessageRepo.On("Create", mock.AnythingOfType("*models.Message")).
		Run(func(args mock.Arguments) {
			created = args.Get(0).(*models.Message)
		}).
		Return(nil)

	router := setupTestRouter()
	router.POST("/messages", authAs(1, "janedoe"), controller.SendMessage)

	w := performJSON(router, http.MethodPost, "/messages", map[string]interface{}{
		"recipient": "nutritionist",
		"content":   "How did the new plan go?",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotNil(t, created)
	assert.Equal(t, uint(1), created.SenderID)
	assert.Equal(t, uint(2), created.RecipientID)
	assert.False(t, created.IsRead)
}

func TestMarkConversationRead(t *testing.T) {
	t.Run("marks only the named sender", func(t *testing.T) {
		controller, mockMessageRepo, mockUserRepo := setupMessageController()
		mockUserRepo.On("FindByUsername", "nutritionist").Return(&models.User{ID: 2, Username: "nutritionist"}, nil)
		mockMessageRepo.On("MarkConversationRead", uint(1), uint(2)).Return(int64(2), nil)

		router := setupTestRouter()
		router.POST("/messages/mark-read", authAs(1, "janedoe"), controller.MarkConversationRead)

		w := performJSON(router, http.MethodPost, "/messages/mark-read", map[string]interface{}{
			"sender_username": "nutritionist",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, float64(2), data["updated_count"])
		mockMessageRepo.AssertExpectations(t)
	})

	t.Run("unknown sender", func(t *testing.T) {
		controller, _, mockUserRepo := setupMessageController()
		mockUserRepo.On("FindByUsername", "ghost").Return(nil, errors.New("record not found"))

		router := setupTestRouter()
		router.POST("/messages/mark-read", authAs(1, "janedoe"), controller.MarkConversationRead)

		w := performJSON(router, http.MethodPost, "/messages/mark-read", map[string]interface{}{
			"sender_username": "ghost",
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("no unread messages", func(t *testing.T) {
		controller, mockMessageRepo, mockUserRepo := setupMessageController()
		mockUserRepo.On("FindByUsername", "nutritionist").Return(&models.User{ID: 2, Username: "nutritionist"}, nil)
		mockMessageRepo.On("MarkConversationRead", uint(1), uint(2)).Return(int64(0), nil)

		router := setupTestRouter()
		router.POST("/messages/mark-read", authAs(1, "janedoe"), controller.MarkConversationRead)

		w := performJSON(router, http.MethodPost, "/messages/mark-read", map[string]interface{}{
			"sender_username": "nutritionist",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.Equal(t, float64(0), data["updated_count"])
	})
}

func TestListMessagesWithPeer(t *testing.T) {
	controller, mockMessageRepo, mockUserRepo := setupMessageController()
	peerID := uint(2)
	mockUserRepo.On("FindByUsername", "nutritionist").Return(&models.User{ID: peerID, Username: "nutritionist"}, nil)
	mockMessageRepo.On("ListForUser", uint(1), &peerID).Return([]models.Message{
		{ID: 1, SenderID: 1, RecipientID: 2, Content: "Hi"},
		{ID: 2, SenderID: 2, RecipientID: 1, Content: "Hello"},
	}, nil)

	router := setupTestRouter()
	router.GET("/messages", authAs(1, "janedoe"), controller.ListMessages)

	w := performJSON(router, http.MethodGet, "/messages?with=nutritionist", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].([]interface{})
	assert.Len(t, data, 2)
	mockMessageRepo.AssertExpectations(t)
}
