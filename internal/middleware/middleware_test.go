package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"nourishlab/internal/auth"
	"nourishlab/internal/middleware"
	"nourishlab/internal/mocks"
	"nourishlab/internal/models"
)

func setupProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", middleware.AuthMiddleware(), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func performWithToken(router *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	os.Setenv("JWT_SECRET_KEY", "test-secret-key")
	defer os.Unsetenv("JWT_SECRET_KEY")

	user := &models.User{ID: 7, Username: "janedoe"}
	pair, err := auth.GenerateTokenPair(user)
	assert.NoError(t, err)

	router := setupProtectedRouter()

	t.Run("valid access token", func(t *testing.T) {
		w := performWithToken(router, "Bearer "+pair.Access)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "7")
	})

	t.Run("missing header", func(t *testing.T) {
		w := performWithToken(router, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := performWithToken(router, pair.Access)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("refresh token rejected", func(t *testing.T) {
		w := performWithToken(router, "Bearer "+pair.Refresh)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("tampered token", func(t *testing.T) {
		w := performWithToken(router, "Bearer "+pair.Access+"x")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestNutritionistRequired(t *testing.T) {
	setup := func(profileRepo *mocks.MockProfileRepository, userID uint) *gin.Engine {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.GET("/staff",
			func(c *gin.Context) {
				c.Set("user_id", userID)
				c.Next()
			},
			middleware.NutritionistRequired(profileRepo),
			func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"ok": true})
			},
		)
		return router
	}

	t.Run("nutritionist allowed", func(t *testing.T) {
		profileRepo := new(mocks.MockProfileRepository)
		profileRepo.On("FindByUserID", uint(2)).Return(&models.Profile{UserID: 2, IsNutritionist: true}, nil)

		router := setup(profileRepo, 2)
		req := httptest.NewRequest(http.MethodGet, "/staff", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("patient forbidden", func(t *testing.T) {
		profileRepo := new(mocks.MockProfileRepository)
		profileRepo.On("FindByUserID", uint(1)).Return(&models.Profile{UserID: 1, IsNutritionist: false}, nil)

		router := setup(profileRepo, 1)
		req := httptest.NewRequest(http.MethodGet, "/staff", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing profile forbidden", func(t *testing.T) {
		profileRepo := new(mocks.MockProfileRepository)
		profileRepo.On("FindByUserID", uint(3)).Return(nil, errors.New("record not found"))

		router := setup(profileRepo, 3)
		req := httptest.NewRequest(http.MethodGet, "/staff", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
