package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nourishlab/internal/auth"
	"nourishlab/internal/models"
	"nourishlab/internal/repository"
)

type OauthController struct {
	userRepo repository.UserRepository
}

func NewOauthController(userRepo repository.UserRepository) *OauthController {
	return &OauthController{userRepo: userRepo}
}

// GoogleAuth godoc
// @Summary Log in with a Google ID token
// @Description Verifies the provider token, creates a local account on first
// @Description login and returns the same token pair as password login.
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Google authentication successful"
// @Failure 401 {object} map[string]interface{} "Invalid Google ID token"
// @Router /oauth/google [post]
func (oc *OauthController) GoogleAuth(c *gin.Context) {
	var authRequest struct {
		Token string `json:"token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&authRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	resp, err := http.Get("https://oauth2.googleapis.com/tokeninfo?id_token=" + authRequest.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to verify token with Google",
			"error":   err.Error(),
		})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid Google ID token",
			"error":   "Token verification failed",
		})
		return
	}

	var tokenInfo map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&tokenInfo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to decode token info",
			"error":   err.Error(),
		})
		return
	}

	email, ok := tokenInfo["email"].(string)
	if !ok || email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Email not found in token",
		})
		return
	}

	user, err := oc.userRepo.FindByEmail(email)
	if err != nil {
		// First login via Google: provision a local account with a derived
		// username and an unusable password.
		newUser := &models.User{
			Username: googleUsername(email),
			Email:    email,
			Password: "",
		}
		if err := oc.userRepo.CreateWithProfile(newUser, &models.Profile{}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to create user account",
				"error":   err.Error(),
			})
			return
		}
		user = newUser
	}

	pair, err := auth.GenerateTokenPair(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Could not generate token",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Google authentication successful",
		"data": gin.H{
			"access":  pair.Access,
			"refresh": pair.Refresh,
			"user":    user,
		},
	})
}

func googleUsername(email string) string {
	local := strings.SplitN(email, "@", 2)[0]
	return local + "-" + uuid.NewString()[:8]
}
