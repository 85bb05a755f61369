package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nourishlab/internal/auth"
	"nourishlab/internal/models"
	"nourishlab/internal/repository"
)

type AuthController struct {
	userRepo repository.UserRepository
}

func NewAuthController(userRepo repository.UserRepository) *AuthController {
	return &AuthController{userRepo: userRepo}
}

type registerRequest struct {
	Username string `json:"username" binding:"required" example:"janedoe"`
	Email    string `json:"email" binding:"omitempty,email" example:"jane.doe@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"strongpassword123"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required" example:"janedoe"`
	Password string `json:"password" binding:"required" example:"strongpassword123"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// Register godoc
// @Summary Register a new account
// @Description Create a user plus its profile. The profile starts unapproved.
// @Tags auth
// @Accept json
// @Produce json
// @Param account body registerRequest true "Account data"
// @Success 201 {object} map[string]interface{} "User registered successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 409 {object} map[string]interface{} "Username already taken"
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if _, err := ac.userRepo.FindByUsername(req.Username); err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Username already taken",
			"error":   "A user with this username already exists",
		})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create user",
			"error":   err.Error(),
		})
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
	}
	profile := models.Profile{}

	if err := ac.userRepo.CreateWithProfile(&user, &profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create user",
			"error":   err.Error(),
		})
		return
	}

	user.Profile = &profile
	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "User registered successfully",
		"data":    user,
	})
}

// Login godoc
// @Summary Log in with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "Login successful"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := ac.userRepo.FindByUsername(req.Username)
	if err != nil || !auth.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid credentials",
			"error":   "Username or password is incorrect",
		})
		return
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
		"message": "Login successful",
		"data": gin.H{
			"access":  pair.Access,
			"refresh": pair.Refresh,
			"user":    user,
		},
	})
}

// Refresh godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param token body refreshRequest true "Refresh token"
// @Success 200 {object} map[string]interface{} "Token refreshed"
// @Failure 401 {object} map[string]interface{} "Invalid or expired token"
// @Router /auth/token/refresh [post]
func (ac *AuthController) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	userID, err := auth.ParseRefreshToken(req.Refresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid or expired token",
			"error":   err.Error(),
		})
		return
	}

	user, err := ac.userRepo.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid or expired token",
			"error":   "User no longer exists",
		})
		return
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
		"message": "Token refreshed",
		"data": gin.H{
			"access":  pair.Access,
			"refresh": pair.Refresh,
		},
	})
}
