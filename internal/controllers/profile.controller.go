package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nourishlab/internal/repository"
	"nourishlab/internal/validation"
)

type ProfileController struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

func NewProfileController(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) *ProfileController {
	return &ProfileController{userRepo: userRepo, profileRepo: profileRepo}
}

type profileUpdateRequest struct {
	Age          *int     `json:"age"`
	Height       *float64 `json:"height"`
	Weight       *float64 `json:"weight"`
	Goals        *string  `json:"goals"`
	DietaryPrefs *string  `json:"dietary_prefs"`
	Allergies    *string  `json:"allergies"`
}

// GetProfile godoc
// @Summary Get the authenticated user's account and profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profile [get]
func (pc *ProfileController) GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	user, err := pc.userRepo.FindByID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "No profile exists for this user",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data":    user,
	})
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Description Partial update; age, height and weight are range checked.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body profileUpdateRequest true "Profile fields"
// @Success 200 {object} map[string]interface{} "Profile updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profile [put]
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := validateProfileFields(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	profile, err := pc.profileRepo.FindByUserID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "No profile exists for this user",
		})
		return
	}

	if req.Age != nil {
		profile.Age = req.Age
	}
	if req.Height != nil {
		profile.Height = req.Height
	}
	if req.Weight != nil {
		profile.Weight = req.Weight
	}
	if req.Goals != nil {
		profile.Goals = *req.Goals
	}
	if req.DietaryPrefs != nil {
		profile.DietaryPrefs = *req.DietaryPrefs
	}
	if req.Allergies != nil {
		profile.Allergies = *req.Allergies
	}

	if err := pc.profileRepo.Update(profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile updated successfully",
		"data":    profile,
	})
}

func validateProfileFields(req *profileUpdateRequest) error {
	if req.Age != nil {
		if err := validation.Age(*req.Age); err != nil {
			return err
		}
	}
	if req.Height != nil {
		if err := validation.Height(*req.Height); err != nil {
			return err
		}
	}
	if req.Weight != nil {
		if err := validation.Weight(*req.Weight); err != nil {
			return err
		}
	}
	return nil
}
