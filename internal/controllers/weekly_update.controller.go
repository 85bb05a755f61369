package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nourishlab/internal/models"
	"nourishlab/internal/repository"
	"nourishlab/internal/storage"
	"nourishlab/internal/validation"
)

type WeeklyUpdateController struct {
	updateRepo repository.WeeklyUpdateRepository
	uploader   storage.Uploader
}

func NewWeeklyUpdateController(updateRepo repository.WeeklyUpdateRepository, uploader storage.Uploader) *WeeklyUpdateController {
	return &WeeklyUpdateController{updateRepo: updateRepo, uploader: uploader}
}

type weeklyUpdateRequest struct {
	CurrentWeight   float64  `json:"current_weight" form:"current_weight" binding:"required" example:"74.5"`
	WaistCm         *float64 `json:"waist_cm" form:"waist_cm"`
	HipsCm          *float64 `json:"hips_cm" form:"hips_cm"`
	ChestCm         *float64 `json:"chest_cm" form:"chest_cm"`
	ArmCm           *float64 `json:"arm_cm" form:"arm_cm"`
	ThighCm         *float64 `json:"thigh_cm" form:"thigh_cm"`
	EnergyLevel     *int     `json:"energy_level" form:"energy_level"`
	ComplianceScore *int     `json:"compliance_score" form:"compliance_score"`
	Notes           string   `json:"notes" form:"notes"`
}

// ListWeeklyUpdates godoc
// @Summary List the authenticated user's weekly updates, newest first
// @Tags weekly-updates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Weekly updates retrieved successfully"
// @Router /weekly-updates [get]
func (wc *WeeklyUpdateController) ListWeeklyUpdates(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	updates, err := wc.updateRepo.ListByUser(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve weekly updates",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Weekly updates retrieved successfully",
		"data":    updates,
	})
}

// CreateWeeklyUpdate godoc
// @Summary Submit a weekly update
// @Description At most one update per rolling 7 days; the error for an early
// @Description submission names the next permitted date. Accepts JSON or
// @Description multipart form with an optional progress photo.
// @Tags weekly-updates
// @Accept json
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param update body weeklyUpdateRequest true "Update data"
// @Success 201 {object} map[string]interface{} "Weekly update created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data or throttle violation"
// @Router /weekly-updates [post]
func (wc *WeeklyUpdateController) CreateWeeklyUpdate(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	var req weeklyUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := validateWeeklyUpdateFields(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	update := models.WeeklyUpdate{
		UserID:          userID.(uint),
		Date:            time.Now(),
		CurrentWeight:   req.CurrentWeight,
		WaistCm:         req.WaistCm,
		HipsCm:          req.HipsCm,
		ChestCm:         req.ChestCm,
		ArmCm:           req.ArmCm,
		ThighCm:         req.ThighCm,
		EnergyLevel:     req.EnergyLevel,
		ComplianceScore: req.ComplianceScore,
		Notes:           req.Notes,
	}

	if file, err := c.FormFile("photo"); err == nil {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to read photo",
				"error":   err.Error(),
			})
			return
		}
		defer src.Close()

		url, err := wc.uploader.Upload(c.Request.Context(), "updates", file.Filename, file.Header.Get("Content-Type"), src)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to store photo",
				"error":   err.Error(),
			})
			return
		}
		update.PhotoURL = url
	}

	if err := wc.updateRepo.CreateChecked(&update); err != nil {
		var tooSoon *validation.ErrUpdateTooSoon
		if errors.As(err, &tooSoon) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Weekly update not allowed yet",
				"error":   tooSoon.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create weekly update",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Weekly update created successfully",
		"data":    update,
	})
}

func validateWeeklyUpdateFields(req *weeklyUpdateRequest) error {
	if err := validation.Weight(req.CurrentWeight); err != nil {
		return err
	}
	if req.EnergyLevel != nil {
		if err := validation.EnergyLevel(*req.EnergyLevel); err != nil {
			return err
		}
	}
	if req.ComplianceScore != nil {
		if err := validation.ComplianceScore(*req.ComplianceScore); err != nil {
			return err
		}
	}
	return nil
}
