package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nourishlab/internal/models"
	"nourishlab/internal/repository"
	"nourishlab/internal/storage"
)

type FoodLogController struct {
	logRepo  repository.FoodLogRepository
	uploader storage.Uploader
}

func NewFoodLogController(logRepo repository.FoodLogRepository, uploader storage.Uploader) *FoodLogController {
	return &FoodLogController{logRepo: logRepo, uploader: uploader}
}

type foodLogRequest struct {
	Date     string `json:"date" form:"date" example:"2023-01-01"`
	MealType string `json:"meal_type" form:"meal_type" binding:"required,oneof=Breakfast Lunch Dinner Snack" example:"Breakfast"`
	Content  string `json:"content" form:"content" binding:"required" example:"Oatmeal with blueberries"`
}

// ListFoodLogs godoc
// @Summary List the authenticated user's food logs, newest first
// @Tags food-logs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Food logs retrieved successfully"
// @Router /food-logs [get]
func (fc *FoodLogController) ListFoodLogs(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	logs, err := fc.logRepo.ListByUser(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve food logs",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food logs retrieved successfully",
		"data":    logs,
	})
}

// CreateFoodLog godoc
// @Summary Log a meal
// @Description Accepts JSON or multipart form with an optional image. Date
// @Description defaults to today when omitted.
// @Tags food-logs
// @Accept json
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param log body foodLogRequest true "Food log data"
// @Success 201 {object} map[string]interface{} "Food log created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /food-logs [post]
func (fc *FoodLogController) CreateFoodLog(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	var req foodLogRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   "date must use the YYYY-MM-DD format",
			})
			return
		}
		date = parsed
	}

	log := models.FoodLog{
		UserID:   userID.(uint),
		Date:     date,
		MealType: req.MealType,
		Content:  req.Content,
	}

	if file, err := c.FormFile("image"); err == nil {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to read image",
				"error":   err.Error(),
			})
			return
		}
		defer src.Close()

		url, err := fc.uploader.Upload(c.Request.Context(), "food-logs", file.Filename, file.Header.Get("Content-Type"), src)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to store image",
				"error":   err.Error(),
			})
			return
		}
		log.ImageURL = url
	}

	if err := fc.logRepo.Create(&log); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create food log",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Food log created successfully",
		"data":    log,
	})
}
