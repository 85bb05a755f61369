package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nourishlab/internal/models"
	"nourishlab/internal/repository"
	"nourishlab/internal/storage"
)

type LabResultController struct {
	labRepo  repository.LabResultRepository
	uploader storage.Uploader
}

func NewLabResultController(labRepo repository.LabResultRepository, uploader storage.Uploader) *LabResultController {
	return &LabResultController{labRepo: labRepo, uploader: uploader}
}

// ListLabResults godoc
// @Summary List the authenticated user's lab results, newest first
// @Tags lab-results
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Lab results retrieved successfully"
// @Router /lab-results [get]
func (lc *LabResultController) ListLabResults(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	results, err := lc.labRepo.ListByUser(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve lab results",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Lab results retrieved successfully",
		"data":    results,
	})
}

// UploadLabResult godoc
// @Summary Upload a lab result file
// @Tags lab-results
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param file formData file true "Result file"
// @Success 201 {object} map[string]interface{} "Lab result uploaded successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /lab-results [post]
func (lc *LabResultController) UploadLabResult(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "title is required",
		})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "file is required",
		})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to read file",
			"error":   err.Error(),
		})
		return
	}
	defer src.Close()

	url, err := lc.uploader.Upload(c.Request.Context(), "lab-results", file.Filename, file.Header.Get("Content-Type"), src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to store file",
			"error":   err.Error(),
		})
		return
	}

	result := models.LabResult{
		UserID:      userID.(uint),
		Title:       title,
		FileURL:     url,
		Description: c.PostForm("description"),
	}

	if err := lc.labRepo.Create(&result); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create lab result",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Lab result uploaded successfully",
		"data":    result,
	})
}
