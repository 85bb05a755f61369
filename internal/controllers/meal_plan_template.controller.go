package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nourishlab/internal/models"
	"nourishlab/internal/repository"
)

type MealPlanTemplateController struct {
	templateRepo repository.MealPlanTemplateRepository
}

func NewMealPlanTemplateController(templateRepo repository.MealPlanTemplateRepository) *MealPlanTemplateController {
	return &MealPlanTemplateController{templateRepo: templateRepo}
}

type templateRequest struct {
	Name           string                `json:"name" binding:"required" example:"Low Carb Week"`
	Description    string                `json:"description" example:"A week of low carb dinners."`
	Content        string                `json:"content" example:"<p>Low carb plan</p>"`
	StructuredPlan models.StructuredPlan `json:"structured_plan" swaggertype:"object"`
}

// ListTemplates godoc
// @Summary List meal plan templates, newest first
// @Tags nutritionist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Templates retrieved successfully"
// @Router /nutritionist/meal-plan-templates [get]
func (tc *MealPlanTemplateController) ListTemplates(c *gin.Context) {
	templates, err := tc.templateRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve templates",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Templates retrieved successfully",
		"data":    templates,
	})
}

// GetTemplate godoc
// @Summary Get a meal plan template by id
// @Tags nutritionist
// @Produce json
// @Security BearerAuth
// @Param id path int true "Template ID"
// @Success 200 {object} map[string]interface{} "Template retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Template not found"
// @Router /nutritionist/meal-plan-templates/{id} [get]
func (tc *MealPlanTemplateController) GetTemplate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid template ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	template, err := tc.templateRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Template not found",
			"error":   "No template exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Template retrieved successfully",
		"data":    template,
	})
}

// CreateTemplate godoc
// @Summary Create a meal plan template
// @Tags nutritionist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param template body templateRequest true "Template data"
// @Success 201 {object} map[string]interface{} "Template created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /nutritionist/meal-plan-templates [post]
func (tc *MealPlanTemplateController) CreateTemplate(c *gin.Context) {
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	template := models.MealPlanTemplate{
		Name:           req.Name,
		Description:    req.Description,
		Content:        req.Content,
		StructuredPlan: req.StructuredPlan,
	}

	if err := tc.templateRepo.Create(&template); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create template",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Template created successfully",
		"data":    template,
	})
}

// UpdateTemplate godoc
// @Summary Update a meal plan template
// @Tags nutritionist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Template ID"
// @Param template body templateRequest true "Template data"
// @Success 200 {object} map[string]interface{} "Template updated successfully"
// @Failure 404 {object} map[string]interface{} "Template not found"
// @Router /nutritionist/meal-plan-templates/{id} [put]
func (tc *MealPlanTemplateController) UpdateTemplate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid template ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	template, err := tc.templateRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Template not found",
			"error":   "No template exists with the provided ID",
		})
		return
	}

	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	template.Name = req.Name
	template.Description = req.Description
	template.Content = req.Content
	template.StructuredPlan = req.StructuredPlan

	if err := tc.templateRepo.Update(template); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update template",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Template updated successfully",
		"data":    template,
	})
}

// DeleteTemplate godoc
// @Summary Delete a meal plan template
// @Tags nutritionist
// @Produce json
// @Security BearerAuth
// @Param id path int true "Template ID"
// @Success 200 {object} map[string]interface{} "Template deleted successfully"
// @Failure 404 {object} map[string]interface{} "Template not found"
// @Router /nutritionist/meal-plan-templates/{id} [delete]
func (tc *MealPlanTemplateController) DeleteTemplate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid template ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := tc.templateRepo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Template not found",
			"error":   "No template exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Template deleted successfully",
		"data":    nil,
	})
}
