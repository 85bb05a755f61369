package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"nourishlab/internal/models"
	"nourishlab/internal/repository"
)

var errEndBeforeStart = errors.New("end_date must be on or after start_date")

type MealPlanController struct {
	planRepo     repository.MealPlanRepository
	templateRepo repository.MealPlanTemplateRepository
	userRepo     repository.UserRepository
}

func NewMealPlanController(
	planRepo repository.MealPlanRepository,
	templateRepo repository.MealPlanTemplateRepository,
	userRepo repository.UserRepository,
) *MealPlanController {
	return &MealPlanController{planRepo: planRepo, templateRepo: templateRepo, userRepo: userRepo}
}

type mealPlanRequest struct {
	UserID         uint                  `json:"user_id" example:"1"`
	StartDate      string                `json:"start_date" binding:"required" example:"2023-01-02"`
	EndDate        string                `json:"end_date" binding:"required" example:"2023-01-08"`
	Content        string                `json:"content"`
	StructuredPlan models.StructuredPlan `json:"structured_plan" swaggertype:"object"`
	TemplateID     *uint                 `json:"template_id"`
}

const dateLayout = "2006-01-02"

// ListMealPlans godoc
// @Summary List the authenticated user's meal plans
// @Tags meal-plans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Meal plans retrieved successfully"
// @Router /meal-plans [get]
func (mc *MealPlanController) ListMealPlans(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	plans, err := mc.planRepo.ListByUser(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve meal plans",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal plans retrieved successfully",
		"data":    plans,
	})
}

// GetMealPlan godoc
// @Summary Get one of the authenticated user's meal plans
// @Description The lookup is scoped to the caller, so another user's plan id
// @Description is reported as not found.
// @Tags meal-plans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Meal plan ID"
// @Success 200 {object} map[string]interface{} "Meal plan retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Meal plan not found"
// @Router /meal-plans/{id} [get]
func (mc *MealPlanController) GetMealPlan(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid meal plan ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	plan, err := mc.planRepo.FindByIDForUser(uint(id), userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Meal plan not found",
			"error":   "No meal plan exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal plan retrieved successfully",
		"data":    plan,
	})
}

// CreateMealPlanForPatient godoc
// @Summary Create a meal plan for a patient (nutritionist only)
// @Description user_id selects the patient. With template_id the template's
// @Description content is copied in as a starting point.
// @Tags nutritionist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body mealPlanRequest true "Meal plan data"
// @Success 201 {object} map[string]interface{} "Meal plan created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Patient not found"
// @Router /nutritionist/meal-plans [post]
func (mc *MealPlanController) CreateMealPlanForPatient(c *gin.Context) {
	var req mealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if req.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "user_id is required",
		})
		return
	}

	patient, err := mc.userRepo.FindPatientByID(req.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Patient not found",
			"error":   "No patient exists with the provided ID",
		})
		return
	}

	start, end, err := parsePlanDates(req.StartDate, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	plan := models.MealPlan{
		UserID:         patient.ID,
		StartDate:      start,
		EndDate:        end,
		Content:        req.Content,
		StructuredPlan: req.StructuredPlan,
	}

	// Templates are copied, never referenced.
	if req.TemplateID != nil {
		template, err := mc.templateRepo.FindByID(*req.TemplateID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Template not found",
				"error":   "No template exists with the provided ID",
			})
			return
		}
		if plan.Content == "" {
			plan.Content = template.Content
		}
		if plan.StructuredPlan == nil {
			plan.StructuredPlan = template.StructuredPlan
		}
	}

	if err := mc.planRepo.Create(&plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create meal plan",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Meal plan created successfully",
		"data":    plan,
	})
}

// ListAllMealPlans returns every meal plan with its owner, for the
// nutritionist overview.
func (mc *MealPlanController) ListAllMealPlans(c *gin.Context) {
	plans, err := mc.planRepo.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve meal plans",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal plans retrieved successfully",
		"data":    plans,
	})
}

// UpdateMealPlan godoc
// @Summary Update a meal plan (nutritionist only)
// @Tags nutritionist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Meal plan ID"
// @Param plan body mealPlanRequest true "Meal plan data"
// @Success 200 {object} map[string]interface{} "Meal plan updated successfully"
// @Failure 404 {object} map[string]interface{} "Meal plan not found"
// @Router /nutritionist/meal-plans/{id} [put]
func (mc *MealPlanController) UpdateMealPlan(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid meal plan ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	plan, err := mc.planRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Meal plan not found",
			"error":   "No meal plan exists with the provided ID",
		})
		return
	}

	var req mealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	start, end, err := parsePlanDates(req.StartDate, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	plan.StartDate = start
	plan.EndDate = end
	plan.Content = req.Content
	plan.StructuredPlan = req.StructuredPlan

	if err := mc.planRepo.Update(plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update meal plan",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal plan updated successfully",
		"data":    plan,
	})
}

// DeleteMealPlan godoc
// @Summary Delete a meal plan (nutritionist only)
// @Tags nutritionist
// @Produce json
// @Security BearerAuth
// @Param id path int true "Meal plan ID"
// @Success 200 {object} map[string]interface{} "Meal plan deleted successfully"
// @Failure 404 {object} map[string]interface{} "Meal plan not found"
// @Router /nutritionist/meal-plans/{id} [delete]
func (mc *MealPlanController) DeleteMealPlan(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid meal plan ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := mc.planRepo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Meal plan not found",
			"error":   "No meal plan exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal plan deleted successfully",
		"data":    nil,
	})
}

func parsePlanDates(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errEndBeforeStart
	}
	return start, end, nil
}
