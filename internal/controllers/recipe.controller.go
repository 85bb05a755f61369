package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nourishlab/internal/models"
	"nourishlab/internal/repository"
)

type RecipeController struct {
	recipeRepo repository.RecipeRepository
}

func NewRecipeController(recipeRepo repository.RecipeRepository) *RecipeController {
	return &RecipeController{recipeRepo: recipeRepo}
}

// ListRecipes godoc
// @Summary List all recipes
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Recipes retrieved successfully"
// @Router /recipes [get]
func (rc *RecipeController) ListRecipes(c *gin.Context) {
	recipes, err := rc.recipeRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve recipes",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipes retrieved successfully",
		"data":    recipes,
	})
}

// GetRecipe godoc
// @Summary Get a recipe by id
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Recipe retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /recipes/{id} [get]
func (rc *RecipeController) GetRecipe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid recipe ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	recipe, err := rc.recipeRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe retrieved successfully",
		"data":    recipe,
	})
}

// CreateRecipe godoc
// @Summary Create a recipe (nutritionist only)
// @Tags nutritionist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param recipe body models.Recipe true "Recipe data"
// @Success 201 {object} map[string]interface{} "Recipe created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /nutritionist/recipes [post]
func (rc *RecipeController) CreateRecipe(c *gin.Context) {
	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := validateRecipe(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := rc.recipeRepo.Create(&recipe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create recipe",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Recipe created successfully",
		"data":    recipe,
	})
}

// UpdateRecipe godoc
// @Summary Update a recipe (nutritionist only)
// @Tags nutritionist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Param recipe body models.Recipe true "Recipe data"
// @Success 200 {object} map[string]interface{} "Recipe updated successfully"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /nutritionist/recipes/{id} [put]
func (rc *RecipeController) UpdateRecipe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid recipe ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	existing, err := rc.recipeRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return
	}

	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := validateRecipe(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	recipe.ID = existing.ID
	recipe.CreatedAt = existing.CreatedAt

	if err := rc.recipeRepo.Update(&recipe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update recipe",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe updated successfully",
		"data":    recipe,
	})
}

// DeleteRecipe godoc
// @Summary Delete a recipe (nutritionist only)
// @Tags nutritionist
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Recipe deleted successfully"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /nutritionist/recipes/{id} [delete]
func (rc *RecipeController) DeleteRecipe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid recipe ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := rc.recipeRepo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe deleted successfully",
		"data":    nil,
	})
}

func validateRecipe(recipe *models.Recipe) error {
	if recipe.Title == "" {
		return fmt.Errorf("title is required")
	}
	if recipe.Calories < 0 || recipe.ProteinG < 0 || recipe.CarbsG < 0 || recipe.FatG < 0 {
		return fmt.Errorf("calories and macros must be non-negative")
	}
	return nil
}
