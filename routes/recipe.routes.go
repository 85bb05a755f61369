package routes

import (
	"nourishlab/internal/controllers"
	"nourishlab/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRecipeRoutes(router *gin.Engine, recipeController *controllers.RecipeController) {
	recipeRoutes := router.Group("/recipes")
	recipeRoutes.Use(middleware.AuthMiddleware())
	{
		recipeRoutes.GET("", recipeController.ListRecipes)
		recipeRoutes.GET("/:id", recipeController.GetRecipe)
	}
}
