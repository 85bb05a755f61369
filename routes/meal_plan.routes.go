package routes

import (
	"nourishlab/internal/controllers"
	"nourishlab/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterMealPlanRoutes(router *gin.Engine, mealPlanController *controllers.MealPlanController) {
	mealPlanRoutes := router.Group("/meal-plans")
	mealPlanRoutes.Use(middleware.AuthMiddleware())
	{
		mealPlanRoutes.GET("", mealPlanController.ListMealPlans)
		mealPlanRoutes.GET("/:id", mealPlanController.GetMealPlan)
	}
}
