package routes

import (
	"nourishlab/internal/controllers"
	"nourishlab/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterFoodLogRoutes(router *gin.Engine, foodLogController *controllers.FoodLogController) {
	foodLogRoutes := router.Group("/food-logs")
	foodLogRoutes.Use(middleware.AuthMiddleware())
	{
		foodLogRoutes.GET("", foodLogController.ListFoodLogs)
		foodLogRoutes.POST("", foodLogController.CreateFoodLog)
	}
}
