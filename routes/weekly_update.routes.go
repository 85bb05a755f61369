package routes

import (
	"nourishlab/internal/controllers"
	"nourishlab/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterWeeklyUpdateRoutes(router *gin.Engine, weeklyUpdateController *controllers.WeeklyUpdateController) {
	weeklyUpdateRoutes := router.Group("/weekly-updates")
	weeklyUpdateRoutes.Use(middleware.AuthMiddleware())
	{
		weeklyUpdateRoutes.GET("", weeklyUpdateController.ListWeeklyUpdates)
		weeklyUpdateRoutes.POST("", weeklyUpdateController.CreateWeeklyUpdate)
	}
}
