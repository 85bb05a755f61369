package routes

import (
	"nourishlab/internal/controllers"
	"nourishlab/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterLabResultRoutes(router *gin.Engine, labResultController *controllers.LabResultController) {
	labResultRoutes := router.Group("/lab-results")
	labResultRoutes.Use(middleware.AuthMiddleware())
	{
		labResultRoutes.GET("", labResultController.ListLabResults)
		labResultRoutes.POST("", labResultController.UploadLabResult)
	}
}
