package routes

import (
	"nourishlab/internal/controllers"
	"nourishlab/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterSocialRoutes(router *gin.Engine, socialController *controllers.SocialController) {
	socialRoutes := router.Group("/social")
	socialRoutes.Use(middleware.AuthMiddleware())
	{
		socialRoutes.GET("/feed", socialController.Feed)
	}

	progressRoutes := router.Group("/progress")
	progressRoutes.Use(middleware.AuthMiddleware())
	{
		progressRoutes.GET("", socialController.WeightHistory)
	}
}
