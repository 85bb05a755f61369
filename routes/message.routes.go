package routes

import (
	"nourishlab/internal/controllers"
	"nourishlab/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterMessageRoutes(router *gin.Engine, messageController *controllers.MessageController) {
	messageRoutes := router.Group("/messages")
	messageRoutes.Use(middleware.AuthMiddleware())
	{
		messageRoutes.GET("", messageController.ListMessages)
		messageRoutes.POST("", messageController.SendMessage)
		messageRoutes.POST("/mark-read", messageController.MarkConversationRead)
	}
}
