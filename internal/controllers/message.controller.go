package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nourishlab/internal/models"
	"nourishlab/internal/repository"
)

type MessageController struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

func NewMessageController(messageRepo repository.MessageRepository, userRepo repository.UserRepository) *MessageController {
	return &MessageController{messageRepo: messageRepo, userRepo: userRepo}
}

type sendMessageRequest struct {
	Recipient string `json:"recipient" binding:"required" example:"nutritionist"`
	Subject   string `json:"subject" example:"Check-in"`
	Content   string `json:"content" binding:"required" example:"How did the new plan go?"`
}

type markReadRequest struct {
	SenderUsername string `json:"sender_username" binding:"required" example:"nutritionist"`
}

// ListMessages godoc
// @Summary List messages the authenticated user sent or received
// @Description Oldest first. The optional "with" query narrows the list to
// @Description the conversation with one peer.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param with query string false "Peer username"
// @Success 200 {object} map[string]interface{} "Messages retrieved successfully"
// @Router /messages [get]
func (mc *MessageController) ListMessages(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	var peerID *uint
	if peer := c.Query("with"); peer != "" {
		peerUser, err := mc.userRepo.FindByUsername(peer)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "User not found",
				"error":   "No user exists with the provided username",
			})
			return
		}
		peerID = &peerUser.ID
	}

	messages, err := mc.messageRepo.ListForUser(userID.(uint), peerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve messages",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Messages retrieved successfully",
		"data":    messages,
	})
}

// SendMessage godoc
// @Summary Send a direct message
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param message body sendMessageRequest true "Message data"
// @Success 201 {object} map[string]interface{} "Message sent successfully"
// @Failure 404 {object} map[string]interface{} "Recipient not found"
// @Router /messages [post]
func (mc *MessageController) SendMessage(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	recipient, err := mc.userRepo.FindByUsername(req.Recipient)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipient not found",
			"error":   "No user exists with the provided username",
		})
		return
	}

	message := models.Message{
		SenderID:    userID.(uint),
		RecipientID: recipient.ID,
		Subject:     req.Subject,
		Content:     req.Content,
	}

	if err := mc.messageRepo.Create(&message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to send message",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Message sent successfully",
		"data":    message,
	})
}

// MarkConversationRead godoc
// @Summary Mark all unread messages from one sender as read
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param conversation body markReadRequest true "Sender to mark read"
// @Success 200 {object} map[string]interface{} "Conversation marked read"
// @Failure 404 {object} map[string]interface{} "Sender not found"
// @Router /messages/mark-read [post]
func (mc *MessageController) MarkConversationRead(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	var req markReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	sender, err := mc.userRepo.FindByUsername(req.SenderUsername)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Sender not found",
			"error":   "No user exists with the provided username",
		})
		return
	}

	count, err := mc.messageRepo.MarkConversationRead(userID.(uint), sender.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to mark conversation read",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Conversation marked read",
		"data": gin.H{
			"updated_count": count,
		},
	})
}
