package controllers

import (
	"net/http"
	"time"

	"college-backend/services"
	"college-backend/utils"

	"github.com/gin-gonic/gin"
)

type ChatMessageRequest struct {
	Message string `json:"message"`
}

type ChatbotController struct {
	Chatbot *services.ChatbotService
}

func NewChatbotController(svc *services.ChatbotService) *ChatbotController {
	return &ChatbotController{Chatbot: svc}
}

// POST /api/chatbot/message
func (cc *ChatbotController) Message(c *gin.Context) {
	var req ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Message is required")
		return
	}

	response, err := cc.Chatbot.Reply(req.Message)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Message is required")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"response":  response,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GET /api/chatbot/stats
func (cc *ChatbotController) Stats(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, "", cc.Chatbot.Stats())
}
