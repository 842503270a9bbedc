package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"folio/internal/service"
)

// ChatHandler handles the conversational endpoints. Like the resume pipeline
// these always answer 200; chat failures become the fixed apology reply.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type generateAnswersRequest struct {
	PortfolioContext string `json:"portfolio_context"`
}

// GenerateAnswers handles POST /api/generate-chat-answers
func (h *ChatHandler) GenerateAnswers(c *gin.Context) {
	var req generateAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"error": "Invalid request body."})
		return
	}

	result := h.chatService.GenerateAnswers(c.Request.Context(), req.PortfolioContext)
	c.JSON(http.StatusOK, result)
}

type chatRequest struct {
	Message          string `json:"message"`
	PortfolioContext string `json:"portfolio_context"`
	IsShared         bool   `json:"is_shared"`
}

// Chat handles POST /api/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"reply": service.ChatApology})
		return
	}

	reply := h.chatService.Chat(c.Request.Context(), req.Message, req.PortfolioContext, req.IsShared)
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
