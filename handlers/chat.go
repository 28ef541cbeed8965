package handlers

import (
	"net/http"

	"storabook/services/assistant"
	"storabook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatRequest is the expected input structure for assistant chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResponse carries the assistant reply back to the client.
type ChatResponse struct {
	Status    string `json:"status"`
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

// ChatHandler serves the assistant chat endpoint.
type ChatHandler struct {
	Assistant assistant.AssistantService
}

// NewChatHandler returns a ChatHandler wired to the given assistant.
func NewChatHandler(svc assistant.AssistantService) *ChatHandler {
	return &ChatHandler{Assistant: svc}
}

// Chat answers a customer message. A missing message is the only client
// error; assistant faults are absorbed into a fallback reply, so the
// endpoint otherwise always returns 200.
func (h *ChatHandler) Chat(c *gin.Context) {
	logger := utils.GetLogger()

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if req.Message == "" {
		utils.JSONError(c, http.StatusBadRequest, "No message provided", "")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	reply := h.Assistant.Respond(c.Request.Context(), sessionID, req.Message)
	logger.Debug("chat: replied", zap.String("sessionId", sessionID))

	c.JSON(http.StatusOK, ChatResponse{
		Status:    "success",
		Response:  reply,
		SessionID: sessionID,
	})
}
