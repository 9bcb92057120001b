package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"claimsight/src/core/support"
)

type supportChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
	Language  string `json:"language"`
}

// SupportChat godoc
// @Summary Answer a customer support message
// @Tags support
// @Accept json
// @Produce json
// @Param body body supportChatRequest true "Chat message"
// @Success 200 {object} support.ChatMessage
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /support/chat [post]
func (h *Handler) SupportChat(c *gin.Context) {
	var req supportChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, err)
		return
	}

	reply, err := h.supportService.Chat(c.Request.Context(), req.SessionID, req.Message, req.Language)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}

	sendJSON(c, http.StatusOK, reply)
}

// SupportChatHistory godoc
// @Summary Get support chat history for a session
// @Tags support
// @Param session_id query string true "Chat session ID"
// @Produce json
// @Success 200 {array} support.ChatMessage
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /support/chat/history [get]
func (h *Handler) SupportChatHistory(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		sendError(c, http.StatusBadRequest, fmt.Errorf("session_id is required"))
		return
	}

	history, err := h.supportService.History(c.Request.Context(), sessionID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}

	sendJSON(c, http.StatusOK, history)
}

// SupportSuggestions godoc
// @Summary List quick-help topics for a language
// @Tags support
// @Param language query string false "Display language"
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /support/suggestions [get]
func (h *Handler) SupportSuggestions(c *gin.Context) {
	language := c.DefaultQuery("language", "English")

	sendJSON(c, http.StatusOK, gin.H{
		"language":    language,
		"suggestions": support.Suggestions(language),
	})
}
