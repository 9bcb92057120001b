package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type askQueryRequest struct {
	Question string `json:"question" binding:"required"`
}

// AskQuery godoc
// @Summary Answer a natural-language question against the claims database
// @Tags queries
// @Accept json
// @Produce json
// @Param body body askQueryRequest true "Question"
// @Success 200 {object} nlsql.QueryResult
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /queries [post]
func (h *Handler) AskQuery(c *gin.Context) {
	var req askQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, err)
		return
	}

	result, err := h.queryService.Ask(c.Request.Context(), req.Question)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}

	sendJSON(c, http.StatusOK, result)
}

// RecentQueries godoc
// @Summary List recently answered questions
// @Tags queries
// @Param limit query int false "Maximum entries to return"
// @Produce json
// @Success 200 {array} querylogctrl.QueryLog
// @Failure 500 {object} ErrorResponse
// @Router /queries/recent [get]
func (h *Handler) RecentQueries(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	entries, err := h.queryService.History(c.Request.Context(), limit)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}

	sendJSON(c, http.StatusOK, entries)
}
