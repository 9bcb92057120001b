package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"claimsight/src/core/claimdocs"
)

type searchClausesRequest struct {
	Query     string `json:"query" binding:"required"`
	Limit     int    `json:"limit"`
	UseHybrid bool   `json:"useHybrid"` // Whether to use hybrid search
}

// SearchClauses godoc
// @Summary Find policy clauses similar to a query
// @Tags clauses
// @Accept json
// @Produce json
// @Param body body searchClausesRequest true "Search parameters"
// @Success 200 {array} claimdocs.ClauseMatch
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /clauses/search [post]
func (h *Handler) SearchClauses(c *gin.Context) {
	var req searchClausesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, err)
		return
	}

	var matches []claimdocs.ClauseMatch
	var err error
	if req.UseHybrid {
		matches, err = h.searchService.SearchHybrid(c.Request.Context(), req.Query, req.Limit)
	} else {
		matches, err = h.searchService.Search(c.Request.Context(), req.Query, req.Limit)
	}
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}

	sendJSON(c, http.StatusOK, matches)
}

type generateDecisionRequest struct {
	Query string `json:"query" binding:"required"`
}

// GenerateDecision godoc
// @Summary Render a claim decision from the ingested policy documents
// @Tags decisions
// @Accept json
// @Produce json
// @Param body body generateDecisionRequest true "Claim situation"
// @Success 200 {object} decisionflow.Decision
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /decisions [post]
func (h *Handler) GenerateDecision(c *gin.Context) {
	var req generateDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, err)
		return
	}

	decision, err := h.decisionService.Process(c.Request.Context(), req.Query)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}

	sendJSON(c, http.StatusOK, decision)
}
