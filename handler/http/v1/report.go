package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ClaimsSummaryReport godoc
// @Summary Summarize claims by status
// @Tags reports
// @Produce json
// @Success 200 {array} claimsdb.StatusSummary
// @Failure 500 {object} ErrorResponse
// @Router /reports/claims-summary [get]
func (h *Handler) ClaimsSummaryReport(c *gin.Context) {
	summary, err := h.reportService.ClaimsSummary(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}
	sendJSON(c, http.StatusOK, summary)
}

// TopCoverageReport godoc
// @Summary List coverage types with the most claims
// @Tags reports
// @Param limit query int false "Maximum coverage types to return"
// @Produce json
// @Success 200 {array} claimsdb.CoverageSummary
// @Failure 500 {object} ErrorResponse
// @Router /reports/top-coverage [get]
func (h *Handler) TopCoverageReport(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	summary, err := h.reportService.TopCoverage(c.Request.Context(), limit)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}
	sendJSON(c, http.StatusOK, summary)
}

// FinancialSummaryReport godoc
// @Summary Report overall and per-policy claim totals
// @Tags reports
// @Produce json
// @Success 200 {object} claimsdb.FinancialSummary
// @Failure 500 {object} ErrorResponse
// @Router /reports/financial-summary [get]
func (h *Handler) FinancialSummaryReport(c *gin.Context) {
	summary, err := h.reportService.FinancialSummary(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}
	sendJSON(c, http.StatusOK, summary)
}

// StatsReport godoc
// @Summary Report row counts of every claims table
// @Tags reports
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 500 {object} ErrorResponse
// @Router /reports/stats [get]
func (h *Handler) StatsReport(c *gin.Context) {
	stats, err := h.reportService.Stats(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}
	sendJSON(c, http.StatusOK, stats)
}

type exportReportRequest struct {
	Name  string `json:"name"`
	Query string `json:"query" binding:"required"`
}

// ExportReport godoc
// @Summary Export a SQL query result as a CSV object
// @Tags reports
// @Accept json
// @Produce json
// @Param body body exportReportRequest true "Export parameters"
// @Success 201 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/export [post]
func (h *Handler) ExportReport(c *gin.Context) {
	var req exportReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, err)
		return
	}

	url, err := h.reportService.ExportQuery(c.Request.Context(), req.Name, req.Query)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}

	sendJSON(c, http.StatusCreated, gin.H{"url": url})
}
