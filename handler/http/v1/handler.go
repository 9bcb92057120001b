package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"claimsight/src/core/claimdocs"
	"claimsight/src/core/decisionflow"
	"claimsight/src/core/nlsql"
	"claimsight/src/core/support"
	"claimsight/src/infrastructure/job"
	"claimsight/src/storage/sqlite/claimsdb"
	"claimsight/src/storage/sqlite/documentctrl"
	"claimsight/src/storage/sqlite/querylogctrl"
)

// Service interfaces consumed by the HTTP layer. The core packages provide
// the concrete implementations.
type QueryService interface {
	Ask(ctx context.Context, question string) (*nlsql.QueryResult, error)
	History(ctx context.Context, limit int) ([]querylogctrl.QueryLog, error)
}

type DocumentService interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (*documentctrl.PolicyDocument, string, error)
	List(ctx context.Context, limit, offset int) ([]documentctrl.PolicyDocument, error)
	Get(ctx context.Context, documentID string) (*documentctrl.PolicyDocument, error)
	Delete(ctx context.Context, documentID string) error
}

type SearchService interface {
	Search(ctx context.Context, query string, limit int) ([]claimdocs.ClauseMatch, error)
	SearchHybrid(ctx context.Context, query string, limit int) ([]claimdocs.ClauseMatch, error)
}

type DecisionService interface {
	Process(ctx context.Context, query string) (*decisionflow.Decision, error)
}

type SupportService interface {
	Chat(ctx context.Context, sessionID, message, language string) (*support.ChatMessage, error)
	History(ctx context.Context, sessionID string) ([]support.ChatMessage, error)
}

type ReportService interface {
	ClaimsSummary(ctx context.Context) ([]claimsdb.StatusSummary, error)
	TopCoverage(ctx context.Context, limit int) ([]claimsdb.CoverageSummary, error)
	FinancialSummary(ctx context.Context) (*claimsdb.FinancialSummary, error)
	Stats(ctx context.Context) (map[string]int64, error)
	ExportQuery(ctx context.Context, name, query string) (string, error)
}

type SystemService interface {
	CheckHealth(ctx context.Context) (*claimdocs.HealthStatus, error)
}

type JobService interface {
	GetJob(ctx context.Context, id int) (*job.Job, error)
}

type Handler struct {
	queryService    QueryService
	documentService DocumentService
	searchService   SearchService
	decisionService DecisionService
	supportService  SupportService
	reportService   ReportService
	systemService   SystemService
	jobService      JobService
}

func NewHandler(
	queryService QueryService,
	documentService DocumentService,
	searchService SearchService,
	decisionService DecisionService,
	supportService SupportService,
	reportService ReportService,
	systemService SystemService,
	jobService JobService,
) *Handler {
	return &Handler{
		queryService:    queryService,
		documentService: documentService,
		searchService:   searchService,
		decisionService: decisionService,
		supportService:  supportService,
		reportService:   reportService,
		systemService:   systemService,
		jobService:      jobService,
	}
}

// RegisterRoutes registers all v1 API routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Natural-language query routes
	v1.POST("/queries", h.AskQuery)
	v1.GET("/queries/recent", h.RecentQueries)

	// Policy document routes
	v1.POST("/documents", h.UploadDocument)
	v1.GET("/documents", h.ListDocuments)
	v1.GET("/documents/:id", h.GetDocument)
	v1.DELETE("/documents/:id", h.DeleteDocument)

	// Clause search and decision routes
	v1.POST("/clauses/search", h.SearchClauses)
	v1.POST("/decisions", h.GenerateDecision)

	// Support chat routes
	v1.POST("/support/chat", h.SupportChat)
	v1.GET("/support/chat/history", h.SupportChatHistory)
	v1.GET("/support/suggestions", h.SupportSuggestions)

	// Report routes
	v1.GET("/reports/claims-summary", h.ClaimsSummaryReport)
	v1.GET("/reports/top-coverage", h.TopCoverageReport)
	v1.GET("/reports/financial-summary", h.FinancialSummaryReport)
	v1.GET("/reports/stats", h.StatsReport)
	v1.POST("/reports/export", h.ExportReport)

	// Job routes
	v1.GET("/jobs/:id", h.GetJob)

	// System routes
	v1.GET("/health", h.CheckHealth)
}

// Common error response structure
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func sendError(c *gin.Context, status int, err error) {
	var code string
	switch {
	case errors.Is(err, claimdocs.ErrDocumentNotFound):
		code = "NOT_FOUND"
		status = http.StatusNotFound
	case errors.Is(err, claimdocs.ErrUnsupportedFormat):
		code = "UNSUPPORTED_FORMAT"
		status = http.StatusBadRequest
	case errors.Is(err, nlsql.ErrNoValidSQL):
		code = "NO_VALID_SQL"
		status = http.StatusUnprocessableEntity
	case errors.Is(err, decisionflow.ErrNoRelevantClauses):
		code = "NO_RELEVANT_CLAUSES"
		status = http.StatusUnprocessableEntity
	case status == http.StatusBadRequest:
		code = "BAD_REQUEST"
	default:
		code = "INTERNAL_ERROR"
		status = http.StatusInternalServerError
	}

	c.JSON(status, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func sendJSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}
