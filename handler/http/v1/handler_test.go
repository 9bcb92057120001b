package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	v1 "claimsight/handler/http/v1"
	"claimsight/src/core/claimdocs"
	"claimsight/src/core/decisionflow"
	"claimsight/src/core/nlsql"
	"claimsight/src/core/support"
	"claimsight/src/infrastructure/job"
	"claimsight/src/storage/sqlite/claimsdb"
	"claimsight/src/storage/sqlite/documentctrl"
	"claimsight/src/storage/sqlite/querylogctrl"
)

type fakeQueryService struct {
	result *nlsql.QueryResult
	err    error
	logs   []querylogctrl.QueryLog
}

func (f *fakeQueryService) Ask(ctx context.Context, question string) (*nlsql.QueryResult, error) {
	return f.result, f.err
}

func (f *fakeQueryService) History(ctx context.Context, limit int) ([]querylogctrl.QueryLog, error) {
	return f.logs, nil
}

type fakeDocumentService struct {
	record *documentctrl.PolicyDocument
	jobID  string
	err    error
}

func (f *fakeDocumentService) Upload(ctx context.Context, filename, contentType string, data []byte) (*documentctrl.PolicyDocument, string, error) {
	return f.record, f.jobID, f.err
}

func (f *fakeDocumentService) List(ctx context.Context, limit, offset int) ([]documentctrl.PolicyDocument, error) {
	if f.record == nil {
		return nil, nil
	}
	return []documentctrl.PolicyDocument{*f.record}, nil
}

func (f *fakeDocumentService) Get(ctx context.Context, documentID string) (*documentctrl.PolicyDocument, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.record, nil
}

func (f *fakeDocumentService) Delete(ctx context.Context, documentID string) error {
	return f.err
}

type fakeSearchService struct {
	matches []claimdocs.ClauseMatch
	hybrid  bool
}

func (f *fakeSearchService) Search(ctx context.Context, query string, limit int) ([]claimdocs.ClauseMatch, error) {
	f.hybrid = false
	return f.matches, nil
}

func (f *fakeSearchService) SearchHybrid(ctx context.Context, query string, limit int) ([]claimdocs.ClauseMatch, error) {
	f.hybrid = true
	return f.matches, nil
}

type fakeDecisionService struct {
	decision *decisionflow.Decision
	err      error
}

func (f *fakeDecisionService) Process(ctx context.Context, query string) (*decisionflow.Decision, error) {
	return f.decision, f.err
}

type fakeSupportService struct {
	reply            *support.ChatMessage
	history          []support.ChatMessage
	historySessionID string
}

func (f *fakeSupportService) Chat(ctx context.Context, sessionID, message, language string) (*support.ChatMessage, error) {
	return f.reply, nil
}

func (f *fakeSupportService) History(ctx context.Context, sessionID string) ([]support.ChatMessage, error) {
	f.historySessionID = sessionID
	return f.history, nil
}

type fakeReportService struct {
	summary []claimsdb.StatusSummary
	url     string
}

func (f *fakeReportService) ClaimsSummary(ctx context.Context) ([]claimsdb.StatusSummary, error) {
	return f.summary, nil
}

func (f *fakeReportService) TopCoverage(ctx context.Context, limit int) ([]claimsdb.CoverageSummary, error) {
	return nil, nil
}

func (f *fakeReportService) FinancialSummary(ctx context.Context) (*claimsdb.FinancialSummary, error) {
	return &claimsdb.FinancialSummary{}, nil
}

func (f *fakeReportService) Stats(ctx context.Context) (map[string]int64, error) {
	return map[string]int64{"CLAIMS": 40}, nil
}

func (f *fakeReportService) ExportQuery(ctx context.Context, name, query string) (string, error) {
	return f.url, nil
}

type fakeSystemService struct {
	status *claimdocs.HealthStatus
}

func (f *fakeSystemService) CheckHealth(ctx context.Context) (*claimdocs.HealthStatus, error) {
	return f.status, nil
}

type fakeJobService struct {
	job *job.Job
}

func (f *fakeJobService) GetJob(ctx context.Context, id int) (*job.Job, error) {
	return f.job, nil
}

type fixtures struct {
	query    *fakeQueryService
	document *fakeDocumentService
	search   *fakeSearchService
	decision *fakeDecisionService
	support  *fakeSupportService
	report   *fakeReportService
	system   *fakeSystemService
	jobs     *fakeJobService
}

func newTestRouter(f *fixtures) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := v1.NewHandler(
		f.query, f.document, f.search, f.decision,
		f.support, f.report, f.system, f.jobs,
	)

	router := gin.New()
	handler.RegisterRoutes(router)
	return router
}

func defaultFixtures() *fixtures {
	return &fixtures{
		query:    &fakeQueryService{},
		document: &fakeDocumentService{},
		search:   &fakeSearchService{},
		decision: &fakeDecisionService{},
		support:  &fakeSupportService{},
		report:   &fakeReportService{},
		system:   &fakeSystemService{status: &claimdocs.HealthStatus{Status: "healthy"}},
		jobs:     &fakeJobService{},
	}
}

func TestAskQuery(t *testing.T) {
	f := defaultFixtures()
	f.query.result = &nlsql.QueryResult{
		Question:     "How many policies are active?",
		GeneratedSQL: "SELECT COUNT(*) FROM POLICIES WHERE status = 'ACTIVE';",
		Columns:      []string{"COUNT(*)"},
		Rows:         [][]any{{float64(5)}},
		RowCount:     1,
	}
	router := newTestRouter(f)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/queries", strings.NewReader(`{"question":"How many policies are active?"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}

	var result nlsql.QueryResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if result.RowCount != 1 {
		t.Errorf("row count = %d, want 1", result.RowCount)
	}
}

func TestAskQueryMissingQuestion(t *testing.T) {
	router := newTestRouter(defaultFixtures())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/queries", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAskQueryInvalidSQLMapsTo422(t *testing.T) {
	f := defaultFixtures()
	f.query.err = nlsql.ErrNoValidSQL
	router := newTestRouter(f)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/queries", strings.NewReader(`{"question":"gibberish"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422; body %s", w.Code, w.Body.String())
	}

	var errResp v1.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("invalid error JSON: %v", err)
	}
	if errResp.Code != "NO_VALID_SQL" {
		t.Errorf("error code = %s, want NO_VALID_SQL", errResp.Code)
	}
}

func TestUploadDocument(t *testing.T) {
	f := defaultFixtures()
	f.document.record = &documentctrl.PolicyDocument{
		DocumentID: "doc-123",
		Filename:   "policy.pdf",
		Status:     documentctrl.StatusPending,
	}
	f.document.jobID = "7"
	router := newTestRouter(f)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "policy.pdf")
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte("%PDF-1.4 fake content"))
	writer.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/documents", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202; body %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp["document_id"] != "doc-123" || resp["job_id"] != "7" {
		t.Errorf("unexpected response: %v", resp)
	}
}

func TestUploadDocumentUnsupportedFormat(t *testing.T) {
	f := defaultFixtures()
	f.document.err = claimdocs.ErrUnsupportedFormat
	router := newTestRouter(f)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, _ := writer.CreateFormFile("file", "notes.txt")
	part.Write([]byte("plain text"))
	writer.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/documents", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var errResp v1.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("invalid error JSON: %v", err)
	}
	if errResp.Code != "UNSUPPORTED_FORMAT" {
		t.Errorf("error code = %s, want UNSUPPORTED_FORMAT", errResp.Code)
	}
}

func TestGetDocumentNotFound(t *testing.T) {
	f := defaultFixtures()
	f.document.err = claimdocs.ErrDocumentNotFound
	router := newTestRouter(f)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/documents/missing", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestSearchClausesUsesHybridFlag(t *testing.T) {
	f := defaultFixtures()
	f.search.matches = []claimdocs.ClauseMatch{{ClauseID: "c1", Content: "clause text"}}
	router := newTestRouter(f)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/clauses/search", strings.NewReader(`{"query":"knee surgery","useHybrid":true}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	if !f.search.hybrid {
		t.Error("expected hybrid search to be used")
	}
}

func TestGenerateDecisionNoClausesMapsTo422(t *testing.T) {
	f := defaultFixtures()
	f.decision.err = decisionflow.ErrNoRelevantClauses
	router := newTestRouter(f)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/decisions", strings.NewReader(`{"query":"knee surgery claim"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422; body %s", w.Code, w.Body.String())
	}
}

func TestSupportSuggestions(t *testing.T) {
	router := newTestRouter(defaultFixtures())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/support/suggestions?language=Hindi", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Language    string   `json:"language"`
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Language != "Hindi" || len(resp.Suggestions) == 0 {
		t.Errorf("unexpected suggestions response: %+v", resp)
	}
}

func TestSupportChatHistoryRequiresSession(t *testing.T) {
	router := newTestRouter(defaultFixtures())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/support/chat/history", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSupportChatHistory(t *testing.T) {
	f := defaultFixtures()
	f.support.history = []support.ChatMessage{
		{SessionID: "sess-1", Role: support.RoleUser, Content: "How do I check my claim?"},
		{SessionID: "sess-1", Role: support.RoleAssistant, Content: "Ask me about your claim status."},
	}
	router := newTestRouter(f)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/support/chat/history?session_id=sess-1", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	if f.support.historySessionID != "sess-1" {
		t.Errorf("session id = %q, want sess-1", f.support.historySessionID)
	}

	var messages []support.ChatMessage
	if err := json.Unmarshal(w.Body.Bytes(), &messages); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if len(messages) != 2 {
		t.Errorf("message count = %d, want 2", len(messages))
	}
}

func TestCheckHealth(t *testing.T) {
	router := newTestRouter(defaultFixtures())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "healthy") {
		t.Errorf("body = %s, want health status", w.Body.String())
	}
}

func TestGetJobNotFound(t *testing.T) {
	router := newTestRouter(defaultFixtures())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/jobs/99", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
