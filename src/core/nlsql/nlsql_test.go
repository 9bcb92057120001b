package nlsql_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"claimsight/src/core/nlsql"
	"claimsight/src/storage/sqlite/claimsdb"
	"claimsight/src/storage/sqlite/querylogctrl"
)

func TestPreprocess(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "number words become digits",
			input: "three claims",
			want:  "3 claim",
		},
		{
			name:  "command verbs normalize to select",
			input: "show me all claim records",
			want:  "Select all claim records",
		},
		{
			name:  "fillers are removed",
			input: "um please count active policy",
			want:  "Count active policy",
		},
		{
			name:  "whitespace collapses",
			input: "  count   active    policy  ",
			want:  "Count active policy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nlsql.Preprocess(tt.input); got != tt.want {
				t.Errorf("Preprocess(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeSQL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain query untouched",
			input: "SELECT COUNT(*) FROM POLICIES;",
			want:  "SELECT COUNT(*) FROM POLICIES;",
		},
		{
			name:  "sql fence stripped",
			input: "```sql\nSELECT * FROM CLAIMS;\n```",
			want:  "SELECT * FROM CLAIMS;",
		},
		{
			name:  "bare fence stripped",
			input: "```\nSELECT * FROM CLAIMS;\n```",
			want:  "SELECT * FROM CLAIMS;",
		},
		{
			name:  "language tag prefix stripped",
			input: "sql\nSELECT * FROM CLAIMS;",
			want:  "SELECT * FROM CLAIMS;",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "   SELECT 1;   ",
			want:  "SELECT 1;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nlsql.SanitizeSQL(tt.input); got != tt.want {
				t.Errorf("SanitizeSQL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateSQL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"select statement", "SELECT * FROM CLAIMS", true},
		{"lowercase select", "select count(*) from policies", true},
		{"insert statement", "INSERT INTO CLAIMS VALUES (1)", true},
		{"prose answer", "I cannot answer that question.", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nlsql.ValidateSQL(tt.input); got != tt.want {
				t.Errorf("ValidateSQL(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

type fakeProvider struct {
	response string
	err      error
	prompt   string
}

func (f *fakeProvider) Reasoning(ctx context.Context, system string, prompt string) (string, error) {
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeQuerier struct {
	result   *claimsdb.ResultSet
	err      error
	executed string
}

func (f *fakeQuerier) Query(ctx context.Context, query string) (*claimsdb.ResultSet, error) {
	f.executed = query
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeAuditLog struct {
	entries []querylogctrl.QueryLog
}

func (f *fakeAuditLog) Create(ctx context.Context, entry querylogctrl.QueryLog) (*querylogctrl.QueryLog, error) {
	f.entries = append(f.entries, entry)
	return &entry, nil
}

func (f *fakeAuditLog) Recent(ctx context.Context, limit int) ([]querylogctrl.QueryLog, error) {
	return f.entries, nil
}

func TestAskExecutesSanitizedSQL(t *testing.T) {
	provider := &fakeProvider{response: "```sql\nSELECT COUNT(*) FROM POLICIES WHERE status = 'ACTIVE';\n```"}
	querier := &fakeQuerier{result: &claimsdb.ResultSet{
		Columns: []string{"COUNT(*)"},
		Rows:    [][]any{{int64(5)}},
	}}
	auditLog := &fakeAuditLog{}
	service := nlsql.NewService(provider, querier, auditLog)

	result, err := service.Ask(context.Background(), "How many policies are active?")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}

	wantSQL := "SELECT COUNT(*) FROM POLICIES WHERE status = 'ACTIVE';"
	if querier.executed != wantSQL {
		t.Errorf("executed SQL = %q, want %q", querier.executed, wantSQL)
	}
	if result.GeneratedSQL != wantSQL {
		t.Errorf("result SQL = %q, want %q", result.GeneratedSQL, wantSQL)
	}
	if result.RowCount != 1 {
		t.Errorf("row count = %d, want 1", result.RowCount)
	}

	if len(auditLog.entries) != 1 {
		t.Fatalf("audit log has %d entries, want 1", len(auditLog.entries))
	}
	entry := auditLog.entries[0]
	if entry.Status != querylogctrl.StatusOK {
		t.Errorf("audit status = %s, want %s", entry.Status, querylogctrl.StatusOK)
	}
	if entry.RowCount != 1 {
		t.Errorf("audit row count = %d, want 1", entry.RowCount)
	}
}

func TestAskPreprocessesQuestionForModel(t *testing.T) {
	provider := &fakeProvider{response: "SELECT 1;"}
	querier := &fakeQuerier{result: &claimsdb.ResultSet{}}
	service := nlsql.NewService(provider, querier, &fakeAuditLog{})

	if _, err := service.Ask(context.Background(), "please show me three claim"); err != nil {
		t.Fatalf("Ask() error = %v", err)
	}

	if strings.Contains(provider.prompt, "please") {
		t.Errorf("prompt %q still contains filler word", provider.prompt)
	}
	if !strings.Contains(provider.prompt, "3") {
		t.Errorf("prompt %q missing digit conversion", provider.prompt)
	}
}

func TestAskRejectsNonSQLResponse(t *testing.T) {
	provider := &fakeProvider{response: "I am unable to answer that."}
	querier := &fakeQuerier{}
	auditLog := &fakeAuditLog{}
	service := nlsql.NewService(provider, querier, auditLog)

	_, err := service.Ask(context.Background(), "what is the meaning of life")
	if !errors.Is(err, nlsql.ErrNoValidSQL) {
		t.Fatalf("Ask() error = %v, want ErrNoValidSQL", err)
	}

	if querier.executed != "" {
		t.Errorf("querier executed %q for invalid model output", querier.executed)
	}
	if len(auditLog.entries) != 1 || auditLog.entries[0].Status != querylogctrl.StatusError {
		t.Errorf("expected one error audit entry, got %+v", auditLog.entries)
	}
}

func TestAskRecordsExecutionFailure(t *testing.T) {
	provider := &fakeProvider{response: "SELECT * FROM NO_SUCH_TABLE;"}
	querier := &fakeQuerier{err: errors.New("no such table: NO_SUCH_TABLE")}
	auditLog := &fakeAuditLog{}
	service := nlsql.NewService(provider, querier, auditLog)

	if _, err := service.Ask(context.Background(), "show the missing table"); err == nil {
		t.Fatal("Ask() expected error for failing query")
	}

	if len(auditLog.entries) != 1 {
		t.Fatalf("audit log has %d entries, want 1", len(auditLog.entries))
	}
	entry := auditLog.entries[0]
	if entry.Status != querylogctrl.StatusError {
		t.Errorf("audit status = %s, want %s", entry.Status, querylogctrl.StatusError)
	}
	if !strings.Contains(entry.ErrorMessage, "no such table") {
		t.Errorf("audit error = %q, want table error", entry.ErrorMessage)
	}
}
