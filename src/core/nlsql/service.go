// Package nlsql turns natural-language questions into SQL queries, executes
// them against the claims database and keeps an audit log of every attempt.
package nlsql

import (
	"context"
	"errors"
	"fmt"

	"claimsight/src/log"
	"claimsight/src/storage/sqlite/claimsdb"
	"claimsight/src/storage/sqlite/querylogctrl"
)

// ErrNoValidSQL is returned when the model output contains no SQL statement.
var ErrNoValidSQL = errors.New("model did not produce a valid SQL query")

// Provider generates SQL from natural language.
type Provider interface {
	Reasoning(ctx context.Context, system string, prompt string) (string, error)
}

// Querier executes raw SQL against the claims database.
type Querier interface {
	Query(ctx context.Context, query string) (*claimsdb.ResultSet, error)
}

// AuditLog records answered questions.
type AuditLog interface {
	Create(ctx context.Context, entry querylogctrl.QueryLog) (*querylogctrl.QueryLog, error)
	Recent(ctx context.Context, limit int) ([]querylogctrl.QueryLog, error)
}

// QueryResult is the outcome of one answered question.
type QueryResult struct {
	Question     string   `json:"question"`
	GeneratedSQL string   `json:"generated_sql"`
	Columns      []string `json:"columns"`
	Rows         [][]any  `json:"rows"`
	RowCount     int      `json:"row_count"`
}

type Service struct {
	provider Provider
	querier  Querier
	auditLog AuditLog
}

func NewService(provider Provider, querier Querier, auditLog AuditLog) *Service {
	return &Service{
		provider: provider,
		querier:  querier,
		auditLog: auditLog,
	}
}

// Ask answers one natural-language question. The generated SQL and the
// outcome are always written to the audit log, including failures.
func (s *Service) Ask(ctx context.Context, question string) (*QueryResult, error) {
	processed := Preprocess(question)

	response, err := s.provider.Reasoning(ctx, sqlSystemPrompt, processed)
	if err != nil {
		s.record(ctx, question, "", querylogctrl.StatusError, err.Error(), 0)
		return nil, fmt.Errorf("failed to generate SQL: %w", err)
	}

	query := SanitizeSQL(response)
	if !ValidateSQL(query) {
		s.record(ctx, question, query, querylogctrl.StatusError, ErrNoValidSQL.Error(), 0)
		return nil, ErrNoValidSQL
	}

	result, err := s.querier.Query(ctx, query)
	if err != nil {
		s.record(ctx, question, query, querylogctrl.StatusError, err.Error(), 0)
		return nil, fmt.Errorf("failed to execute generated SQL: %w", err)
	}

	s.record(ctx, question, query, querylogctrl.StatusOK, "", len(result.Rows))

	return &QueryResult{
		Question:     question,
		GeneratedSQL: query,
		Columns:      result.Columns,
		Rows:         result.Rows,
		RowCount:     len(result.Rows),
	}, nil
}

// History returns the newest audit log entries, most recent first.
func (s *Service) History(ctx context.Context, limit int) ([]querylogctrl.QueryLog, error) {
	return s.auditLog.Recent(ctx, limit)
}

func (s *Service) record(ctx context.Context, question, query, status, errMsg string, rowCount int) {
	_, err := s.auditLog.Create(ctx, querylogctrl.QueryLog{
		Question:     question,
		GeneratedSQL: query,
		Status:       status,
		ErrorMessage: errMsg,
		RowCount:     rowCount,
	})
	if err != nil {
		log.Error(err, "failed to write query log", "question", question)
	}
}
