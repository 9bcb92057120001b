package decisionflow_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"claimsight/src/core/claimdocs"
	"claimsight/src/core/decisionflow"
)

type fakeProvider struct {
	responses []string
	errs      []error
	prompts   []string
	systems   []string
}

func (f *fakeProvider) Reasoning(ctx context.Context, system string, prompt string) (string, error) {
	call := len(f.prompts)
	f.prompts = append(f.prompts, prompt)
	f.systems = append(f.systems, system)

	if call < len(f.errs) && f.errs[call] != nil {
		return "", f.errs[call]
	}
	if call < len(f.responses) {
		return f.responses[call], nil
	}
	return "", errors.New("unexpected call")
}

type fakeRetriever struct {
	matches []claimdocs.ClauseMatch
	err     error
	query   string
	limit   int
}

func (f *fakeRetriever) Search(ctx context.Context, query string, limit int) ([]claimdocs.ClauseMatch, error) {
	f.query = query
	f.limit = limit
	return f.matches, f.err
}

func clauseMatches(contents ...string) []claimdocs.ClauseMatch {
	matches := make([]claimdocs.ClauseMatch, len(contents))
	for i, content := range contents {
		matches[i] = claimdocs.ClauseMatch{ClauseID: "c", Content: content, Position: i}
	}
	return matches
}

func TestProcessProducesDecision(t *testing.T) {
	provider := &fakeProvider{
		responses: []string{
			"```json\n{\"age\": 46, \"gender\": \"male\", \"procedure\": \"knee surgery\", \"location\": \"Pune\", \"policy_duration_months\": 3}\n```",
			"```json\n{\"decision\": \"Rejected\", \"amount\": \"N/A\", \"justification\": \"Knee surgery has a 24 month waiting period as per Clause 1.\"}\n```",
		},
	}
	retriever := &fakeRetriever{matches: clauseMatches(
		"Orthopedic procedures are covered after a waiting period of 24 months.",
		"Claims must be filed within 30 days of the procedure.",
	)}
	flow := decisionflow.NewDecisionFlow(provider, retriever)

	decision, err := flow.Process(context.Background(), "46-year-old male, knee surgery in Pune, 3-month-old insurance policy")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if decision.Decision != "Rejected" {
		t.Errorf("decision = %q, want Rejected", decision.Decision)
	}
	if decision.Amount != "N/A" {
		t.Errorf("amount = %v, want N/A", decision.Amount)
	}
	if len(decision.RetrievedClauses) != 2 {
		t.Errorf("retrieved clauses = %d, want 2", len(decision.RetrievedClauses))
	}
	if retriever.limit != decisionflow.RetrievalDepth {
		t.Errorf("retrieval limit = %d, want %d", retriever.limit, decisionflow.RetrievalDepth)
	}

	// The decision prompt must carry the structured details and numbered clauses.
	decisionPrompt := provider.prompts[1]
	if !strings.Contains(decisionPrompt, "knee surgery") {
		t.Errorf("decision prompt missing structured details: %q", decisionPrompt)
	}
	if !strings.Contains(decisionPrompt, "Clause 1:") || !strings.Contains(decisionPrompt, "Clause 2:") {
		t.Errorf("decision prompt missing numbered clauses: %q", decisionPrompt)
	}
}

func TestProcessFailsWithoutClauses(t *testing.T) {
	provider := &fakeProvider{
		responses: []string{"{\"procedure\": \"dental\"}"},
	}
	retriever := &fakeRetriever{}
	flow := decisionflow.NewDecisionFlow(provider, retriever)

	_, err := flow.Process(context.Background(), "dental cleaning claim")
	if !errors.Is(err, decisionflow.ErrNoRelevantClauses) {
		t.Fatalf("Process() error = %v, want ErrNoRelevantClauses", err)
	}
}

func TestStructureQueryRejectsInvalidJSON(t *testing.T) {
	provider := &fakeProvider{responses: []string{"not json at all"}}
	flow := decisionflow.NewDecisionFlow(provider, &fakeRetriever{})

	_, err := flow.StructureQuery(context.Background(), "some query")
	if err == nil {
		t.Fatal("StructureQuery() expected error for invalid JSON")
	}
}

func TestDecideFallsBackToManualReview(t *testing.T) {
	provider := &fakeProvider{responses: []string{"the model rambled instead of answering"}}
	flow := decisionflow.NewDecisionFlow(provider, &fakeRetriever{})

	decision, err := flow.Decide(context.Background(), decisionflow.StructuredQuery{"procedure": "knee surgery"}, []string{"clause text"})
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if decision.Decision != "Pending Review" {
		t.Errorf("decision = %q, want Pending Review", decision.Decision)
	}
	if decision.Amount != "N/A" {
		t.Errorf("amount = %v, want N/A", decision.Amount)
	}
}

func TestDecideNumericAmountPreserved(t *testing.T) {
	provider := &fakeProvider{responses: []string{
		"{\"decision\": \"Approved\", \"amount\": 150000, \"justification\": \"Covered as per Clause 1.\"}",
	}}
	flow := decisionflow.NewDecisionFlow(provider, &fakeRetriever{})

	decision, err := flow.Decide(context.Background(), decisionflow.StructuredQuery{"procedure": "cataract"}, []string{"clause"})
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	amount, ok := decision.Amount.(float64)
	if !ok || amount != 150000 {
		t.Errorf("amount = %v (%T), want 150000", decision.Amount, decision.Amount)
	}
}
