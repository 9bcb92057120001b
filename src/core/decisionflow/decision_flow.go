// Package decisionflow renders claim decisions from policy documents. The
// flow structures the user's situation into JSON, retrieves the most similar
// policy clauses and asks the model for a decision grounded in them.
package decisionflow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"claimsight/src/core/claimdocs"
	"claimsight/src/log"
)

// RetrievalDepth is the number of policy clauses given to the decision model.
const RetrievalDepth = 5

// ErrNoRelevantClauses is returned when the clause index has nothing similar
// to the query, typically because no documents have been ingested yet.
var ErrNoRelevantClauses = errors.New("no relevant policy clauses found")

// LLMProvider generates structured output for both flow steps.
type LLMProvider interface {
	Reasoning(ctx context.Context, system string, prompt string) (string, error)
}

// ClauseRetriever finds the policy clauses most similar to a query.
type ClauseRetriever interface {
	Search(ctx context.Context, query string, limit int) ([]claimdocs.ClauseMatch, error)
}

// StructuredQuery holds the details extracted from the user's situation.
// Fields beyond the well-known ones are preserved in Extra.
type StructuredQuery map[string]any

// Decision is the final output of the flow.
type Decision struct {
	Decision         string   `json:"decision"`
	Amount           any      `json:"amount"`
	Justification    string   `json:"justification"`
	RetrievedClauses []string `json:"retrieved_clauses,omitempty"`
}

type DecisionFlow struct {
	llmProvider LLMProvider
	retriever   ClauseRetriever
}

func NewDecisionFlow(llmProvider LLMProvider, retriever ClauseRetriever) *DecisionFlow {
	return &DecisionFlow{
		llmProvider: llmProvider,
		retriever:   retriever,
	}
}

// Process runs the full flow for one query: structure, retrieve, decide.
func (df *DecisionFlow) Process(ctx context.Context, query string) (*Decision, error) {
	structured, err := df.StructureQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	matches, err := df.retriever.Search(ctx, query, RetrievalDepth)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve clauses: %w", err)
	}
	if len(matches) == 0 {
		return nil, ErrNoRelevantClauses
	}

	clauses := make([]string, len(matches))
	for i, match := range matches {
		clauses[i] = match.Content
	}

	decision, err := df.Decide(ctx, structured, clauses)
	if err != nil {
		return nil, err
	}

	decision.RetrievedClauses = clauses
	return decision, nil
}

// StructureQuery extracts the key claim details from a free-text situation.
func (df *DecisionFlow) StructureQuery(ctx context.Context, query string) (StructuredQuery, error) {
	prompt, err := executeTemplate(structurePromptTemplate, map[string]string{"Query": query})
	if err != nil {
		return nil, err
	}

	response, err := df.llmProvider.Reasoning(ctx, structureSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to structure query: %w", err)
	}

	var structured StructuredQuery
	if err := json.Unmarshal([]byte(stripJSONFences(response)), &structured); err != nil {
		return nil, fmt.Errorf("failed to parse structured query: %w", err)
	}

	return structured, nil
}

// Decide evaluates the structured details against the retrieved clauses.
// When the model's answer cannot be parsed the claim goes to manual review
// instead of failing the request.
func (df *DecisionFlow) Decide(ctx context.Context, structured StructuredQuery, clauses []string) (*Decision, error) {
	queryDetails, err := json.MarshalIndent(structured, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query details: %w", err)
	}

	numbered := make([]string, len(clauses))
	for i, clause := range clauses {
		numbered[i] = fmt.Sprintf("Clause %d:\n%s", i+1, clause)
	}

	prompt, err := executeTemplate(decisionPromptTemplate, map[string]string{
		"QueryDetails": string(queryDetails),
		"Clauses":      strings.Join(numbered, "\n\n"),
	})
	if err != nil {
		return nil, err
	}

	response, err := df.llmProvider.Reasoning(ctx, decisionSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate decision: %w", err)
	}

	var decision Decision
	if err := json.Unmarshal([]byte(stripJSONFences(response)), &decision); err != nil {
		log.Error(err, "decision response was not valid JSON", "response", response)
		return &Decision{
			Decision:      "Pending Review",
			Amount:        "N/A",
			Justification: "The decision could not be generated automatically and requires manual review.",
		}, nil
	}

	return &decision, nil
}

func stripJSONFences(response string) string {
	cleaned := strings.TrimSpace(response)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

func executeTemplate(tmpl string, data any) (string, error) {
	t := template.Must(template.New("prompt").Parse(tmpl))

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}
