package claimdocs

import (
	"context"
	"fmt"
)

// DefaultSearchLimit matches the retrieval depth used by the decision flow.
const DefaultSearchLimit = 5

// SearchService answers similarity queries over indexed policy clauses.
type SearchService struct {
	clauseIndex ClauseIndex
	embedder    Embedder
}

func NewSearchService(clauseIndex ClauseIndex, embedder Embedder) *SearchService {
	return &SearchService{
		clauseIndex: clauseIndex,
		embedder:    embedder,
	}
}

// Search returns the clauses most similar to the query.
func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]ClauseMatch, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	embedding, err := s.embedder.GetEmbedding(ctx, EmbeddingModel, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get query embedding: %w", err)
	}

	matches, err := s.clauseIndex.Query(ctx, embedding, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search clause index: %w", err)
	}

	return matches, nil
}

// SearchHybrid combines vector similarity with keyword matching. Backends
// without keyword support fall back to plain vector search.
func (s *SearchService) SearchHybrid(ctx context.Context, query string, limit int) ([]ClauseMatch, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	embedding, err := s.embedder.GetEmbedding(ctx, EmbeddingModel, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get query embedding: %w", err)
	}

	matches, err := s.clauseIndex.QueryHybrid(ctx, query, embedding, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search clause index: %w", err)
	}

	return matches, nil
}
