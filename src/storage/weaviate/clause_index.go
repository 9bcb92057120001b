package weaviate

import (
	"context"

	"github.com/weaviate/weaviate/entities/models"

	"claimsight/src/core/claimdocs"
)

// ClauseClassName is the Weaviate class holding policy clause vectors.
const ClauseClassName = "PolicyClause"

// ClauseIndex implements claimdocs.ClauseIndex on top of a Weaviate class.
type ClauseIndex struct {
	sdk *SDK
}

func NewClauseIndex(sdk *SDK) *ClauseIndex {
	return &ClauseIndex{sdk: sdk}
}

func (c *ClauseIndex) EnsureReady(ctx context.Context) error {
	properties := []*models.Property{
		{Name: "clauseId", DataType: []string{"text"}},
		{Name: "documentId", DataType: []string{"text"}},
		{Name: "content", DataType: []string{"text"}},
		{Name: "position", DataType: []string{"int"}},
	}
	// Vectors are provided by the ingestion pipeline, not by Weaviate.
	return c.sdk.EnsureSchema(ctx, ClauseClassName, properties, "none")
}

func (c *ClauseIndex) Add(ctx context.Context, vectors []claimdocs.ClauseVector) error {
	objects := make([]VectorObject, len(vectors))
	for i, v := range vectors {
		objects[i] = VectorObject{
			Vector: v.Vector,
			Properties: map[string]interface{}{
				"clauseId":   v.ClauseID,
				"documentId": v.DocumentID,
				"content":    v.Content,
				"position":   v.Position,
			},
		}
	}
	return c.sdk.BatchAddVectors(ctx, ClauseClassName, objects)
}

func (c *ClauseIndex) Query(ctx context.Context, vector []float32, limit int) ([]claimdocs.ClauseMatch, error) {
	results, err := c.sdk.QueryVectors(ctx, ClauseClassName, vector, QueryConfig{
		Fields: []string{"clauseId", "documentId", "content", "position"},
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}
	return clauseMatches(results), nil
}

func (c *ClauseIndex) QueryHybrid(ctx context.Context, query string, vector []float32, limit int) ([]claimdocs.ClauseMatch, error) {
	config := DefaultHybridConfig(query)
	config.Fields = []string{"clauseId", "documentId", "content", "position"}
	config.Limit = limit

	results, err := c.sdk.QueryHybrid(ctx, ClauseClassName, vector, config)
	if err != nil {
		return nil, err
	}
	return clauseMatches(results), nil
}

func (c *ClauseIndex) RemoveDocument(ctx context.Context, documentID string) error {
	return c.sdk.DeleteByProperty(ctx, ClauseClassName, "documentId", documentID)
}

func (c *ClauseIndex) Ping(ctx context.Context) error {
	return c.sdk.Ping(ctx)
}

func clauseMatches(results []QueryResult) []claimdocs.ClauseMatch {
	matches := make([]claimdocs.ClauseMatch, 0, len(results))
	for _, result := range results {
		match := claimdocs.ClauseMatch{
			Score: result.Score,
		}
		if v, ok := result.Properties["clauseId"].(string); ok {
			match.ClauseID = v
		}
		if v, ok := result.Properties["documentId"].(string); ok {
			match.DocumentID = v
		}
		if v, ok := result.Properties["content"].(string); ok {
			match.Content = v
		}
		if v, ok := result.Properties["position"].(float64); ok {
			match.Position = int(v)
		}
		matches = append(matches, match)
	}
	return matches
}
