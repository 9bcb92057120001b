package weaviate

import (
	"context"
	"fmt"

	"github.com/weaviate/weaviate-go-client/v4/weaviate/graphql"
)

// HybridConfig represents configuration for hybrid search
type HybridConfig struct {
	Query     string  // Text query for the BM25 side
	Alpha     float32 // Weight of the vector side, 0..1
	Fields    []string
	Limit     int
	Distance  float64
	Certainty float64
}

// DefaultHybridConfig returns the default hybrid search configuration,
// weighting vector similarity at 75% against BM25.
func DefaultHybridConfig(query string) HybridConfig {
	return HybridConfig{
		Query: query,
		Alpha: 0.75,
		Limit: DefaultQueryLimit,
	}
}

// QueryHybrid performs hybrid search combining vector similarity and BM25
func (w *SDK) QueryHybrid(ctx context.Context, className string, vector []float32, config HybridConfig) ([]QueryResult, error) {
	fields := make([]graphql.Field, len(config.Fields))
	for i, field := range config.Fields {
		fields[i] = graphql.Field{Name: field}
	}
	// _additional carries the object id and the combined hybrid score
	fields = append(fields, graphql.Field{Name: "_additional { id distance certainty score }"})

	hybridBuilder := w.client.GraphQL().HybridArgumentBuilder().
		WithVector(vector).
		WithQuery(config.Query).
		WithAlpha(config.Alpha)

	if config.Distance > 0 {
		hybridBuilder.WithMaxVectorDistance(float32(config.Distance))
	}
	if config.Certainty > 0 {
		hybridBuilder.WithCertainty(float32(config.Certainty))
	}

	limit := config.Limit
	if limit <= 0 {
		limit = DefaultQueryLimit
	}

	result, err := w.client.GraphQL().Get().
		WithClassName(className).
		WithFields(fields...).
		WithHybrid(hybridBuilder).
		WithLimit(limit).
		Do(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to run hybrid query: %v", err)
	}

	var queryResults []QueryResult
	if data, ok := result.Data["Get"].(map[string]interface{}); ok {
		if objects, ok := data[className].([]interface{}); ok {
			for _, obj := range objects {
				if objMap, ok := obj.(map[string]interface{}); ok {
					additional := objMap["_additional"].(map[string]interface{})

					properties := make(map[string]interface{})
					for k, v := range objMap {
						if k != "_additional" {
							properties[k] = v
						}
					}

					queryResults = append(queryResults, QueryResult{
						ID:         additional["id"].(string),
						Score:      additional["score"].(float64),
						Properties: properties,
					})
				}
			}
		}
	}

	return queryResults, nil
}
