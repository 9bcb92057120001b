package claimdocs

import (
	"context"
	"errors"
)

var (
	// ErrDocumentNotFound is returned when no document matches the given ID.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrUnsupportedFormat is returned for uploads that are not PDF or DOCX.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// Embedder produces embedding vectors for text.
type Embedder interface {
	GetEmbedding(ctx context.Context, model, text string) ([]float32, error)
}

// TextExtractor converts a document into plain text.
type TextExtractor interface {
	ExtractText(ctx context.Context, filename, contentType string, data []byte) (string, error)
}

// TextSplitter splits text into overlapping chunks.
type TextSplitter interface {
	TextSplit(ctx context.Context, text string, chunkSize, chunkOverlap int) ([]string, error)
}

// ClauseVector is one policy clause with its embedding, ready for indexing.
type ClauseVector struct {
	ClauseID   string
	DocumentID string
	Content    string
	Position   int
	Vector     []float32
}

// ClauseMatch is one retrieved clause with its similarity score.
type ClauseMatch struct {
	ClauseID   string  `json:"clause_id"`
	DocumentID string  `json:"document_id"`
	Content    string  `json:"content"`
	Position   int     `json:"position"`
	Score      float64 `json:"score"`
}

// ClauseIndex stores clause vectors and answers similarity queries. Backed by
// Weaviate when configured, otherwise by the local on-disk index.
type ClauseIndex interface {
	// EnsureReady prepares the index storage (schema, data file).
	EnsureReady(ctx context.Context) error
	Add(ctx context.Context, vectors []ClauseVector) error
	Query(ctx context.Context, vector []float32, limit int) ([]ClauseMatch, error)
	// QueryHybrid combines vector similarity with keyword matching where the
	// backend supports it; otherwise it behaves like Query.
	QueryHybrid(ctx context.Context, query string, vector []float32, limit int) ([]ClauseMatch, error)
	RemoveDocument(ctx context.Context, documentID string) error
	Ping(ctx context.Context) error
}

// IngestionEnqueuer schedules asynchronous document ingestion.
type IngestionEnqueuer interface {
	EnqueueIngestion(ctx context.Context, documentID string) (jobID string, err error)
}
