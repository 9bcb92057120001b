package claimdocs

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"claimsight/src/log"
	"claimsight/src/storage/minioctrl"
	"claimsight/src/storage/sqlite/clausectrl"
	"claimsight/src/storage/sqlite/documentctrl"
)

// Chunking parameters for policy documents. Clauses are long, so chunks are
// sized to hold a full clause with surrounding context.
const (
	ClauseChunkSize    = 10000
	ClauseChunkOverlap = 1000
)

// EmbeddingModel is the model used for clause and query embeddings.
const EmbeddingModel = "nomic-embed-text"

// IngestService turns an uploaded document into indexed clause vectors.
type IngestService struct {
	minioService *minioctrl.MinioService
	documentCtrl *documentctrl.DocumentService
	clauseCtrl   *clausectrl.ClauseService
	clauseIndex  ClauseIndex
	extractor    TextExtractor
	splitter     TextSplitter
	embedder     Embedder
}

func NewIngestService(
	minioService *minioctrl.MinioService,
	documentCtrl *documentctrl.DocumentService,
	clauseCtrl *clausectrl.ClauseService,
	clauseIndex ClauseIndex,
	extractor TextExtractor,
	splitter TextSplitter,
	embedder Embedder,
) *IngestService {
	return &IngestService{
		minioService: minioService,
		documentCtrl: documentCtrl,
		clauseCtrl:   clauseCtrl,
		clauseIndex:  clauseIndex,
		extractor:    extractor,
		splitter:     splitter,
		embedder:     embedder,
	}
}

// ProcessDocument extracts, chunks, embeds and indexes one uploaded document.
// Failures are recorded on the document record before being returned.
func (s *IngestService) ProcessDocument(ctx context.Context, documentID string) error {
	record, err := s.documentCtrl.GetByDocumentID(ctx, documentID)
	if err != nil {
		return err
	}
	if record == nil {
		return ErrDocumentNotFound
	}

	if err := s.documentCtrl.UpdateStatus(ctx, documentID, documentctrl.StatusProcessing); err != nil {
		return err
	}

	count, err := s.ingest(ctx, record)
	if err != nil {
		if markErr := s.documentCtrl.MarkFailed(ctx, documentID, err); markErr != nil {
			log.Error(markErr, "failed to record ingestion failure", "document_id", documentID)
		}
		return err
	}

	if err := s.documentCtrl.MarkIndexed(ctx, documentID, count); err != nil {
		return err
	}

	log.Info("document ingested", "document_id", documentID, "clauses", count)
	return nil
}

func (s *IngestService) ingest(ctx context.Context, record *documentctrl.PolicyDocument) (int, error) {
	bucket, objectName := s.minioService.GetBucketAndObjectFromURL(record.MinioURL)
	data, err := s.minioService.GetObject(ctx, bucket, objectName)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch document object: %w", err)
	}

	text, err := s.extractor.ExtractText(ctx, record.Filename, record.ContentType, data)
	if err != nil {
		return 0, fmt.Errorf("failed to extract text: %w", err)
	}

	chunks, err := s.splitter.TextSplit(ctx, text, ClauseChunkSize, ClauseChunkOverlap)
	if err != nil {
		return 0, fmt.Errorf("failed to split text: %w", err)
	}

	if err := s.clauseIndex.EnsureReady(ctx); err != nil {
		return 0, fmt.Errorf("failed to prepare clause index: %w", err)
	}

	vectors := make([]ClauseVector, 0, len(chunks))
	for i, chunk := range chunks {
		clauseID := uuid.New().String()

		clauseObject := fmt.Sprintf("%s/%s.txt", record.DocumentID, clauseID)
		if err := s.minioService.PutObject(ctx, minioctrl.PolicyClausesBucket, clauseObject, []byte(chunk)); err != nil {
			return 0, fmt.Errorf("failed to store clause %d: %w", i, err)
		}

		minioURL := fmt.Sprintf("%s/%s", minioctrl.PolicyClausesBucket, clauseObject)
		if _, err := s.clauseCtrl.Create(ctx, record.DocumentID, clauseID, minioURL, i); err != nil {
			return 0, fmt.Errorf("failed to record clause %d: %w", i, err)
		}

		embedding, err := s.embedder.GetEmbedding(ctx, EmbeddingModel, chunk)
		if err != nil {
			return 0, fmt.Errorf("failed to embed clause %d: %w", i, err)
		}

		vectors = append(vectors, ClauseVector{
			ClauseID:   clauseID,
			DocumentID: record.DocumentID,
			Content:    chunk,
			Position:   i,
			Vector:     embedding,
		})
	}

	if len(vectors) > 0 {
		if err := s.clauseIndex.Add(ctx, vectors); err != nil {
			return 0, fmt.Errorf("failed to index clauses: %w", err)
		}
	}

	return len(vectors), nil
}
