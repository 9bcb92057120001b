package claimdocs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"claimsight/src/log"
	"claimsight/src/storage/minioctrl"
	"claimsight/src/storage/sqlite/clausectrl"
	"claimsight/src/storage/sqlite/documentctrl"
)

// DocumentService handles upload and lifecycle of policy documents.
type DocumentService struct {
	minioService *minioctrl.MinioService
	documentCtrl *documentctrl.DocumentService
	clauseCtrl   *clausectrl.ClauseService
	clauseIndex  ClauseIndex
	enqueuer     IngestionEnqueuer
}

func NewDocumentService(
	minioService *minioctrl.MinioService,
	documentCtrl *documentctrl.DocumentService,
	clauseCtrl *clausectrl.ClauseService,
	clauseIndex ClauseIndex,
	enqueuer IngestionEnqueuer,
) *DocumentService {
	return &DocumentService{
		minioService: minioService,
		documentCtrl: documentCtrl,
		clauseCtrl:   clauseCtrl,
		clauseIndex:  clauseIndex,
		enqueuer:     enqueuer,
	}
}

// Upload stores a policy document and schedules its ingestion.
// Only PDF and DOCX documents are accepted.
func (s *DocumentService) Upload(ctx context.Context, filename, contentType string, data []byte) (*documentctrl.PolicyDocument, string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".pdf" && ext != ".docx" {
		return nil, "", ErrUnsupportedFormat
	}

	documentID := uuid.New().String()
	objectName := documentID + ext

	if err := s.minioService.PutObjectWithContentType(ctx, minioctrl.PolicyDocumentsBucket, objectName, data, contentType); err != nil {
		return nil, "", fmt.Errorf("failed to store document: %w", err)
	}

	minioURL := fmt.Sprintf("%s/%s", minioctrl.PolicyDocumentsBucket, objectName)
	record, err := s.documentCtrl.Create(ctx, documentID, filename, contentType, minioURL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create document record: %w", err)
	}

	jobID, err := s.enqueuer.EnqueueIngestion(ctx, documentID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to enqueue ingestion: %w", err)
	}

	log.Info("document uploaded", "document_id", documentID, "filename", filename, "job_id", jobID)
	return record, jobID, nil
}

func (s *DocumentService) List(ctx context.Context, limit, offset int) ([]documentctrl.PolicyDocument, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.documentCtrl.List(ctx, limit, offset)
}

func (s *DocumentService) Get(ctx context.Context, documentID string) (*documentctrl.PolicyDocument, error) {
	record, err := s.documentCtrl.GetByDocumentID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrDocumentNotFound
	}
	return record, nil
}

// Delete removes the document, its stored objects, clause records and
// indexed vectors.
func (s *DocumentService) Delete(ctx context.Context, documentID string) error {
	record, err := s.Get(ctx, documentID)
	if err != nil {
		return err
	}

	clauses, err := s.clauseCtrl.GetByDocumentID(ctx, documentID)
	if err != nil {
		return err
	}

	objectNames := make([]string, 0, len(clauses))
	for _, clause := range clauses {
		_, objectName := s.minioService.GetBucketAndObjectFromURL(clause.MinioURL)
		if objectName != "" {
			objectNames = append(objectNames, objectName)
		}
	}
	if len(objectNames) > 0 {
		if err := s.minioService.DeleteObjects(ctx, minioctrl.PolicyClausesBucket, objectNames); err != nil {
			return fmt.Errorf("failed to delete clause objects: %w", err)
		}
	}

	bucket, objectName := s.minioService.GetBucketAndObjectFromURL(record.MinioURL)
	if objectName != "" {
		if err := s.minioService.DeleteObject(ctx, bucket, objectName); err != nil {
			return fmt.Errorf("failed to delete document object: %w", err)
		}
	}

	if err := s.clauseIndex.RemoveDocument(ctx, documentID); err != nil {
		return fmt.Errorf("failed to remove indexed clauses: %w", err)
	}

	if err := s.clauseCtrl.DeleteByDocumentID(ctx, documentID); err != nil {
		return err
	}

	if err := s.documentCtrl.DeleteByDocumentID(ctx, documentID); err != nil {
		return err
	}

	log.Info("document deleted", "document_id", documentID, "clauses", len(clauses))
	return nil
}
