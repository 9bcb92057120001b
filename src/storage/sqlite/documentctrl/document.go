package documentctrl

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// Document processing states.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusIndexed    = "indexed"
	StatusFailed     = "failed"
)

// PolicyDocument is the metadata record of an uploaded policy document.
type PolicyDocument struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	DocumentID  string    `gorm:"not null;uniqueIndex;column:document_id" json:"document_id"`
	Filename    string    `gorm:"not null" json:"filename"`
	ContentType string    `gorm:"not null;column:content_type" json:"content_type"`
	MinioURL    string    `gorm:"not null;column:minio_url" json:"minio_url"` // bucket name + object name
	Status      string    `gorm:"not null;default:pending" json:"status"`
	ChunkCount  int       `gorm:"column:chunk_count" json:"chunk_count"`
	LastError   string    `gorm:"column:last_error" json:"last_error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DocumentService struct {
	db        *gorm.DB
	snowflake *snowflake.Node
}

func NewDocumentService(db *gorm.DB) (*DocumentService, error) {
	node, err := snowflake.NewNode(1) // Node number 1 for documents
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %v", err)
	}

	return &DocumentService{
		db:        db,
		snowflake: node,
	}, nil
}

func (s *DocumentService) Create(ctx context.Context, documentID, filename, contentType, minioURL string) (*PolicyDocument, error) {
	doc := &PolicyDocument{
		ID:          s.snowflake.Generate().Int64(),
		DocumentID:  documentID,
		Filename:    filename,
		ContentType: contentType,
		MinioURL:    minioURL,
		Status:      StatusPending,
	}

	result := s.db.WithContext(ctx).Create(doc)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to create document record: %v", result.Error)
	}

	return doc, nil
}

func (s *DocumentService) GetByDocumentID(ctx context.Context, documentID string) (*PolicyDocument, error) {
	var doc PolicyDocument
	result := s.db.WithContext(ctx).Where("document_id = ?", documentID).First(&doc)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document record: %v", result.Error)
	}
	return &doc, nil
}

func (s *DocumentService) List(ctx context.Context, limit, offset int) ([]PolicyDocument, error) {
	var docs []PolicyDocument
	result := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&docs)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list document records: %v", result.Error)
	}
	return docs, nil
}

func (s *DocumentService) UpdateStatus(ctx context.Context, documentID, status string) error {
	result := s.db.WithContext(ctx).
		Model(&PolicyDocument{}).
		Where("document_id = ?", documentID).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update document status: %v", result.Error)
	}
	return nil
}

// MarkIndexed records a completed ingestion with its chunk count.
func (s *DocumentService) MarkIndexed(ctx context.Context, documentID string, chunkCount int) error {
	result := s.db.WithContext(ctx).
		Model(&PolicyDocument{}).
		Where("document_id = ?", documentID).
		Updates(map[string]interface{}{"status": StatusIndexed, "chunk_count": chunkCount})
	if result.Error != nil {
		return fmt.Errorf("failed to mark document indexed: %v", result.Error)
	}
	return nil
}

// DeleteByDocumentID removes the document record.
func (s *DocumentService) DeleteByDocumentID(ctx context.Context, documentID string) error {
	result := s.db.WithContext(ctx).Where("document_id = ?", documentID).Delete(&PolicyDocument{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete document record: %v", result.Error)
	}
	return nil
}

// MarkFailed records a failed ingestion with the failure reason.
func (s *DocumentService) MarkFailed(ctx context.Context, documentID string, cause error) error {
	result := s.db.WithContext(ctx).
		Model(&PolicyDocument{}).
		Where("document_id = ?", documentID).
		Updates(map[string]interface{}{"status": StatusFailed, "last_error": cause.Error()})
	if result.Error != nil {
		return fmt.Errorf("failed to mark document failed: %v", result.Error)
	}
	return nil
}
