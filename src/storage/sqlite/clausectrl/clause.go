package clausectrl

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// Clause is the metadata record of one indexed policy clause chunk.
type Clause struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	DocumentID string    `gorm:"not null;index;column:document_id" json:"document_id"`
	ClauseID   string    `gorm:"not null;column:clause_id" json:"clause_id"`
	MinioURL   string    `gorm:"not null;column:minio_url" json:"minio_url"` // bucket name + object name
	Order      int       `gorm:"not null;column:clause_order" json:"order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ClauseService struct {
	db        *gorm.DB
	snowflake *snowflake.Node
}

func NewClauseService(db *gorm.DB) (*ClauseService, error) {
	node, err := snowflake.NewNode(2) // Node number 2 for clauses
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %v", err)
	}

	return &ClauseService{
		db:        db,
		snowflake: node,
	}, nil
}

func (s *ClauseService) Create(ctx context.Context, documentID, clauseID, minioURL string, order int) (*Clause, error) {
	clause := &Clause{
		ID:         s.snowflake.Generate().Int64(),
		DocumentID: documentID,
		ClauseID:   clauseID,
		MinioURL:   minioURL,
		Order:      order,
	}

	result := s.db.WithContext(ctx).Create(clause)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to create clause record: %v", result.Error)
	}

	return clause, nil
}

func (s *ClauseService) GetByDocumentID(ctx context.Context, documentID string) ([]Clause, error) {
	var clauses []Clause
	result := s.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("clause_order ASC").
		Find(&clauses)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get clause records: %v", result.Error)
	}
	return clauses, nil
}

func (s *ClauseService) DeleteByDocumentID(ctx context.Context, documentID string) error {
	result := s.db.WithContext(ctx).Where("document_id = ?", documentID).Delete(&Clause{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete clause records: %v", result.Error)
	}
	return nil
}
