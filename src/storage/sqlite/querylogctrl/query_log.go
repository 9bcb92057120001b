package querylogctrl

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// QueryLog records one answered natural-language question.
type QueryLog struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Question     string    `gorm:"not null" json:"question"`
	GeneratedSQL string    `gorm:"column:generated_sql" json:"generated_sql"`
	Status       string    `gorm:"not null" json:"status"`
	ErrorMessage string    `gorm:"column:error_message" json:"error_message,omitempty"`
	RowCount     int       `gorm:"column:row_count" json:"row_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type QueryLogService struct {
	db        *gorm.DB
	snowflake *snowflake.Node
}

func NewQueryLogService(db *gorm.DB) (*QueryLogService, error) {
	node, err := snowflake.NewNode(3) // Node number 3 for query logs
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %v", err)
	}

	return &QueryLogService{
		db:        db,
		snowflake: node,
	}, nil
}

func (s *QueryLogService) Create(ctx context.Context, entry QueryLog) (*QueryLog, error) {
	entry.ID = s.snowflake.Generate().Int64()
	result := s.db.WithContext(ctx).Create(&entry)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to create query log: %v", result.Error)
	}
	return &entry, nil
}

// Recent returns the newest log entries, most recent first.
func (s *QueryLogService) Recent(ctx context.Context, limit int) ([]QueryLog, error) {
	if limit <= 0 {
		limit = 20
	}
	var entries []QueryLog
	result := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list query logs: %v", result.Error)
	}
	return entries, nil
}
