// Package reports aggregates the claims database into summary views and
// exports query results as CSV files in object storage.
package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"claimsight/src/storage/minioctrl"
	"claimsight/src/storage/sqlite/claimsdb"
)

// DefaultTopCoverageLimit bounds the top-coverage report.
const DefaultTopCoverageLimit = 5

type Service struct {
	store        *claimsdb.Store
	minioService *minioctrl.MinioService
}

func NewService(store *claimsdb.Store, minioService *minioctrl.MinioService) *Service {
	return &Service{
		store:        store,
		minioService: minioService,
	}
}

// ClaimsSummary groups claims by status with amount totals.
func (s *Service) ClaimsSummary(ctx context.Context) ([]claimsdb.StatusSummary, error) {
	return s.store.ClaimsSummary(ctx)
}

// TopCoverage lists the coverage types with the most claims.
func (s *Service) TopCoverage(ctx context.Context, limit int) ([]claimsdb.CoverageSummary, error) {
	if limit <= 0 {
		limit = DefaultTopCoverageLimit
	}
	return s.store.TopCoverageClaims(ctx, limit)
}

// FinancialSummary returns overall and per-policy claim totals.
func (s *Service) FinancialSummary(ctx context.Context) (*claimsdb.FinancialSummary, error) {
	return s.store.FinancialSummary(ctx)
}

// Stats reports the row count of every claims table.
func (s *Service) Stats(ctx context.Context) (map[string]int64, error) {
	return s.store.TableCounts(ctx)
}

// ExportQuery runs a SQL query and stores its result set as a CSV object.
// It returns the minio URL of the export.
func (s *Service) ExportQuery(ctx context.Context, name, query string) (string, error) {
	result, err := s.store.Query(ctx, query)
	if err != nil {
		return "", err
	}
	return s.Export(ctx, name, result)
}

// Export stores a result set as a CSV object and returns its minio URL.
func (s *Service) Export(ctx context.Context, name string, result *claimsdb.ResultSet) (string, error) {
	data, err := EncodeCSV(result)
	if err != nil {
		return "", err
	}

	if err := s.minioService.EnsureBucketExists(ctx, minioctrl.ReportExportsBucket); err != nil {
		return "", fmt.Errorf("failed to ensure export bucket exists: %w", err)
	}

	if name == "" {
		name = "export"
	}
	objectName := fmt.Sprintf("%s_%s.csv", name, time.Now().Format("20060102T150405"))

	if err := s.minioService.PutObjectWithContentType(ctx, minioctrl.ReportExportsBucket, objectName, data, "text/csv"); err != nil {
		return "", fmt.Errorf("failed to store export: %w", err)
	}

	return fmt.Sprintf("%s/%s", minioctrl.ReportExportsBucket, objectName), nil
}

// EncodeCSV renders a result set as CSV with a header row.
func EncodeCSV(result *claimsdb.ResultSet) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(result.Columns); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range result.Rows {
		record := make([]string, len(row))
		for i, value := range row {
			if value == nil {
				record[i] = ""
				continue
			}
			record[i] = fmt.Sprintf("%v", value)
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return buf.Bytes(), nil
}
