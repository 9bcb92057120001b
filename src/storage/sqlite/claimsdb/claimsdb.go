package claimsdb

import (
	"context"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open opens (or creates) the SQLite claims database at path.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %v", err)
	}

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %v", err)
	}

	return db, nil
}

// Migrate creates the claims schema.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&Policy{},
		&CoverageType{},
		&InsuredPerson{},
		&Claim{},
		&MedicalProcedure{},
		&Exclusion{},
		&PolicyRule{},
		&RequiredDocument{},
		&ClaimDocument{},
		&MedicalProvider{},
		&ClaimAssessment{},
		&ClaimHistory{},
		&PreexistingCondition{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate claims schema: %v", err)
	}
	return nil
}

// Store executes queries against the claims schema.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ResultSet holds the column names and rows of an executed query.
type ResultSet struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Query runs a raw SQL statement and returns column names with all rows.
func (s *Store) Query(ctx context.Context, query string) (*ResultSet, error) {
	rows, err := s.db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %v", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %v", err)
	}

	result := &ResultSet{Columns: columns, Rows: [][]any{}}
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %v", err)
	}

	return result, nil
}

// StatusSummary aggregates claims by status.
type StatusSummary struct {
	Status        string  `json:"status"`
	Count         int64   `json:"count"`
	TotalClaimed  float64 `json:"total_claimed"`
	TotalApproved float64 `json:"total_approved"`
}

func (s *Store) ClaimsSummary(ctx context.Context) ([]StatusSummary, error) {
	var summaries []StatusSummary
	err := s.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) as count,
		       SUM(claim_amount) as total_claimed,
		       SUM(approved_amount) as total_approved
		FROM CLAIMS GROUP BY status ORDER BY count DESC`).Scan(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to summarize claims: %v", err)
	}
	return summaries, nil
}

// CoverageSummary aggregates claims by coverage type.
type CoverageSummary struct {
	CoverageName  string  `json:"coverage_name"`
	ClaimCount    int64   `json:"claim_count"`
	TotalClaimed  float64 `json:"total_claimed"`
	TotalApproved float64 `json:"total_approved"`
}

func (s *Store) TopCoverageClaims(ctx context.Context, limit int) ([]CoverageSummary, error) {
	if limit <= 0 {
		limit = 5
	}
	var summaries []CoverageSummary
	err := s.db.WithContext(ctx).Raw(`
		SELECT ct.coverage_name, COUNT(c.claim_id) as claim_count,
		       SUM(c.claim_amount) as total_claimed,
		       SUM(c.approved_amount) as total_approved
		FROM CLAIMS c
		JOIN COVERAGE_TYPES ct ON c.coverage_id = ct.coverage_id
		GROUP BY ct.coverage_id, ct.coverage_name
		ORDER BY claim_count DESC LIMIT ?`, limit).Scan(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to summarize coverage claims: %v", err)
	}
	return summaries, nil
}

// FinancialOverall holds whole-dataset claim totals.
type FinancialOverall struct {
	TotalClaims    int64   `json:"total_claims"`
	TotalClaimed   float64 `json:"total_claimed"`
	TotalApproved  float64 `json:"total_approved"`
	AvgClaimAmount float64 `json:"avg_claim_amount"`
}

// PolicyFinancial holds claim totals per policy.
type PolicyFinancial struct {
	PolicyName    string  `json:"policy_name"`
	ClaimCount    int64   `json:"claim_count"`
	TotalClaimed  float64 `json:"total_claimed"`
	TotalApproved float64 `json:"total_approved"`
}

// FinancialSummary combines overall and per-policy totals.
type FinancialSummary struct {
	Overall  FinancialOverall  `json:"overall"`
	ByPolicy []PolicyFinancial `json:"by_policy"`
}

func (s *Store) FinancialSummary(ctx context.Context) (*FinancialSummary, error) {
	var summary FinancialSummary
	err := s.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) as total_claims,
		       COALESCE(SUM(claim_amount), 0) as total_claimed,
		       COALESCE(SUM(approved_amount), 0) as total_approved,
		       COALESCE(AVG(claim_amount), 0) as avg_claim_amount
		FROM CLAIMS`).Scan(&summary.Overall).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get overall financial summary: %v", err)
	}

	err = s.db.WithContext(ctx).Raw(`
		SELECT p.policy_name, COUNT(c.claim_id) as claim_count,
		       COALESCE(SUM(c.claim_amount), 0) as total_claimed,
		       COALESCE(SUM(c.approved_amount), 0) as total_approved
		FROM POLICIES p
		LEFT JOIN CLAIMS c ON p.policy_id = c.policy_id
		GROUP BY p.policy_id, p.policy_name
		ORDER BY COUNT(c.claim_id) DESC`).Scan(&summary.ByPolicy).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get per-policy financial summary: %v", err)
	}

	return &summary, nil
}

// TableCounts returns the row count of every claims table.
func (s *Store) TableCounts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(Tables))
	for _, table := range Tables {
		var count int64
		if err := s.db.WithContext(ctx).Table(table).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to count rows in %s: %v", table, err)
		}
		counts[table] = count
	}
	return counts, nil
}

// Ping checks database reachability.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %v", err)
	}
	return sqlDB.PingContext(ctx)
}
