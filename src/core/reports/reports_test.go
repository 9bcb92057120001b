package reports_test

import (
	"strings"
	"testing"

	"claimsight/src/core/reports"
	"claimsight/src/storage/sqlite/claimsdb"
)

func TestEncodeCSV(t *testing.T) {
	result := &claimsdb.ResultSet{
		Columns: []string{"claim_id", "status", "claim_amount"},
		Rows: [][]any{
			{"CLM_001", "APPROVED", 45000.0},
			{"CLM_002", "REJECTED", nil},
		},
	}

	data, err := reports.EncodeCSV(result)
	if err != nil {
		t.Fatalf("EncodeCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("CSV has %d lines, want 3", len(lines))
	}
	if lines[0] != "claim_id,status,claim_amount" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "CLM_001,APPROVED,45000" {
		t.Errorf("first row = %q", lines[1])
	}
	if lines[2] != "CLM_002,REJECTED," {
		t.Errorf("second row = %q, want empty cell for NULL", lines[2])
	}
}

func TestEncodeCSVQuotesCommas(t *testing.T) {
	result := &claimsdb.ResultSet{
		Columns: []string{"description"},
		Rows:    [][]any{{"Knee surgery, left leg"}},
	}

	data, err := reports.EncodeCSV(result)
	if err != nil {
		t.Fatalf("EncodeCSV() error = %v", err)
	}

	if !strings.Contains(string(data), "\"Knee surgery, left leg\"") {
		t.Errorf("comma value not quoted: %q", string(data))
	}
}

func TestEncodeCSVEmptyResult(t *testing.T) {
	result := &claimsdb.ResultSet{Columns: []string{"count"}}

	data, err := reports.EncodeCSV(result)
	if err != nil {
		t.Fatalf("EncodeCSV() error = %v", err)
	}
	if strings.TrimSpace(string(data)) != "count" {
		t.Errorf("empty result CSV = %q, want header only", string(data))
	}
}
