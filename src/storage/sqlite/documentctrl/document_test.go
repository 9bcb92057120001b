package documentctrl_test

import (
	"context"
	"path/filepath"
	"testing"

	"claimsight/src/storage/sqlite/claimsdb"
	"claimsight/src/storage/sqlite/documentctrl"
)

func newTestService(t *testing.T) *documentctrl.DocumentService {
	t.Helper()

	db, err := claimsdb.Open(filepath.Join(t.TempDir(), "documents.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(&documentctrl.PolicyDocument{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	svc, err := documentctrl.NewDocumentService(db)
	if err != nil {
		t.Fatalf("create service: %v", err)
	}
	return svc
}

func TestDeleteByDocumentIDRemovesRecord(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "doc-1", "policy.pdf", "application/pdf", "policy-documents/doc-1.pdf"); err != nil {
		t.Fatalf("create record: %v", err)
	}

	if err := svc.DeleteByDocumentID(ctx, "doc-1"); err != nil {
		t.Fatalf("delete record: %v", err)
	}

	record, err := svc.GetByDocumentID(ctx, "doc-1")
	if err != nil {
		t.Fatalf("get record: %v", err)
	}
	if record != nil {
		t.Errorf("record still present after delete: %+v", record)
	}
}

func TestDeleteByDocumentIDLeavesOtherRecords(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "doc-1", "policy.pdf", "application/pdf", "policy-documents/doc-1.pdf"); err != nil {
		t.Fatalf("create record: %v", err)
	}
	if _, err := svc.Create(ctx, "doc-2", "other.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "policy-documents/doc-2.docx"); err != nil {
		t.Fatalf("create record: %v", err)
	}

	if err := svc.DeleteByDocumentID(ctx, "doc-1"); err != nil {
		t.Fatalf("delete record: %v", err)
	}

	kept, err := svc.GetByDocumentID(ctx, "doc-2")
	if err != nil {
		t.Fatalf("get record: %v", err)
	}
	if kept == nil || kept.DocumentID != "doc-2" {
		t.Errorf("unrelated record missing after delete: %+v", kept)
	}
}

func TestDeleteByDocumentIDMissingRecordIsNoop(t *testing.T) {
	svc := newTestService(t)

	if err := svc.DeleteByDocumentID(context.Background(), "doc-missing"); err != nil {
		t.Errorf("delete of missing record returned error: %v", err)
	}
}
