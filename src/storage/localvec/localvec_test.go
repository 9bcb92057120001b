package localvec_test

import (
	"context"
	"testing"

	"claimsight/src/core/claimdocs"
	"claimsight/src/fsutil"
	"claimsight/src/storage/localvec"
)

func newTestIndex(t *testing.T) *localvec.Index {
	t.Helper()

	index := localvec.New(fsutil.NewLocalFileStore(), t.TempDir())
	if err := index.EnsureReady(context.Background()); err != nil {
		t.Fatalf("EnsureReady() error = %v", err)
	}
	return index
}

func testVectors() []claimdocs.ClauseVector {
	return []claimdocs.ClauseVector{
		{ClauseID: "c1", DocumentID: "doc-a", Content: "knee surgery coverage", Position: 0, Vector: []float32{1, 0, 0}},
		{ClauseID: "c2", DocumentID: "doc-a", Content: "waiting period", Position: 1, Vector: []float32{0, 1, 0}},
		{ClauseID: "c3", DocumentID: "doc-b", Content: "exclusions", Position: 0, Vector: []float32{0.9, 0.1, 0}},
	}
}

func TestQueryRanksByCosineSimilarity(t *testing.T) {
	ctx := context.Background()
	index := newTestIndex(t)

	if err := index.Add(ctx, testVectors()); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	matches, err := index.Query(ctx, []float32{1, 0, 0}, 2)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}

	if len(matches) != 2 {
		t.Fatalf("Query() returned %d matches, want 2", len(matches))
	}
	if matches[0].ClauseID != "c1" {
		t.Errorf("top match = %s, want c1", matches[0].ClauseID)
	}
	if matches[1].ClauseID != "c3" {
		t.Errorf("second match = %s, want c3", matches[1].ClauseID)
	}
	if matches[0].Score < matches[1].Score {
		t.Errorf("scores not descending: %f < %f", matches[0].Score, matches[1].Score)
	}
}

func TestQueryLimitLargerThanIndex(t *testing.T) {
	ctx := context.Background()
	index := newTestIndex(t)

	if err := index.Add(ctx, testVectors()); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	matches, err := index.Query(ctx, []float32{0, 1, 0}, 10)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(matches) != 3 {
		t.Errorf("Query() returned %d matches, want 3", len(matches))
	}
}

func TestRemoveDocument(t *testing.T) {
	ctx := context.Background()
	index := newTestIndex(t)

	if err := index.Add(ctx, testVectors()); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := index.RemoveDocument(ctx, "doc-a"); err != nil {
		t.Fatalf("RemoveDocument() error = %v", err)
	}

	if got := index.Len(); got != 1 {
		t.Fatalf("Len() = %d after removal, want 1", got)
	}

	matches, err := index.Query(ctx, []float32{1, 0, 0}, 5)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	for _, m := range matches {
		if m.DocumentID == "doc-a" {
			t.Errorf("match %s still references removed document", m.ClauseID)
		}
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	ctx := context.Background()
	fs := fsutil.NewLocalFileStore()
	dir := t.TempDir()

	first := localvec.New(fs, dir)
	if err := first.EnsureReady(ctx); err != nil {
		t.Fatalf("EnsureReady() error = %v", err)
	}
	if err := first.Add(ctx, testVectors()); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	second := localvec.New(fs, dir)
	if err := second.EnsureReady(ctx); err != nil {
		t.Fatalf("EnsureReady() after reopen error = %v", err)
	}
	if got := second.Len(); got != 3 {
		t.Fatalf("Len() = %d after reopen, want 3", got)
	}

	matches, err := second.Query(ctx, []float32{1, 0, 0}, 1)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(matches) != 1 || matches[0].ClauseID != "c1" {
		t.Errorf("unexpected matches after reopen: %+v", matches)
	}
}

func TestQueryHybridFallsBackToVectorSearch(t *testing.T) {
	ctx := context.Background()
	index := newTestIndex(t)

	if err := index.Add(ctx, testVectors()); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	matches, err := index.QueryHybrid(ctx, "knee surgery", []float32{1, 0, 0}, 1)
	if err != nil {
		t.Fatalf("QueryHybrid() error = %v", err)
	}
	if len(matches) != 1 || matches[0].ClauseID != "c1" {
		t.Errorf("unexpected hybrid matches: %+v", matches)
	}
}
