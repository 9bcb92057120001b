// Package localvec is an on-disk vector index for policy clauses. It keeps
// every vector in memory, scores queries by cosine similarity and persists
// the whole index as a gob file. Suitable for single-node deployments where
// running Weaviate is not worth the overhead.
package localvec

import (
	"context"
	"encoding/gob"
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"sync"

	"claimsight/src/core/claimdocs"
	"claimsight/src/fsutil"
)

const indexFileName = "clauses.gob"

type entry struct {
	ClauseID   string
	DocumentID string
	Content    string
	Position   int
	Vector     []float32
}

// Index implements claimdocs.ClauseIndex with a brute-force cosine scan.
type Index struct {
	mu      sync.RWMutex
	entries []entry
	fs      fsutil.FileStore
	dir     string
	loaded  bool
}

func New(fs fsutil.FileStore, dir string) *Index {
	return &Index{
		fs:  fs,
		dir: dir,
	}
}

func (i *Index) path() string {
	return filepath.Join(i.dir, indexFileName)
}

// EnsureReady creates the index directory and loads any persisted entries.
func (i *Index) EnsureReady(ctx context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.loaded {
		return nil
	}

	if err := i.fs.MakeDirectory(i.dir); err != nil {
		return fmt.Errorf("failed to create index directory: %v", err)
	}

	exists, err := i.fs.Exists(i.path())
	if err != nil {
		return fmt.Errorf("failed to check index file: %v", err)
	}
	if exists {
		reader, err := i.fs.ReadFileAsStream(i.path())
		if err != nil {
			return fmt.Errorf("failed to open index file: %v", err)
		}
		defer reader.Close()

		var entries []entry
		if err := gob.NewDecoder(reader).Decode(&entries); err != nil {
			return fmt.Errorf("failed to decode index file: %v", err)
		}
		i.entries = entries
	}

	i.loaded = true
	return nil
}

// Add appends vectors to the index and persists it. Vectors are normalized
// on insert so queries reduce to a dot product.
func (i *Index) Add(ctx context.Context, vectors []claimdocs.ClauseVector) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	for _, v := range vectors {
		i.entries = append(i.entries, entry{
			ClauseID:   v.ClauseID,
			DocumentID: v.DocumentID,
			Content:    v.Content,
			Position:   v.Position,
			Vector:     normalize(v.Vector),
		})
	}

	return i.persist()
}

// Query returns the limit entries with highest cosine similarity.
func (i *Index) Query(ctx context.Context, vector []float32, limit int) ([]claimdocs.ClauseMatch, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	query := normalize(vector)

	matches := make([]claimdocs.ClauseMatch, 0, len(i.entries))
	for _, e := range i.entries {
		matches = append(matches, claimdocs.ClauseMatch{
			ClauseID:   e.ClauseID,
			DocumentID: e.DocumentID,
			Content:    e.Content,
			Position:   e.Position,
			Score:      dot(query, e.Vector),
		})
	}

	sort.Slice(matches, func(a, b int) bool {
		return matches[a].Score > matches[b].Score
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// QueryHybrid has no keyword index to combine with, so it falls back to
// plain vector search.
func (i *Index) QueryHybrid(ctx context.Context, query string, vector []float32, limit int) ([]claimdocs.ClauseMatch, error) {
	return i.Query(ctx, vector, limit)
}

// RemoveDocument drops all entries of one document and persists the index.
func (i *Index) RemoveDocument(ctx context.Context, documentID string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	kept := i.entries[:0]
	for _, e := range i.entries {
		if e.DocumentID != documentID {
			kept = append(kept, e)
		}
	}
	i.entries = kept

	return i.persist()
}

// Ping verifies the index directory is writable.
func (i *Index) Ping(ctx context.Context) error {
	if err := i.fs.MakeDirectory(i.dir); err != nil {
		return fmt.Errorf("index directory unavailable: %v", err)
	}
	return nil
}

// Len reports the number of indexed clauses.
func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.entries)
}

func (i *Index) persist() error {
	writer, err := i.fs.CreateFile(i.path())
	if err != nil {
		return fmt.Errorf("failed to create index file: %v", err)
	}

	if err := gob.NewEncoder(writer).Encode(i.entries); err != nil {
		writer.Close()
		return fmt.Errorf("failed to encode index: %v", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close index file: %v", err)
	}
	return nil
}

func normalize(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return v
	}

	norm := math.Sqrt(sum)
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}

func dot(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
