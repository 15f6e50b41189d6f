package vector

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	chromem "github.com/philippgille/chromem-go"
	"github.com/rainzero1960/paperscout/pkg/config"
)

// ChromemStore is the embedded on-disk backend.
type ChromemStore struct {
	db         *chromem.DB
	collection *chromem.Collection
	batchSize  int
}

// NewChromemStore opens or creates the persistent collection.
func NewChromemStore(cfg *config.VectorConfig) (*ChromemStore, error) {
	var db *chromem.DB
	var err error
	if cfg.PersistPath != "" {
		db, err = chromem.NewPersistentDB(filepath.Join(cfg.PersistPath, "chromem.gob"), false)
		if err != nil {
			return nil, fmt.Errorf("open persistent vector store: %w", err)
		}
	} else {
		db = chromem.NewDB()
	}

	// Embeddings are always precomputed; the collection-level embedding
	// function must never be reached.
	embeddingFunc := func(ctx context.Context, text string) ([]float32, error) {
		return nil, fmt.Errorf("embedding must be precomputed before Add")
	}

	collection, err := db.GetOrCreateCollection(cfg.Collection, nil, embeddingFunc)
	if err != nil {
		return nil, fmt.Errorf("open collection %s: %w", cfg.Collection, err)
	}

	batch := cfg.BatchSize
	if batch <= 0 {
		batch = 100
	}
	return &ChromemStore{db: db, collection: collection, batchSize: batch}, nil
}

// Add implements Store.
func (s *ChromemStore) Add(ctx context.Context, docs []Document) error {
	for _, batch := range chunk(docs, s.batchSize) {
		converted := make([]chromem.Document, len(batch))
		for i, doc := range batch {
			if len(doc.Embedding) == 0 {
				return fmt.Errorf("document %s has no embedding", doc.ID)
			}
			converted[i] = chromem.Document{
				ID:        doc.ID,
				Content:   doc.Content,
				Embedding: doc.Embedding,
				Metadata:  doc.Metadata,
			}
		}
		if err := s.collection.AddDocuments(ctx, converted, 1); err != nil {
			return fmt.Errorf("add documents: %w", err)
		}
	}
	return nil
}

// DeleteByFilter implements Store. Conjunctions map directly onto the
// collection's metadata where-clause.
func (s *ChromemStore) DeleteByFilter(ctx context.Context, cond Condition) error {
	if len(cond) == 0 {
		return fmt.Errorf("refusing to delete with an empty filter")
	}
	if err := s.collection.Delete(ctx, map[string]string(cond), nil); err != nil {
		return fmt.Errorf("delete by filter: %w", err)
	}
	return nil
}

// SearchByVector implements Store. The backend filters on one
// conjunction per query, so a disjunction becomes one query per branch
// with the merged results re-ranked by score.
func (s *ChromemStore) SearchByVector(ctx context.Context, queryEmbedding []float32, k int, filter *Filter) ([]SearchResult, error) {
	conds := []Condition{nil}
	if filter != nil && len(filter.AnyOf) > 0 {
		conds = filter.AnyOf
	}

	seen := make(map[string]bool)
	var merged []SearchResult
	for _, cond := range conds {
		n := k
		if total := s.collection.Count(); n > total {
			n = total
		}
		if n == 0 {
			continue
		}
		results, err := s.collection.QueryEmbedding(ctx, queryEmbedding, n, map[string]string(cond), nil)
		if err != nil {
			return nil, fmt.Errorf("query collection: %w", err)
		}
		for _, r := range results {
			if seen[r.ID] {
				continue
			}
			seen[r.ID] = true
			merged = append(merged, SearchResult{
				Document: Document{
					ID:        r.ID,
					Content:   r.Content,
					Embedding: r.Embedding,
					Metadata:  r.Metadata,
				},
				Score: r.Similarity,
			})
		}
	}

	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Score > merged[j].Score })
	if len(merged) > k {
		merged = merged[:k]
	}
	return merged, nil
}

// GetEmbeddings implements Store.
func (s *ChromemStore) GetEmbeddings(ctx context.Context, keys []Key) (map[Key][]float32, error) {
	out := make(map[Key][]float32, len(keys))
	for _, key := range keys {
		doc, err := s.collection.GetByID(ctx, DocumentID(key.UserID, key.PaperID))
		if err != nil {
			continue
		}
		out[key] = doc.Embedding
	}
	return out, nil
}

// BatchExists implements Store.
func (s *ChromemStore) BatchExists(ctx context.Context, userID string, paperIDs []string) (map[string]bool, error) {
	out := make(map[string]bool, len(paperIDs))
	for _, pid := range paperIDs {
		_, err := s.collection.GetByID(ctx, DocumentID(userID, pid))
		out[pid] = err == nil
	}
	return out, nil
}
