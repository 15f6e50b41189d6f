// Package vector stores one embedding per (user, paper) pair, keyed by
// the currently preferred summary text, and serves similarity search
// for the RAG tools and raw vectors for the recommender.
package vector

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rainzero1960/paperscout/pkg/config"
	"github.com/rainzero1960/paperscout/pkg/llm"
)

// Metadata keys shared by both backends.
const (
	MetaUserID           = "user_id"
	MetaPaperID          = "paper_id"
	MetaSummaryType      = "summary_type"
	MetaDefaultSummaryID = "default_summary_id"
	MetaCustomSummaryID  = "custom_summary_id"
	MetaProvider         = "llm_provider"
	MetaModel            = "llm_model"
)

// Summary type metadata values.
const (
	SummaryTypeDefault = "default"
	SummaryTypeCustom  = "custom"
)

// DocumentID builds the canonical vector id for a (user, paper) pair.
func DocumentID(userID, paperID string) string {
	return fmt.Sprintf("user_%s_paper_%s", userID, paperID)
}

// Document is one stored vector with its source text and metadata.
// Metadata must carry user_id and paper_id.
type Document struct {
	ID        string
	Content   string
	Embedding []float32
	Metadata  map[string]string
}

// SearchResult is one similarity hit. Score is cosine similarity.
type SearchResult struct {
	Document Document
	Score    float32
}

// Key addresses a vector by its owning pair.
type Key struct {
	UserID  string
	PaperID string
}

// Store is the backend-neutral vector surface. Writes are upserts on
// (user_id, paper_id).
type Store interface {
	// Add upserts documents. Embeddings must be populated; writes are
	// chunked internally.
	Add(ctx context.Context, docs []Document) error

	// DeleteByFilter removes every vector whose metadata matches the
	// conjunction.
	DeleteByFilter(ctx context.Context, cond Condition) error

	// SearchByVector returns the k nearest documents, optionally
	// restricted by filter.
	SearchByVector(ctx context.Context, queryEmbedding []float32, k int, filter *Filter) ([]SearchResult, error)

	// GetEmbeddings fetches raw vectors for the given pairs. Missing
	// pairs are absent from the result.
	GetEmbeddings(ctx context.Context, keys []Key) (map[Key][]float32, error)

	// BatchExists reports vector presence for every paper id in one
	// round trip.
	BatchExists(ctx context.Context, userID string, paperIDs []string) (map[string]bool, error)
}

// NewStore builds the configured backend. db is only required for the
// pgvector backend.
func NewStore(cfg *config.VectorConfig, db *sql.DB) (Store, error) {
	switch cfg.Backend {
	case config.VectorBackendChromem:
		return NewChromemStore(cfg)
	case config.VectorBackendPgvector:
		if db == nil {
			return nil, fmt.Errorf("pgvector backend requires a database handle")
		}
		return NewPgvectorStore(db, cfg.BatchSize), nil
	default:
		return nil, fmt.Errorf("unknown vector backend %q", cfg.Backend)
	}
}

// Indexer pairs an embedder with a store so callers can index and query
// by text.
type Indexer struct {
	embedder  llm.Embedder
	store     Store
	batchSize int
}

// NewIndexer creates an indexer. batchSize <= 0 falls back to 100.
func NewIndexer(embedder llm.Embedder, store Store, batchSize int) *Indexer {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Indexer{embedder: embedder, store: store, batchSize: batchSize}
}

// Item is one text to index with its metadata. The id derives from
// user_id and paper_id in the metadata.
type Item struct {
	Text     string
	Metadata map[string]string
}

// Index embeds and upserts the items in chunks.
func (ix *Indexer) Index(ctx context.Context, items []Item) error {
	for _, batch := range chunk(items, ix.batchSize) {
		texts := make([]string, len(batch))
		for i, item := range batch {
			texts[i] = item.Text
		}
		embeddings, err := ix.embedder.Embed(ctx, texts)
		if err != nil {
			return fmt.Errorf("embed batch: %w", err)
		}

		docs := make([]Document, len(batch))
		for i, item := range batch {
			userID := item.Metadata[MetaUserID]
			paperID := item.Metadata[MetaPaperID]
			if userID == "" || paperID == "" {
				return fmt.Errorf("item %d missing user_id/paper_id metadata", i)
			}
			docs[i] = Document{
				ID:        DocumentID(userID, paperID),
				Content:   item.Text,
				Embedding: embeddings[i],
				Metadata:  item.Metadata,
			}
		}
		if err := ix.store.Add(ctx, docs); err != nil {
			return fmt.Errorf("store batch: %w", err)
		}
	}
	return nil
}

// Query embeds the text and searches the store.
func (ix *Indexer) Query(ctx context.Context, text string, k int, filter *Filter) ([]SearchResult, error) {
	embeddings, err := ix.embedder.Embed(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	return ix.store.SearchByVector(ctx, embeddings[0], k, filter)
}

// Store exposes the underlying store for callers that need raw access.
func (ix *Indexer) Store() Store {
	return ix.store
}

// chunk splits items into size-bounded batches.
func chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = 100
	}
	var out [][]T
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		out = append(out, items[start:end])
	}
	return out
}
