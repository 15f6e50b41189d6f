package vector

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmbedder struct {
	calls      int
	batchSizes []int
}

func (e *fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	e.calls++
	e.batchSizes = append(e.batchSizes, len(texts))
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{float32(len(texts[i])), 1}
	}
	return out, nil
}

type memStore struct {
	docs map[string]Document
}

func newMemStore() *memStore {
	return &memStore{docs: map[string]Document{}}
}

func (s *memStore) Add(_ context.Context, docs []Document) error {
	for _, doc := range docs {
		s.docs[doc.ID] = doc
	}
	return nil
}

func (s *memStore) DeleteByFilter(_ context.Context, cond Condition) error {
	for id, doc := range s.docs {
		if cond.Matches(doc.Metadata) {
			delete(s.docs, id)
		}
	}
	return nil
}

func (s *memStore) SearchByVector(_ context.Context, _ []float32, k int, filter *Filter) ([]SearchResult, error) {
	var out []SearchResult
	for _, doc := range s.docs {
		if filter.Matches(doc.Metadata) {
			out = append(out, SearchResult{Document: doc, Score: 1})
		}
		if len(out) == k {
			break
		}
	}
	return out, nil
}

func (s *memStore) GetEmbeddings(_ context.Context, keys []Key) (map[Key][]float32, error) {
	out := map[Key][]float32{}
	for _, key := range keys {
		if doc, ok := s.docs[DocumentID(key.UserID, key.PaperID)]; ok {
			out[key] = doc.Embedding
		}
	}
	return out, nil
}

func (s *memStore) BatchExists(_ context.Context, userID string, paperIDs []string) (map[string]bool, error) {
	out := map[string]bool{}
	for _, pid := range paperIDs {
		_, ok := s.docs[DocumentID(userID, pid)]
		out[pid] = ok
	}
	return out, nil
}

func TestIndexer_ChunksBatches(t *testing.T) {
	embedder := &fakeEmbedder{}
	store := newMemStore()
	ix := NewIndexer(embedder, store, 100)

	items := make([]Item, 250)
	for i := range items {
		items[i] = Item{
			Text: fmt.Sprintf("summary %d", i),
			Metadata: map[string]string{
				MetaUserID:  "u1",
				MetaPaperID: fmt.Sprintf("p%d", i),
			},
		}
	}
	require.NoError(t, ix.Index(context.Background(), items))

	assert.Equal(t, 3, embedder.calls)
	assert.Equal(t, []int{100, 100, 50}, embedder.batchSizes)
	assert.Len(t, store.docs, 250)
	assert.Contains(t, store.docs, "user_u1_paper_p0")
}

func TestIndexer_UpsertsSamePair(t *testing.T) {
	embedder := &fakeEmbedder{}
	store := newMemStore()
	ix := NewIndexer(embedder, store, 100)

	meta := map[string]string{MetaUserID: "u1", MetaPaperID: "p1"}
	require.NoError(t, ix.Index(context.Background(), []Item{{Text: "first", Metadata: meta}}))
	require.NoError(t, ix.Index(context.Background(), []Item{{Text: "second", Metadata: meta}}))

	require.Len(t, store.docs, 1)
	assert.Equal(t, "second", store.docs["user_u1_paper_p1"].Content)
}

func TestIndexer_RejectsMissingKeys(t *testing.T) {
	ix := NewIndexer(&fakeEmbedder{}, newMemStore(), 100)

	err := ix.Index(context.Background(), []Item{{Text: "x", Metadata: map[string]string{MetaUserID: "u1"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "paper_id")
}
