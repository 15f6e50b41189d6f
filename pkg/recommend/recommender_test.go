package recommend

import (
	"context"
	"testing"

	"github.com/rainzero1960/paperscout/pkg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vecStore serves canned embeddings keyed by paper id.
type vecStore struct {
	vecs map[string][]float32
}

func (s *vecStore) Add(context.Context, []vector.Document) error               { return nil }
func (s *vecStore) DeleteByFilter(context.Context, vector.Condition) error     { return nil }
func (s *vecStore) SearchByVector(context.Context, []float32, int, *vector.Filter) ([]vector.SearchResult, error) {
	return nil, nil
}
func (s *vecStore) BatchExists(context.Context, string, []string) (map[string]bool, error) {
	return nil, nil
}

func (s *vecStore) GetEmbeddings(_ context.Context, keys []vector.Key) (map[vector.Key][]float32, error) {
	out := map[vector.Key][]float32{}
	for _, key := range keys {
		if v, ok := s.vecs[key.PaperID]; ok {
			out[key] = v
		}
	}
	return out, nil
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, cosine([]float32{1, 0}, []float32{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, cosine([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, cosine([]float32{1, 0}, []float32{-1, 0}), 1e-9)
	assert.Zero(t, cosine([]float32{1}, []float32{1, 2}))
	assert.Zero(t, cosine([]float32{0, 0}, []float32{1, 0}))
}

func TestCentroid(t *testing.T) {
	mu := centroid([][]float32{{1, 0}, {3, 2}})
	assert.Equal(t, []float32{2, 1}, mu)
}

func TestWindow(t *testing.T) {
	ids := make([]string, 15)
	assert.Len(t, Window(ids), 10)
	assert.Len(t, Window(ids[:3]), 3)
}

func TestRecommend_ScoresAndOrders(t *testing.T) {
	// Favourites point along +x, not-interested along +y. Candidates
	// nearer +x and farther from +y must score higher.
	store := &vecStore{vecs: map[string][]float32{
		"f1": {1, 0}, "f2": {1, 0}, "f3": {1, 0},
		"d1": {0, 1},
		"c-best":  {1, 0},
		"c-mid":   {1, 1},
		"c-worst": {0, 1},
	}}

	in := Input{
		UserID:                "u1",
		FavouritePaperIDs:     []string{"f1", "f2", "f3"},
		NotInterestedPaperIDs: []string{"d1"},
		Candidates: []Candidate{
			{LinkID: "l-worst", PaperID: "c-worst"},
			{LinkID: "l-best", PaperID: "c-best"},
			{LinkID: "l-mid", PaperID: "c-mid"},
		},
	}

	got, err := Recommend(context.Background(), store, in)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "l-best", got[0].LinkID)
	assert.Equal(t, "l-mid", got[1].LinkID)
	assert.Equal(t, "l-worst", got[2].LinkID)
	assert.Greater(t, got[0].Score, got[1].Score)
	assert.Greater(t, got[1].Score, got[2].Score)
}

func TestRecommend_CapsAtRemainingSlots(t *testing.T) {
	store := &vecStore{vecs: map[string][]float32{"f1": {1, 0}}}
	candidates := make([]Candidate, 10)
	for i := range candidates {
		pid := string(rune('a' + i))
		candidates[i] = Candidate{LinkID: "l-" + pid, PaperID: pid}
		store.vecs[pid] = []float32{1, float32(i)}
	}

	in := Input{
		UserID:              "u1",
		FavouritePaperIDs:   []string{"f1"},
		Candidates:          candidates,
		ExistingRecommended: 3,
	}

	got, err := Recommend(context.Background(), store, in)
	require.NoError(t, err)
	// 5 - 3 already recommended leaves 2 slots.
	assert.Len(t, got, 2)
}

func TestRecommend_NoFavourites(t *testing.T) {
	store := &vecStore{vecs: map[string][]float32{}}
	got, err := Recommend(context.Background(), store, Input{
		UserID:     "u1",
		Candidates: []Candidate{{LinkID: "l1", PaperID: "p1"}},
	})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRecommend_AlreadyFull(t *testing.T) {
	store := &vecStore{vecs: map[string][]float32{"f1": {1}}}
	got, err := Recommend(context.Background(), store, Input{
		UserID:              "u1",
		FavouritePaperIDs:   []string{"f1"},
		Candidates:          []Candidate{{LinkID: "l1", PaperID: "p1"}},
		ExistingRecommended: 5,
	})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRecommend_MissingVectorsSkipped(t *testing.T) {
	store := &vecStore{vecs: map[string][]float32{
		"f1": {1, 0},
		"p1": {1, 0},
	}}
	got, err := Recommend(context.Background(), store, Input{
		UserID:            "u1",
		FavouritePaperIDs: []string{"f1"},
		Candidates: []Candidate{
			{LinkID: "l1", PaperID: "p1"},
			{LinkID: "l2", PaperID: "p-unindexed"},
		},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "l1", got[0].LinkID)
}
