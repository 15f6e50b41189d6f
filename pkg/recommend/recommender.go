// Package recommend scores a user's untagged papers against the
// centroids of their Favourite and NotInterested papers and marks the
// best candidates as Recommended.
package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/rainzero1960/paperscout/pkg/vector"
)

// windowSize bounds how many newest tagged papers feed each centroid.
// The source treats this as a tunable.
const windowSize = 10

// maxRecommended is the target count of Recommended papers per user.
const maxRecommended = 5

// Candidate is one of the user's paper links eligible for
// recommendation (no level tags yet).
type Candidate struct {
	LinkID  string
	PaperID string
}

// Scored is a candidate with its centroid score.
type Scored struct {
	Candidate
	Score float64
}

// Input is everything the recommender needs for one user, gathered by
// the service layer from the link table.
type Input struct {
	UserID string
	// FavouritePaperIDs and NotInterestedPaperIDs are each the newest
	// tagged papers, newest first, already capped to the window.
	FavouritePaperIDs     []string
	NotInterestedPaperIDs []string
	Candidates            []Candidate
	// ExistingRecommended is how many papers already carry Recommended.
	ExistingRecommended int
}

// Window caps a newest-first id list to the centroid window.
func Window(ids []string) []string {
	if len(ids) > windowSize {
		return ids[:windowSize]
	}
	return ids
}

// Recommend scores the candidates and returns the top picks in
// descending score order. The caller tags them and persists.
func Recommend(ctx context.Context, store vector.Store, in Input) ([]Scored, error) {
	want := maxRecommended - in.ExistingRecommended
	if want <= 0 || len(in.Candidates) == 0 || len(in.FavouritePaperIDs) == 0 {
		return nil, nil
	}

	favVecs, err := fetchVectors(ctx, store, in.UserID, Window(in.FavouritePaperIDs))
	if err != nil {
		return nil, fmt.Errorf("fetch favourite vectors: %w", err)
	}
	if len(favVecs) == 0 {
		return nil, nil
	}
	muF := centroid(favVecs)

	var muD []float32
	if len(in.NotInterestedPaperIDs) > 0 {
		notVecs, err := fetchVectors(ctx, store, in.UserID, Window(in.NotInterestedPaperIDs))
		if err != nil {
			return nil, fmt.Errorf("fetch not-interested vectors: %w", err)
		}
		if len(notVecs) > 0 {
			muD = centroid(notVecs)
		}
	}

	keys := make([]vector.Key, len(in.Candidates))
	for i, c := range in.Candidates {
		keys[i] = vector.Key{UserID: in.UserID, PaperID: c.PaperID}
	}
	candVecs, err := store.GetEmbeddings(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("fetch candidate vectors: %w", err)
	}

	var scored []Scored
	for _, c := range in.Candidates {
		v, ok := candVecs[vector.Key{UserID: in.UserID, PaperID: c.PaperID}]
		if !ok {
			continue
		}
		s := cosine(v, muF)
		if muD != nil {
			s -= cosine(v, muD)
		}
		scored = append(scored, Scored{Candidate: c, Score: s})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > want {
		scored = scored[:want]
	}
	return scored, nil
}

func fetchVectors(ctx context.Context, store vector.Store, userID string, paperIDs []string) ([][]float32, error) {
	keys := make([]vector.Key, len(paperIDs))
	for i, pid := range paperIDs {
		keys[i] = vector.Key{UserID: userID, PaperID: pid}
	}
	byKey, err := store.GetEmbeddings(ctx, keys)
	if err != nil {
		return nil, err
	}
	out := make([][]float32, 0, len(byKey))
	for _, key := range keys {
		if v, ok := byKey[key]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

// centroid is the element-wise mean. Vectors of mismatched dimension
// are skipped.
func centroid(vecs [][]float32) []float32 {
	dims := len(vecs[0])
	sum := make([]float64, dims)
	count := 0
	for _, v := range vecs {
		if len(v) != dims {
			continue
		}
		for i, x := range v {
			sum[i] += float64(x)
		}
		count++
	}
	out := make([]float32, dims)
	for i := range sum {
		out[i] = float32(sum[i] / float64(count))
	}
	return out
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
