package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rainzero1960/paperscout/ent"
	"github.com/rainzero1960/paperscout/pkg/tagging"
	"github.com/rainzero1960/paperscout/pkg/vector"
	testdb "github.com/rainzero1960/paperscout/test/database"
)

func addVector(t *testing.T, store *fakeVectorStore, userID, paperID string, v []float32) {
	t.Helper()
	require.NoError(t, store.Add(context.Background(), []vector.Document{{
		ID:        vector.DocumentID(userID, paperID),
		Embedding: v,
		Metadata: map[string]string{
			vector.MetaUserID:  userID,
			vector.MetaPaperID: paperID,
		},
	}}))
}

func ingestWithTags(t *testing.T, papers *PaperService, userID, url, tags string) *ent.PaperMetadata {
	t.Helper()
	ctx := context.Background()
	_, meta, err := papers.Ingest(ctx, userID, url)
	require.NoError(t, err)
	if tags != "" {
		_, err = papers.UpdateTags(ctx, userID, meta.ID, tags)
		require.NoError(t, err)
	}
	return meta
}

func TestRecommendService_PicksNearFavourites(t *testing.T) {
	client := testdb.NewTestClient(t)
	arxiv, _ := fakeArxiv(t)
	store := newFakeVectorStore()
	papers := NewPaperService(client.Client, arxiv, store)
	svc := NewRecommendService(client.Client, papers, store)
	user := seedUser(t, client.Client)
	ctx := context.Background()

	fav := ingestWithTags(t, papers, user.ID, "2406.00001", tagging.TagFavourite+",transformer")
	not := ingestWithTags(t, papers, user.ID, "2406.00002", tagging.TagNotInterested)
	near := ingestWithTags(t, papers, user.ID, "2406.00003", "")
	far := ingestWithTags(t, papers, user.ID, "2406.00004", "")

	addVector(t, store, user.ID, fav.ID, []float32{1, 0, 0})
	addVector(t, store, user.ID, not.ID, []float32{0, 1, 0})
	addVector(t, store, user.ID, near.ID, []float32{0.9, 0.1, 0})
	addVector(t, store, user.ID, far.ID, []float32{0.1, 0.9, 0})

	picks, err := svc.Recommend(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, picks, 2)

	// Both untagged papers fit under the cap; the closer one ranks first.
	nearLink, err := papers.GetLink(ctx, user.ID, near.ID)
	require.NoError(t, err)
	assert.Equal(t, nearLink.ID, picks[0])
	assert.Contains(t, tagging.ParseTagList(nearLink.Tags), tagging.TagRecommended)

	farLink, err := papers.GetLink(ctx, user.ID, far.ID)
	require.NoError(t, err)
	assert.Contains(t, tagging.ParseTagList(farLink.Tags), tagging.TagRecommended)
}

func TestRecommendService_NoFavouritesNoPicks(t *testing.T) {
	client := testdb.NewTestClient(t)
	arxiv, _ := fakeArxiv(t)
	store := newFakeVectorStore()
	papers := NewPaperService(client.Client, arxiv, store)
	svc := NewRecommendService(client.Client, papers, store)
	user := seedUser(t, client.Client)
	ctx := context.Background()

	meta := ingestWithTags(t, papers, user.ID, "2406.00010", "")
	addVector(t, store, user.ID, meta.ID, []float32{1, 0, 0})

	picks, err := svc.Recommend(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, picks)
}

func TestRecommendService_ExistingRecommendedCountAgainstCap(t *testing.T) {
	client := testdb.NewTestClient(t)
	arxiv, _ := fakeArxiv(t)
	store := newFakeVectorStore()
	papers := NewPaperService(client.Client, arxiv, store)
	svc := NewRecommendService(client.Client, papers, store)
	user := seedUser(t, client.Client)
	ctx := context.Background()

	fav := ingestWithTags(t, papers, user.ID, "2406.00020", tagging.TagFavourite)
	addVector(t, store, user.ID, fav.ID, []float32{1, 0, 0})

	// Five already-recommended papers exhaust the cap.
	for i := 0; i < 5; i++ {
		url := "2406.1000" + string(rune('0'+i))
		ingestWithTags(t, papers, user.ID, url, tagging.TagRecommended)
	}

	cand := ingestWithTags(t, papers, user.ID, "2406.00021", "")
	addVector(t, store, user.ID, cand.ID, []float32{1, 0, 0})

	picks, err := svc.Recommend(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, picks)

	link, err := papers.GetLink(ctx, user.ID, cand.ID)
	require.NoError(t, err)
	assert.NotContains(t, tagging.ParseTagList(link.Tags), tagging.TagRecommended)
}
