package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rainzero1960/paperscout/ent"
	entprompt "github.com/rainzero1960/paperscout/ent/prompt"
	"github.com/rainzero1960/paperscout/pkg/summary"
	testdb "github.com/rainzero1960/paperscout/test/database"
)

func seedUser(t *testing.T, client *ent.Client) *ent.User {
	t.Helper()
	u, err := client.User.Create().
		SetID(uuid.New().String()).
		SetUsername("user-" + uuid.New().String()[:8]).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func seedPaper(t *testing.T, client *ent.Client) *ent.PaperMetadata {
	t.Helper()
	externalID := "2401." + uuid.New().String()[:8]
	p, err := client.PaperMetadata.Create().
		SetID(uuid.New().String()).
		SetExternalID(externalID).
		SetURL("https://arxiv.org/abs/" + externalID).
		SetTitle("Attention Is All You Need").
		SetAuthors("Vaswani et al.").
		SetAbstract("We propose the Transformer.").
		Save(context.Background())
	require.NoError(t, err)
	return p
}

func seedPrompt(t *testing.T, client *ent.Client, ownerID string) *ent.Prompt {
	t.Helper()
	p, err := client.Prompt.Create().
		SetID(uuid.New().String()).
		SetType(entprompt.TypePaperSummary).
		SetName("詳細要約").
		SetBody("詳細に要約してください。").
		SetOwnerUserID(ownerID).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

func defaultKey(paperID string) summary.Key {
	return summary.Key{
		Kind:     summary.KindDefault,
		PaperID:  paperID,
		Provider: "gemini",
		Model:    "gemini-2.0-flash",
	}
}

func TestSummaryRepo_GetNotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	repo := NewSummaryRepo(client.Client)
	paper := seedPaper(t, client.Client)

	_, err := repo.Get(context.Background(), defaultKey(paper.ID))
	assert.ErrorIs(t, err, summary.ErrNotFound)
}

func TestSummaryRepo_InsertPlaceholder_Conflict(t *testing.T) {
	client := testdb.NewTestClient(t)
	repo := NewSummaryRepo(client.Client)
	paper := seedPaper(t, client.Client)
	key := defaultKey(paper.ID)
	ctx := context.Background()

	rec, err := repo.InsertPlaceholder(ctx, key, 1)
	require.NoError(t, err)
	n, ready := rec.Epoch()
	assert.Equal(t, 1, n)
	assert.False(t, ready)

	// The unique index arbitrates: the second insert loses.
	_, err = repo.InsertPlaceholder(ctx, key, 1)
	assert.ErrorIs(t, err, summary.ErrAlreadyExists)

	// A different character is a different key and inserts freely.
	sakura := key
	sakura.Character = "sakura"
	sakura.Affinity = 2
	_, err = repo.InsertPlaceholder(ctx, sakura, 1)
	assert.NoError(t, err)
}

func TestSummaryRepo_EscalateOnlyCurrentEpoch(t *testing.T) {
	client := testdb.NewTestClient(t)
	repo := NewSummaryRepo(client.Client)
	paper := seedPaper(t, client.Client)
	key := defaultKey(paper.ID)
	ctx := context.Background()

	_, err := repo.InsertPlaceholder(ctx, key, 1)
	require.NoError(t, err)

	bumped, err := repo.Escalate(ctx, key, 1)
	require.NoError(t, err)
	assert.True(t, bumped)

	// The losing escalator's conditional write matches nothing.
	bumped, err = repo.Escalate(ctx, key, 1)
	require.NoError(t, err)
	assert.False(t, bumped)

	rec, err := repo.Get(ctx, key)
	require.NoError(t, err)
	n, ready := rec.Epoch()
	assert.Equal(t, 2, n)
	assert.False(t, ready)
}

func TestSummaryRepo_FinalizeStaleEpochLoses(t *testing.T) {
	client := testdb.NewTestClient(t)
	repo := NewSummaryRepo(client.Client)
	paper := seedPaper(t, client.Client)
	key := defaultKey(paper.ID)
	ctx := context.Background()

	_, err := repo.InsertPlaceholder(ctx, key, 1)
	require.NoError(t, err)
	bumped, err := repo.Escalate(ctx, key, 1)
	require.NoError(t, err)
	require.True(t, bumped)

	final := summary.Final{
		Body:     "## 一言でいうと\n自己注意のみで系列変換を行う。",
		OnePoint: "自己注意のみで系列変換を行う。",
		Provider: key.Provider,
		Model:    key.Model,
	}

	// The stale owner of epoch 1 must not overwrite epoch 2.
	_, current, err := repo.Finalize(ctx, key, 1, final)
	require.NoError(t, err)
	assert.False(t, current)

	rec, current, err := repo.Finalize(ctx, key, 2, final)
	require.NoError(t, err)
	assert.True(t, current)
	assert.Equal(t, final.Body, rec.Body)
	assert.Equal(t, final.OnePoint, rec.OnePoint)
	_, ready := rec.Epoch()
	assert.True(t, ready)
}

func TestSummaryRepo_ReclaimOnlyReadyRows(t *testing.T) {
	client := testdb.NewTestClient(t)
	repo := NewSummaryRepo(client.Client)
	paper := seedPaper(t, client.Client)
	key := defaultKey(paper.ID)
	ctx := context.Background()

	_, err := repo.InsertPlaceholder(ctx, key, 1)
	require.NoError(t, err)

	// A processing row cannot be reclaimed.
	claimed, err := repo.Reclaim(ctx, key)
	require.NoError(t, err)
	assert.False(t, claimed)

	_, current, err := repo.Finalize(ctx, key, 1, summary.Final{
		Body: "完成した要約", Provider: key.Provider, Model: key.Model,
	})
	require.NoError(t, err)
	require.True(t, current)

	claimed, err = repo.Reclaim(ctx, key)
	require.NoError(t, err)
	assert.True(t, claimed)

	rec, err := repo.Get(ctx, key)
	require.NoError(t, err)
	n, ready := rec.Epoch()
	assert.Equal(t, 1, n)
	assert.False(t, ready)
	assert.Empty(t, rec.OnePoint)
}

func TestSummaryRepo_DeletePlaceholderEpochGuard(t *testing.T) {
	client := testdb.NewTestClient(t)
	repo := NewSummaryRepo(client.Client)
	paper := seedPaper(t, client.Client)
	key := defaultKey(paper.ID)
	ctx := context.Background()

	_, err := repo.InsertPlaceholder(ctx, key, 3)
	require.NoError(t, err)

	// The wrong epoch leaves the row alone.
	require.NoError(t, repo.DeletePlaceholder(ctx, key, 2))
	_, err = repo.Get(ctx, key)
	require.NoError(t, err)

	require.NoError(t, repo.DeletePlaceholder(ctx, key, 3))
	_, err = repo.Get(ctx, key)
	assert.ErrorIs(t, err, summary.ErrNotFound)
}

func TestSummaryRepo_OverwriteRequiresRow(t *testing.T) {
	client := testdb.NewTestClient(t)
	repo := NewSummaryRepo(client.Client)
	paper := seedPaper(t, client.Client)
	key := defaultKey(paper.ID)
	ctx := context.Background()

	_, err := repo.Overwrite(ctx, key, summary.Final{Body: "x"})
	assert.ErrorIs(t, err, summary.ErrNotFound)

	_, err = repo.InsertPlaceholder(ctx, key, 1)
	require.NoError(t, err)
	rec, err := repo.Overwrite(ctx, key, summary.Final{Body: "上書きされた要約", OnePoint: "ひとこと"})
	require.NoError(t, err)
	assert.Equal(t, "上書きされた要約", rec.Body)
	assert.Equal(t, "ひとこと", rec.OnePoint)
}

func TestSummaryRepo_CustomKindFullCycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	repo := NewSummaryRepo(client.Client)
	ctx := context.Background()

	user := seedUser(t, client.Client)
	paper := seedPaper(t, client.Client)
	promptRow := seedPrompt(t, client.Client, user.ID)

	key := summary.Key{
		Kind:      summary.KindCustom,
		UserID:    user.ID,
		PaperID:   paper.ID,
		PromptID:  promptRow.ID,
		Provider:  "gemini",
		Model:     "gemini-2.0-flash",
		Character: "miyabi",
		Affinity:  1,
	}

	rec, err := repo.InsertPlaceholder(ctx, key, 1)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rec.Body, "[PROCESSING_1]"))

	_, err = repo.InsertPlaceholder(ctx, key, 1)
	assert.ErrorIs(t, err, summary.ErrAlreadyExists)

	// Another user with the same tuple is a different key.
	other := seedUser(t, client.Client)
	otherKey := key
	otherKey.UserID = other.ID
	_, err = repo.InsertPlaceholder(ctx, otherKey, 1)
	assert.NoError(t, err)

	final := summary.Final{Body: "カスタム要約本文", OnePoint: "要点", Provider: key.Provider, Model: key.Model}
	got, current, err := repo.Finalize(ctx, key, 1, final)
	require.NoError(t, err)
	require.True(t, current)
	assert.Equal(t, final.Body, got.Body)

	fetched, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, got.ID, fetched.ID)
}
