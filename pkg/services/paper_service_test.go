package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rainzero1960/paperscout/ent"
	"github.com/rainzero1960/paperscout/ent/paperchatmessage"
	"github.com/rainzero1960/paperscout/pkg/paper"
	"github.com/rainzero1960/paperscout/pkg/vector"
	testdb "github.com/rainzero1960/paperscout/test/database"
)

// fakeArxiv serves abstract and HTML pages for any modern identifier.
func fakeArxiv(t *testing.T) (*paper.Client, *int) {
	t.Helper()
	fetches := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/abs/"):
			fetches++
			id := strings.TrimPrefix(r.URL.Path, "/abs/")
			fmt.Fprintf(w, `<html><body>
				<h1 class="title">Title: Paper %s</h1>
				<div class="authors"><a>Alice</a>, <a>Bob</a></div>
				<blockquote class="abstract">Abstract: We study %s.</blockquote>
				<div class="dateline">(Submitted on 2 Jan 2024)</div>
			</body></html>`, id, id)
		case strings.HasPrefix(r.URL.Path, "/html/"):
			fmt.Fprint(w, `<html><body><h1>Paper</h1><p>Full body text.</p></body></html>`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return paper.NewClient(5*time.Second, srv.URL), &fetches
}

func newPaperService(t *testing.T, client *ent.Client) (*PaperService, *fakeVectorStore, *int) {
	t.Helper()
	arxiv, fetches := fakeArxiv(t)
	store := newFakeVectorStore()
	return NewPaperService(client, arxiv, store), store, fetches
}

func TestPaperService_IngestSharesMetadata(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc, _, fetches := newPaperService(t, client.Client)
	ctx := context.Background()

	alice := seedUser(t, client.Client)
	bob := seedUser(t, client.Client)

	_, _, err := svc.Ingest(ctx, alice.ID, "not a paper url")
	assert.Error(t, err)

	link, meta, err := svc.Ingest(ctx, alice.ID, "https://arxiv.org/abs/2401.12345v2")
	require.NoError(t, err)
	assert.Equal(t, "2401.12345", meta.ExternalID)
	assert.Equal(t, "Paper 2401.12345", meta.Title)
	assert.Equal(t, alice.ID, link.UserID)

	// The same user again: the link already exists.
	_, _, err = svc.Ingest(ctx, alice.ID, "https://arxiv.org/pdf/2401.12345")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// A second user shares the metadata row without refetching.
	_, meta2, err := svc.Ingest(ctx, bob.ID, "2401.12345")
	require.NoError(t, err)
	assert.Equal(t, meta.ID, meta2.ID)
	assert.Equal(t, 1, *fetches)
}

func TestPaperService_EnsureFullTextCaches(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc, _, _ := newPaperService(t, client.Client)
	ctx := context.Background()

	user := seedUser(t, client.Client)
	_, meta, err := svc.Ingest(ctx, user.ID, "2401.11111")
	require.NoError(t, err)

	text, err := svc.EnsureFullText(ctx, meta.ID)
	require.NoError(t, err)
	assert.Contains(t, text, "Full body text.")

	row, err := svc.GetPaper(ctx, meta.ID)
	require.NoError(t, err)
	require.NotNil(t, row.FullText)
	assert.Contains(t, *row.FullText, "Full body text.")
}

func TestPaperService_LinkUpdatesRequireOwnership(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc, _, _ := newPaperService(t, client.Client)
	ctx := context.Background()

	user := seedUser(t, client.Client)
	other := seedUser(t, client.Client)
	_, meta, err := svc.Ingest(ctx, user.ID, "2402.00001")
	require.NoError(t, err)

	link, err := svc.UpdateTags(ctx, user.ID, meta.ID, "Favourite,transformer")
	require.NoError(t, err)
	assert.Equal(t, "Favourite,transformer", link.Tags)

	_, err = svc.UpdateTags(ctx, other.ID, meta.ID, "x")
	assert.ErrorIs(t, err, ErrNotFound)

	link, err = svc.UpdateMemo(ctx, user.ID, meta.ID, "後で読む")
	require.NoError(t, err)
	assert.Equal(t, "後で読む", link.Memo)
}

func TestPaperService_SetSelection(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc, _, _ := newPaperService(t, client.Client)
	ctx := context.Background()

	user := seedUser(t, client.Client)
	_, meta, err := svc.Ingest(ctx, user.ID, "2402.00002")
	require.NoError(t, err)

	ds, err := client.Client.DefaultSummary.Create().
		SetID(uuid.New().String()).
		SetPaperID(meta.ID).
		SetLlmProvider("gemini").
		SetLlmModel("gemini-2.0-flash").
		SetBody("要約本文").
		Save(ctx)
	require.NoError(t, err)

	_, err = svc.SetSelection(ctx, user.ID, meta.ID, "a", "b")
	assert.Error(t, err)

	link, err := svc.SetSelection(ctx, user.ID, meta.ID, ds.ID, "")
	require.NoError(t, err)
	require.NotNil(t, link.SelectedDefaultSummaryID)
	assert.Equal(t, ds.ID, *link.SelectedDefaultSummaryID)
	assert.Nil(t, link.SelectedCustomSummaryID)

	// Clearing both ids is a valid selection.
	link, err = svc.SetSelection(ctx, user.ID, meta.ID, "", "")
	require.NoError(t, err)
	assert.Nil(t, link.SelectedDefaultSummaryID)
}

func TestPaperService_UpsertEditedSummary(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc, _, _ := newPaperService(t, client.Client)
	ctx := context.Background()

	alice := seedUser(t, client.Client)
	bob := seedUser(t, client.Client)
	_, meta, err := svc.Ingest(ctx, alice.ID, "2404.00001")
	require.NoError(t, err)

	ds, err := client.Client.DefaultSummary.Create().
		SetID(uuid.New().String()).
		SetPaperID(meta.ID).
		SetLlmProvider("gemini").
		SetLlmModel("gemini-2.0-flash").
		SetBody("要約本文").
		Save(ctx)
	require.NoError(t, err)

	_, err = svc.UpsertEdited(ctx, alice.ID, ds.ID, "other-custom", "x", "")
	assert.Error(t, err)
	_, err = svc.UpsertEdited(ctx, alice.ID, "", "", "x", "")
	assert.Error(t, err)
	_, err = svc.UpsertEdited(ctx, alice.ID, ds.ID, "", "", "")
	assert.Error(t, err)

	// First edit creates the override.
	row, err := svc.UpsertEdited(ctx, alice.ID, ds.ID, "", "編集済み本文", "一言")
	require.NoError(t, err)
	require.NotNil(t, row.DefaultSummaryID)
	assert.Equal(t, ds.ID, *row.DefaultSummaryID)
	assert.Equal(t, "編集済み本文", row.Body)
	assert.Equal(t, "一言", row.OnePoint)

	// A later edit replaces it in place.
	again, err := svc.UpsertEdited(ctx, alice.ID, ds.ID, "", "改稿版", "")
	require.NoError(t, err)
	assert.Equal(t, row.ID, again.ID)
	assert.Equal(t, "改稿版", again.Body)

	got, err := svc.GetEdited(ctx, alice.ID, ds.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "改稿版", got.Body)

	// Bob has no link to the paper, so the default summary is not his
	// to edit, and he sees no override either way.
	_, err = svc.UpsertEdited(ctx, bob.ID, ds.ID, "", "乗っ取り", "")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.GetEdited(ctx, bob.ID, ds.ID, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPaperService_UpsertEditedOverCustomSummary(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc, _, _ := newPaperService(t, client.Client)
	ctx := context.Background()

	alice := seedUser(t, client.Client)
	bob := seedUser(t, client.Client)
	promptRow := seedPrompt(t, client.Client, alice.ID)
	_, meta, err := svc.Ingest(ctx, alice.ID, "2404.00002")
	require.NoError(t, err)

	cs, err := client.Client.CustomSummary.Create().
		SetID(uuid.New().String()).
		SetUserID(alice.ID).
		SetPaperID(meta.ID).
		SetPromptID(promptRow.ID).
		SetLlmProvider("gemini").
		SetLlmModel("gemini-2.0-flash").
		SetBody("カスタム要約").
		Save(ctx)
	require.NoError(t, err)

	row, err := svc.UpsertEdited(ctx, alice.ID, "", cs.ID, "編集済み", "")
	require.NoError(t, err)
	require.NotNil(t, row.CustomSummaryID)
	assert.Equal(t, cs.ID, *row.CustomSummaryID)
	assert.Nil(t, row.DefaultSummaryID)

	// Custom summaries belong to their author only.
	_, err = svc.UpsertEdited(ctx, bob.ID, "", cs.ID, "乗っ取り", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPaperService_DeleteLinkScopedToUser(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc, store, _ := newPaperService(t, client.Client)
	ctx := context.Background()

	alice := seedUser(t, client.Client)
	bob := seedUser(t, client.Client)
	promptRow := seedPrompt(t, client.Client, alice.ID)

	_, meta, err := svc.Ingest(ctx, alice.ID, "2403.00001")
	require.NoError(t, err)
	_, _, err = svc.Ingest(ctx, bob.ID, "2403.00001")
	require.NoError(t, err)

	cs, err := client.Client.CustomSummary.Create().
		SetID(uuid.New().String()).
		SetUserID(alice.ID).
		SetPaperID(meta.ID).
		SetPromptID(promptRow.ID).
		SetLlmProvider("gemini").
		SetLlmModel("gemini-2.0-flash").
		SetBody("カスタム要約").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Client.EditedSummary.Create().
		SetID(uuid.New().String()).
		SetUserID(alice.ID).
		SetCustomSummaryID(cs.ID).
		SetBody("編集済み本文").
		Save(ctx)
	require.NoError(t, err)

	aliceChat, err := client.Client.PaperChatSession.Create().
		SetID(uuid.New().String()).
		SetUserID(alice.ID).
		SetPaperID(meta.ID).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Client.PaperChatMessage.Create().
		SetID(uuid.New().String()).
		SetSessionID(aliceChat.ID).
		SetRole(paperchatmessage.RoleUser).
		SetContent("この論文の要点は?").
		SetSequence(1).
		Save(ctx)
	require.NoError(t, err)
	bobChat, err := client.Client.PaperChatSession.Create().
		SetID(uuid.New().String()).
		SetUserID(bob.ID).
		SetPaperID(meta.ID).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Add(ctx, []vector.Document{{
		ID:        vector.DocumentID(alice.ID, meta.ID),
		Content:   "カスタム要約",
		Embedding: []float32{1, 0, 0},
		Metadata: map[string]string{
			vector.MetaUserID:  alice.ID,
			vector.MetaPaperID: meta.ID,
		},
	}}))

	require.NoError(t, svc.DeleteLink(ctx, alice.ID, meta.ID))

	_, err = svc.GetLink(ctx, alice.ID, meta.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Bob's link and the shared metadata survive.
	_, err = svc.GetLink(ctx, bob.ID, meta.ID)
	assert.NoError(t, err)
	_, err = svc.GetPaper(ctx, meta.ID)
	assert.NoError(t, err)

	n, err := client.Client.CustomSummary.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = client.Client.EditedSummary.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	// Alice's chat history goes with the link, messages via the session
	// cascade; Bob's session on the same paper survives.
	_, err = client.Client.PaperChatSession.Get(ctx, aliceChat.ID)
	assert.True(t, ent.IsNotFound(err))
	n, err = client.Client.PaperChatMessage.Query().
		Where(paperchatmessage.SessionID(aliceChat.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	_, err = client.Client.PaperChatSession.Get(ctx, bobChat.ID)
	assert.NoError(t, err)

	exists, err := store.BatchExists(ctx, alice.ID, []string{meta.ID})
	require.NoError(t, err)
	assert.False(t, exists[meta.ID])

	err = svc.DeleteLink(ctx, alice.ID, meta.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
