package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rainzero1960/paperscout/ent"
	"github.com/rainzero1960/paperscout/ent/researchmessage"
	"github.com/rainzero1960/paperscout/ent/researchsession"
	"github.com/rainzero1960/paperscout/pkg/jobs"
	"github.com/rainzero1960/paperscout/pkg/llm"
	"github.com/rainzero1960/paperscout/pkg/prompt"
	"github.com/rainzero1960/paperscout/pkg/ragagent"
	"github.com/rainzero1960/paperscout/pkg/vector"
	testdb "github.com/rainzero1960/paperscout/test/database"
)

func newRAGService(t *testing.T, client *ent.Client, store vector.Store, script ...*llm.Result) *RAGService {
	t.Helper()
	gw, _ := newTestGateway(t, script...)
	resolver := prompt.NewResolver(NewPromptService(client))
	indexer := vector.NewIndexer(unitEmbedder{}, store, 10)
	return NewRAGService(client, gw, resolver, indexer, nil, jobs.NewRegistry(), nil)
}

func TestRAGService_AsyncRunSurvivesRestart(t *testing.T) {
	client := testdb.NewTestClient(t)
	user := seedUser(t, client.Client)
	ctx := context.Background()

	store := newFakeVectorStore()
	require.NoError(t, store.Add(ctx, []vector.Document{{
		ID:        vector.DocumentID(user.ID, "p1"),
		Content:   "注意機構に関する要約",
		Embedding: []float32{1, 0, 0},
		Metadata: map[string]string{
			vector.MetaUserID:  user.ID,
			vector.MetaPaperID: "p1",
		},
	}}))

	svc := newRAGService(t, client.Client, store,
		&llm.Result{ToolCalls: []llm.ToolCall{{
			ID: "c1", Name: ragagent.ToolCorpusSearch, Arguments: `{"query":"注意機構"}`,
		}}},
		&llm.Result{Text: "注意機構の論文が1件あります。"},
	)

	runID, err := svc.StartAsync(ctx, user.ID, QueryRequest{Question: "注意機構の論文は?"})
	require.NoError(t, err)

	// A fresh service over the same database stands in for a restarted
	// process: nothing lives in its cache, so readability proves the
	// run was persisted.
	restarted := newRAGService(t, client.Client, store)
	var run *RAGRun
	require.Eventually(t, func() bool {
		run, err = restarted.GetRun(ctx, user.ID, runID)
		return err == nil && run.Done
	}, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, "注意機構の論文は?", run.Question)
	assert.Empty(t, run.Error)
	require.NotNil(t, run.Response)
	assert.Equal(t, "注意機構の論文が1件あります。", run.Response.Answer)
	require.Len(t, run.Response.References, 1)
	assert.Equal(t, "p1", run.Response.References[0].PaperID)

	// The run's session row carries its own category and the message
	// trail, and stays off the deeprag listing.
	session, err := client.Client.ResearchSession.Get(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, researchsession.CategoryRag, session.Category)
	assert.Equal(t, researchsession.ProcessingStatusCompleted, session.ProcessingStatus)

	msgs, err := client.Client.ResearchMessage.Query().
		Where(researchmessage.SessionID(runID)).
		Order(ent.Asc(researchmessage.FieldSequence)).
		All(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, msgs)
	assert.Equal(t, researchmessage.RoleUser, msgs[0].Role)
	assert.Equal(t, researchmessage.RoleAssistant, msgs[len(msgs)-1].Role)

	n, err := client.Client.ResearchSession.Query().
		Where(researchsession.CategoryEQ(researchsession.CategoryDeeprag)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	// Other users cannot read the run.
	other := seedUser(t, client.Client)
	_, err = restarted.GetRun(ctx, other.ID, runID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRAGService_AsyncFailureIsPersisted(t *testing.T) {
	client := testdb.NewTestClient(t)
	user := seedUser(t, client.Client)
	ctx := context.Background()

	// An empty script fails every model call.
	svc := newRAGService(t, client.Client, newFakeVectorStore())

	runID, err := svc.StartAsync(ctx, user.ID, QueryRequest{Question: "失敗する質問"})
	require.NoError(t, err)

	restarted := newRAGService(t, client.Client, newFakeVectorStore())
	var run *RAGRun
	require.Eventually(t, func() bool {
		run, err = restarted.GetRun(ctx, user.ID, runID)
		return err == nil && run.Done
	}, 5*time.Second, 10*time.Millisecond)

	assert.NotEmpty(t, run.Error)
	assert.Nil(t, run.Response)

	session, err := client.Client.ResearchSession.Get(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, researchsession.ProcessingStatusFailed, session.ProcessingStatus)
}
