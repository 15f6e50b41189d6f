package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rainzero1960/paperscout/ent"
	"github.com/rainzero1960/paperscout/pkg/config"
	"github.com/rainzero1960/paperscout/pkg/jobs"
	"github.com/rainzero1960/paperscout/pkg/llm"
	"github.com/rainzero1960/paperscout/pkg/prompt"
	"github.com/rainzero1960/paperscout/pkg/summary"
	"github.com/rainzero1960/paperscout/pkg/tagging"
	"github.com/rainzero1960/paperscout/pkg/vector"
	testdb "github.com/rainzero1960/paperscout/test/database"
)

func newSummaryService(t *testing.T, client *ent.Client, script ...*llm.Result) (*SummaryService, *fakeVectorStore) {
	t.Helper()
	gw, _ := newTestGateway(t, script...)
	arxiv, _ := fakeArxiv(t)
	store := newFakeVectorStore()
	papers := NewPaperService(client, arxiv, store)
	resolver := prompt.NewResolver(NewPromptService(client))

	cfg := config.DefaultCoordinatorConfig()
	cfg.PollInterval = 10 * time.Millisecond
	cfg.WaitTimeout = 2 * time.Second

	repo := NewSummaryRepo(client)
	registry := jobs.NewRegistry()
	svc := NewSummaryService(
		client,
		papers,
		summary.NewCoordinator(repo, cfg),
		gw,
		resolver,
		vector.NewIndexer(unitEmbedder{}, store, 10),
		tagging.NewTagger(gw, resolver),
		registry,
		summary.NewBulkRunner(&config.BulkConfig{PaperWorkers: 1, PromptWorkers: 1}, registry),
		cfg,
	)
	return svc, store
}

func summaryResult(text string) *llm.Result {
	return &llm.Result{Text: text, Provider: config.ProviderGemini, Model: "test-model"}
}

func TestSummaryService_GenerateSingleDefault(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc, store := newSummaryService(t, client.Client,
		summaryResult("## 一言でいうと\n自己注意のみで系列変換を行う。\n\n## 詳細\n本論文は。"),
		summaryResult("Transformer,NLP,Attention"),
	)
	user := seedUser(t, client.Client)
	ctx := context.Background()

	out, err := svc.GenerateSingle(ctx, user.ID, GenerateSingleRequest{
		URL:             "https://arxiv.org/abs/2407.00001",
		CreateEmbedding: true,
		IsFirstForPaper: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.DefaultSummaryID)
	assert.Empty(t, out.CustomSummaryID)
	assert.True(t, out.VectorCreated)
	assert.Equal(t, "デフォルト要約", out.PromptName)
	assert.Equal(t, "default", out.PromptType)

	// The link points at the chosen summary and carries content tags.
	link, err := svc.papers.GetLink(ctx, user.ID, out.PaperID)
	require.NoError(t, err)
	require.NotNil(t, link.SelectedDefaultSummaryID)
	assert.Equal(t, out.DefaultSummaryID, *link.SelectedDefaultSummaryID)
	assert.True(t, tagging.HasContentTags(link.Tags))

	row, err := client.Client.DefaultSummary.Get(ctx, out.DefaultSummaryID)
	require.NoError(t, err)
	assert.Equal(t, "自己注意のみで系列変換を行う。", row.OnePoint)
	assert.Equal(t, "gemini", row.LlmProvider)

	exists, err := store.BatchExists(ctx, user.ID, []string{out.PaperID})
	require.NoError(t, err)
	assert.True(t, exists[out.PaperID])
}

func TestSummaryService_GenerateSingleReusesReadyRow(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc, _ := newSummaryService(t, client.Client,
		summaryResult("## 一言でいうと\n初回の要約。"),
		summaryResult("Transformer,NLP"),
	)
	user := seedUser(t, client.Client)
	ctx := context.Background()

	first, err := svc.GenerateSingle(ctx, user.ID, GenerateSingleRequest{
		URL: "2407.00002", IsFirstForPaper: true,
	})
	require.NoError(t, err)

	// The second call finds the READY row; the script would error if a
	// second generation were attempted.
	second, err := svc.GenerateSingle(ctx, user.ID, GenerateSingleRequest{URL: "2407.00002"})
	require.NoError(t, err)
	assert.Equal(t, first.DefaultSummaryID, second.DefaultSummaryID)
}

func TestSummaryService_GenerateSingleCustomPrompt(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc, _ := newSummaryService(t, client.Client,
		summaryResult("## 一言でいうと\n数式中心の要約。"),
		summaryResult("Transformer,Attention"),
	)
	user := seedUser(t, client.Client)
	promptRow := seedPrompt(t, client.Client, user.ID)
	ctx := context.Background()

	out, err := svc.GenerateSingle(ctx, user.ID, GenerateSingleRequest{
		URL:             "2407.00003",
		PromptID:        promptRow.ID,
		IsFirstForPaper: true,
	})
	require.NoError(t, err)
	assert.Empty(t, out.DefaultSummaryID)
	assert.NotEmpty(t, out.CustomSummaryID)
	assert.Equal(t, promptRow.Name, out.PromptName)
	assert.Equal(t, "custom", out.PromptType)

	row, err := client.Client.CustomSummary.Get(ctx, out.CustomSummaryID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, row.UserID)
	assert.Equal(t, promptRow.ID, row.PromptID)
}

func TestSummaryService_CheckExisting(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc, _ := newSummaryService(t, client.Client,
		summaryResult("## 一言でいうと\n要約本文。"),
		summaryResult("Transformer,NLP"),
	)
	user := seedUser(t, client.Client)
	promptRow := seedPrompt(t, client.Client, user.ID)
	ctx := context.Background()

	// Unknown paper: a clean miss, not an error.
	res, err := svc.CheckExisting(ctx, user.ID, "2407.00004", promptRow.ID, "gemini", "test-model")
	require.NoError(t, err)
	assert.False(t, res.Exists)

	out, err := svc.GenerateSingle(ctx, user.ID, GenerateSingleRequest{
		URL: "2407.00004", PromptID: promptRow.ID, IsFirstForPaper: true,
	})
	require.NoError(t, err)

	res, err = svc.CheckExisting(ctx, user.ID, "2407.00004", promptRow.ID, "gemini", "test-model")
	require.NoError(t, err)
	assert.True(t, res.Exists)
	assert.False(t, res.RequiresRegeneration)
	assert.Equal(t, out.CustomSummaryID, res.SummaryID)

	// A different route is a different key.
	res, err = svc.CheckExisting(ctx, user.ID, "2407.00004", promptRow.ID, "openai", "gpt-4o")
	require.NoError(t, err)
	assert.False(t, res.Exists)

	// Updating the prompt marks the stored summary stale.
	_, err = client.Client.Prompt.UpdateOneID(promptRow.ID).
		SetBody("改訂された本文").
		SetUpdatedAt(time.Now().Add(time.Minute)).
		Save(ctx)
	require.NoError(t, err)
	res, err = svc.CheckExisting(ctx, user.ID, "2407.00004", promptRow.ID, "gemini", "test-model")
	require.NoError(t, err)
	assert.True(t, res.Exists)
	assert.True(t, res.RequiresRegeneration)
}

func TestSummaryService_CheckDuplications(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc, _ := newSummaryService(t, client.Client,
		summaryResult("## 一言でいうと\n要約本文。"),
		summaryResult("Transformer,NLP"),
	)
	user := seedUser(t, client.Client)
	ctx := context.Background()

	out, err := svc.GenerateSingle(ctx, user.ID, GenerateSingleRequest{
		URL: "https://arxiv.org/abs/2407.00005", CreateEmbedding: true, IsFirstForPaper: true,
	})
	require.NoError(t, err)
	require.True(t, out.VectorCreated)

	report, err := svc.CheckDuplications(ctx, user.ID, []string{
		"https://arxiv.org/abs/2407.00005",
		"https://arxiv.org/abs/2407.99999",
		"not a url",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://arxiv.org/abs/2407.00005"}, report.ExistingVectorURLs)
	require.Len(t, report.ExistingSummaryInfo, 1)
	assert.Equal(t, "デフォルト要約", report.ExistingSummaryInfo[0].PromptName)
	assert.Equal(t, "default", report.ExistingSummaryInfo[0].PromptType)

	// Another user sees the shared summary but not the vector.
	other := seedUser(t, client.Client)
	report, err = svc.CheckDuplications(ctx, other.ID, []string{"2407.00005"})
	require.NoError(t, err)
	assert.Empty(t, report.ExistingVectorURLs)
	assert.Len(t, report.ExistingSummaryInfo, 1)
}

func TestSummaryService_StartBulkGuard(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc, _ := newSummaryService(t, client.Client)
	user := seedUser(t, client.Client)

	// A running entry blocks a second launch.
	require.True(t, svc.registry.Start(user.ID, 1))
	err := svc.StartBulk(user.ID, []BulkPaper{{PaperID: "p1", PromptIDs: []string{""}}})
	assert.ErrorIs(t, err, summary.ErrBulkAlreadyRunning)
}
