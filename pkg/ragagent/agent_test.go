package ragagent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rainzero1960/paperscout/pkg/config"
	"github.com/rainzero1960/paperscout/pkg/jobs"
	"github.com/rainzero1960/paperscout/pkg/llm"
	"github.com/rainzero1960/paperscout/pkg/prompt"
	"github.com/rainzero1960/paperscout/pkg/vector"
	"github.com/rainzero1960/paperscout/pkg/webtool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedProvider replays canned results in order, repeating the last.
type scriptedProvider struct {
	providerType config.ProviderType

	mu      sync.Mutex
	script  []*llm.Result
	calls   int
	lastMsg []llm.Message
}

func (p *scriptedProvider) Generate(_ context.Context, messages []llm.Message, _ string, _ *llm.Options) (*llm.Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastMsg = messages
	idx := p.calls
	if idx >= len(p.script) {
		idx = len(p.script) - 1
	}
	p.calls++
	out := *p.script[idx]
	return &out, nil
}

func (p *scriptedProvider) Type() config.ProviderType { return p.providerType }

func newTestGateway(t *testing.T, script ...*llm.Result) (*llm.Gateway, *scriptedProvider) {
	t.Helper()
	cfg := &config.LLMConfig{
		Primary:         config.ModelSpec{Provider: config.ProviderGemini, Model: "gemini-2.0-flash"},
		Fallback:        config.ModelSpec{Provider: config.ProviderOpenAI, Model: "gpt-4o-mini"},
		CallTimeout:     5 * time.Second,
		RetryBackoff:    time.Millisecond,
		MaxRetries:      2,
		FailThreshold:   3,
		FallbackRetries: 1,
	}
	primary := &scriptedProvider{providerType: config.ProviderGemini, script: script}
	fallback := &scriptedProvider{providerType: config.ProviderOpenAI, script: script}
	gw, err := llm.NewGateway(cfg, primary, fallback)
	require.NoError(t, err)
	return gw, primary
}

// promptStore serves the resolver with a character-less profile.
type promptStore struct{}

func (promptStore) CustomPrompt(context.Context, string, string) (*prompt.StoredPrompt, error) {
	return nil, prompt.ErrNotFound
}
func (promptStore) PersonaPrompt(context.Context, string) (*prompt.StoredPrompt, error) {
	return nil, prompt.ErrNotFound
}
func (promptStore) Profile(context.Context, string) (*prompt.Profile, error) {
	return &prompt.Profile{Name: "太郎"}, nil
}
func (promptStore) Group(context.Context, string, string) (*prompt.StoredGroup, error) {
	return nil, prompt.ErrNotFound
}

// cannedTool returns a fixed result and records its invocations.
type cannedTool struct {
	name   string
	result *ToolResult

	mu    sync.Mutex
	calls []string
}

func (t *cannedTool) Definition() llm.ToolDefinition {
	return llm.ToolDefinition{Name: t.name, Parameters: map[string]any{"type": "object"}}
}

func (t *cannedTool) Execute(_ context.Context, argsJSON string) (*ToolResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls = append(t.calls, argsJSON)
	return t.result, nil
}

func toolCallResult(name, args string) *llm.Result {
	return &llm.Result{ToolCalls: []llm.ToolCall{{ID: "call_1", Name: name, Arguments: args}}}
}

func TestRun_AnswerWithoutTools(t *testing.T) {
	gw, provider := newTestGateway(t, &llm.Result{Text: "直接回答です。"})
	agent := NewAgent(gw, prompt.NewResolver(promptStore{}))

	resp, err := agent.Run(context.Background(), Request{
		UserID:   "u1",
		Question: "こんにちは",
		Tools:    NewToolSet(),
	})
	require.NoError(t, err)
	assert.Equal(t, "直接回答です。", resp.Answer)
	assert.Empty(t, resp.References)
	require.Len(t, resp.Steps, 1)
	assert.Equal(t, llm.RoleAssistant, resp.Steps[0].Role)

	// System prompt leads the conversation, question closes it.
	require.GreaterOrEqual(t, len(provider.lastMsg), 2)
	assert.Equal(t, llm.RoleSystem, provider.lastMsg[0].Role)
	assert.Equal(t, "こんにちは", provider.lastMsg[len(provider.lastMsg)-1].Content)
}

func TestRun_ToolLoopCollectsReferences(t *testing.T) {
	search := &cannedTool{name: ToolCorpusSearch, result: &ToolResult{
		Output: "paper_id=p1 の要約",
		References: []Reference{
			{Kind: RefPaper, PaperID: "p1", Snippet: "要約"},
			{Kind: RefPaper, PaperID: "p1", Snippet: "重複"},
		},
	}}

	gw, _ := newTestGateway(t,
		toolCallResult(ToolCorpusSearch, `{"query":"attention"}`),
		&llm.Result{Text: "p1 が該当します。"},
	)
	agent := NewAgent(gw, prompt.NewResolver(promptStore{}))

	resp, err := agent.Run(context.Background(), Request{
		UserID:   "u1",
		Question: "attention の論文は?",
		Tools:    NewToolSet(search),
	})
	require.NoError(t, err)
	assert.Equal(t, "p1 が該当します。", resp.Answer)

	// Duplicate paper references collapse to one.
	require.Len(t, resp.References, 1)
	assert.Equal(t, "p1", resp.References[0].PaperID)

	require.Len(t, search.calls, 1)
	assert.JSONEq(t, `{"query":"attention"}`, search.calls[0])

	// assistant(tool call), tool output, final assistant answer.
	require.Len(t, resp.Steps, 3)
	assert.Equal(t, llm.RoleTool, resp.Steps[1].Role)
	assert.Equal(t, ToolCorpusSearch, resp.Steps[1].ToolName)
	assert.Equal(t, "paper_id=p1 の要約", resp.Steps[1].Content)
}

func TestRun_UnknownToolRecovers(t *testing.T) {
	gw, _ := newTestGateway(t,
		toolCallResult("no_such_tool", `{}`),
		&llm.Result{Text: "了解しました。"},
	)
	agent := NewAgent(gw, prompt.NewResolver(promptStore{}))

	resp, err := agent.Run(context.Background(), Request{
		UserID:   "u1",
		Question: "q",
		Tools:    NewToolSet(),
	})
	require.NoError(t, err)
	assert.Equal(t, "了解しました。", resp.Answer)
	require.Len(t, resp.Steps, 3)
	assert.Contains(t, resp.Steps[1].Content, "ツールエラー")
}

func TestRun_NonTerminatingLoopAborts(t *testing.T) {
	search := &cannedTool{name: ToolCorpusSearch, result: &ToolResult{Output: "..."}}

	// Every turn requests another tool call.
	gw, provider := newTestGateway(t, toolCallResult(ToolCorpusSearch, `{"query":"q"}`))
	agent := NewAgent(gw, prompt.NewResolver(promptStore{}))

	_, err := agent.Run(context.Background(), Request{
		UserID:   "u1",
		Question: "q",
		Tools:    NewToolSet(search),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not terminate")
	assert.Equal(t, maxToolTurns, provider.calls)
}

func TestRunAsync(t *testing.T) {
	gw, _ := newTestGateway(t, &llm.Result{Text: "非同期の回答"})
	agent := NewAgent(gw, prompt.NewResolver(promptStore{}))
	registry := jobs.NewRegistry()

	doneCh := make(chan *Response, 1)
	err := agent.RunAsync(registry, Request{UserID: "u1", Question: "q", Tools: NewToolSet()},
		func(resp *Response, err error) {
			require.NoError(t, err)
			doneCh <- resp
		})
	require.NoError(t, err)

	select {
	case resp := <-doneCh:
		assert.Equal(t, "非同期の回答", resp.Answer)
	case <-time.After(5 * time.Second):
		t.Fatal("async run did not complete")
	}

	status, ok := registry.Get("u1")
	require.True(t, ok)
	assert.False(t, status.IsRunning)
	assert.Equal(t, 1, status.Processed)
}

func TestRunAsync_AlreadyRunning(t *testing.T) {
	gw, _ := newTestGateway(t, &llm.Result{Text: "x"})
	agent := NewAgent(gw, prompt.NewResolver(promptStore{}))
	registry := jobs.NewRegistry()
	registry.Start("u1", 1)

	err := agent.RunAsync(registry, Request{UserID: "u1", Question: "q"}, nil)
	assert.ErrorIs(t, err, ErrAlreadyRunning)
}

// searchStore serves canned similarity hits.
type searchStore struct {
	hits       []vector.SearchResult
	lastFilter *vector.Filter
}

func (s *searchStore) Add(context.Context, []vector.Document) error           { return nil }
func (s *searchStore) DeleteByFilter(context.Context, vector.Condition) error { return nil }
func (s *searchStore) SearchByVector(_ context.Context, _ []float32, _ int, filter *vector.Filter) ([]vector.SearchResult, error) {
	s.lastFilter = filter
	return s.hits, nil
}
func (s *searchStore) GetEmbeddings(context.Context, []vector.Key) (map[vector.Key][]float32, error) {
	return nil, nil
}
func (s *searchStore) BatchExists(context.Context, string, []string) (map[string]bool, error) {
	return nil, nil
}

type unitEmbedder struct{}

func (unitEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1, 0}
	}
	return out, nil
}

func TestCorpusSearchTool(t *testing.T) {
	store := &searchStore{hits: []vector.SearchResult{
		{
			Document: vector.Document{
				Content:  "Transformerの要約",
				Metadata: map[string]string{vector.MetaUserID: "u1", vector.MetaPaperID: "p1"},
			},
			Score: 0.91,
		},
	}}
	indexer := vector.NewIndexer(unitEmbedder{}, store, 100)

	tool := NewCorpusSearchTool(indexer, "u1", []string{"p1", "p2"}, 5)
	result, err := tool.Execute(context.Background(), `{"query":"transformer"}`)
	require.NoError(t, err)

	assert.Contains(t, result.Output, "paper_id=p1")
	assert.Contains(t, result.Output, "Transformerの要約")
	require.Len(t, result.References, 1)
	assert.Equal(t, RefPaper, result.References[0].Kind)
	assert.Equal(t, "p1", result.References[0].PaperID)

	// Search was scoped to the user's allowed papers.
	require.NotNil(t, store.lastFilter)
	assert.Len(t, store.lastFilter.AnyOf, 2)
}

func TestCorpusSearchTool_EmptyQuery(t *testing.T) {
	indexer := vector.NewIndexer(unitEmbedder{}, &searchStore{}, 100)
	tool := NewCorpusSearchTool(indexer, "u1", nil, 5)
	_, err := tool.Execute(context.Background(), `{"query":"  "}`)
	assert.Error(t, err)
}

func TestWebSearchTool(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"title": "Survey", "url": "https://example.com/survey", "content": "概要テキスト"},
			},
		})
	}))
	defer srv.Close()

	client := webtool.NewClient(&config.WebToolConfig{
		SearchAPIKey:  "k",
		SearchBaseURL: srv.URL,
		MaxResults:    5,
		HTTPTimeout:   5 * time.Second,
	})

	tool := NewWebSearchTool(client)
	result, err := tool.Execute(context.Background(), `{"query":"survey"}`)
	require.NoError(t, err)
	assert.Contains(t, result.Output, "Survey")
	assert.Contains(t, result.Output, "https://example.com/survey")
	require.Len(t, result.References, 1)
	assert.Equal(t, RefWeb, result.References[0].Kind)
	assert.Equal(t, "https://example.com/survey", result.References[0].URL)
}

func TestDedupeReferences(t *testing.T) {
	refs := []Reference{
		{Kind: RefPaper, PaperID: "p1"},
		{Kind: RefWeb, URL: "https://a"},
		{Kind: RefPaper, PaperID: "p1"},
		{Kind: RefWeb, URL: "https://b"},
		{Kind: RefWeb, URL: "https://a"},
	}
	got := dedupeReferences(refs)
	require.Len(t, got, 3)
	assert.Equal(t, "p1", got[0].PaperID)
	assert.Equal(t, "https://a", got[1].URL)
	assert.Equal(t, "https://b", got[2].URL)
}
