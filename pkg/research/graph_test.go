package research

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rainzero1960/paperscout/pkg/config"
	"github.com/rainzero1960/paperscout/pkg/llm"
	"github.com/rainzero1960/paperscout/pkg/prompt"
	"github.com/rainzero1960/paperscout/pkg/ragagent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedProvider replays canned results in order, repeating the last.
type scriptedProvider struct {
	providerType config.ProviderType

	mu     sync.Mutex
	script []*llm.Result
	calls  int
}

func (p *scriptedProvider) Generate(context.Context, []llm.Message, string, *llm.Options) (*llm.Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
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
		MaxRetries:      1,
		FailThreshold:   3,
		FallbackRetries: 1,
	}
	primary := &scriptedProvider{providerType: config.ProviderGemini, script: script}
	fallback := &scriptedProvider{providerType: config.ProviderOpenAI, script: script}
	gw, err := llm.NewGateway(cfg, primary, fallback)
	require.NoError(t, err)
	return gw, primary
}

type promptStore struct{}

func (promptStore) CustomPrompt(context.Context, string, string) (*prompt.StoredPrompt, error) {
	return nil, prompt.ErrNotFound
}
func (promptStore) PersonaPrompt(context.Context, string) (*prompt.StoredPrompt, error) {
	return nil, prompt.ErrNotFound
}
func (promptStore) Profile(context.Context, string) (*prompt.Profile, error) {
	return &prompt.Profile{Name: "田中"}, nil
}
func (promptStore) Group(context.Context, string, string) (*prompt.StoredGroup, error) {
	return nil, prompt.ErrNotFound
}

// fakeRecorder captures statuses and messages in order.
type fakeRecorder struct {
	mu       sync.Mutex
	statuses []string
	messages []Message
}

func (r *fakeRecorder) SetStatus(_ context.Context, _ string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, status)
	return nil
}

func (r *fakeRecorder) AppendMessage(_ context.Context, _ string, msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
	return nil
}

func (r *fakeRecorder) roles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.messages))
	for i, m := range r.messages {
		out[i] = m.Role
	}
	return out
}

type cannedTool struct {
	name   string
	output string
}

func (t *cannedTool) Definition() llm.ToolDefinition {
	return llm.ToolDefinition{Name: t.name, Parameters: map[string]any{"type": "object"}}
}

func (t *cannedTool) Execute(context.Context, string) (*ragagent.ToolResult, error) {
	return &ragagent.ToolResult{Output: t.output}, nil
}

func text(s string) *llm.Result { return &llm.Result{Text: s} }

func toolCall(name string) *llm.Result {
	return &llm.Result{ToolCalls: []llm.ToolCall{{ID: "call_1", Name: name, Arguments: `{"query":"q"}`}}}
}

func testEngine(t *testing.T, recorder Recorder, cfg *config.ResearchConfig, script ...*llm.Result) (*Engine, *scriptedProvider) {
	t.Helper()
	gw, provider := newTestGateway(t, script...)
	return NewEngine(gw, prompt.NewResolver(promptStore{}), recorder, cfg), provider
}

func TestRun_FullGraph(t *testing.T) {
	recorder := &fakeRecorder{}
	engine, _ := testEngine(t, recorder, nil,
		text(`{"reasoning":"調査が必要","response":"調査を開始します","next":"planner"}`),
		text("計画: サブトピックAを調べる"),
		text(`{"reasoning":"未着手","planning":"Aから","next_action":"Aを調査せよ","next":"agent"}`),
		toolCall("corpus_search"),
		text("発見: Aに関する論文が3本ある"),
		text(`{"reasoning":"十分","planning":"完了","next_action":"まとめ","next":"summary"}`),
		text("# 最終レポート\nAについての調査結果。"),
	)

	tools := ragagent.NewToolSet(&cannedTool{name: "corpus_search", output: "検索結果テキスト"})
	out, err := engine.Run(context.Background(), Request{
		SessionID: "s1",
		UserID:    "u1",
		Query:     "Aについて調べて",
		Tools:     tools,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, out.Status)
	assert.Contains(t, out.FinalReport, "最終レポート")

	assert.Equal(t, []string{
		StatusCoordinating,
		StatusPlanning,
		StatusSupervising,
		StatusAgentRunning,
		StatusToolRunning,
		StatusAgentRunning,
		StatusSupervising,
		StatusSummarizing,
		StatusCompleted,
	}, recorder.statuses)

	assert.Equal(t, []string{
		RoleCoordinator,
		RolePlanner,
		RoleSupervisor,
		RoleToolOutput,
		RoleAgent,
		RoleSupervisor,
		RoleSummary,
	}, recorder.roles())

	// Only the summary is user-facing in a full run.
	for _, msg := range recorder.messages[:len(recorder.messages)-1] {
		assert.True(t, msg.IsIntermediate, msg.Role)
	}
	assert.False(t, recorder.messages[len(recorder.messages)-1].IsIntermediate)
}

func TestRun_CoordinatorTerminal(t *testing.T) {
	recorder := &fakeRecorder{}
	engine, provider := testEngine(t, recorder, nil,
		text(`{"reasoning":"挨拶","response":"こんにちは!","next":"END"}`),
	)

	out, err := engine.Run(context.Background(), Request{SessionID: "s1", UserID: "u1", Query: "こんにちは"})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, out.Status)
	assert.Equal(t, "こんにちは!", out.FinalReport)
	assert.Equal(t, 1, provider.calls)

	assert.Equal(t, []string{StatusCoordinating, StatusCompleted}, recorder.statuses)
	require.Len(t, recorder.messages, 1)
	assert.Equal(t, RoleCoordinator, recorder.messages[0].Role)
	assert.False(t, recorder.messages[0].IsIntermediate)
}

func TestRun_StructuredValidationRetries(t *testing.T) {
	recorder := &fakeRecorder{}
	engine, provider := testEngine(t, recorder, nil,
		text(`{"reasoning":"x","response":"y","next":"nowhere"}`),
		text(`{"reasoning":"x","response":"直接回答","next":"END"}`),
	)

	out, err := engine.Run(context.Background(), Request{SessionID: "s1", UserID: "u1", Query: "q"})
	require.NoError(t, err)
	assert.Equal(t, "直接回答", out.FinalReport)
	// Invalid `next` consumed one in-graph attempt.
	assert.Equal(t, 2, provider.calls)
}

func TestRun_FailureRecordsSystemError(t *testing.T) {
	recorder := &fakeRecorder{}
	// Every attempt yields an invalid transition.
	engine, _ := testEngine(t, recorder, nil,
		text(`{"reasoning":"x","response":"y","next":"nowhere"}`),
	)

	_, err := engine.Run(context.Background(), Request{SessionID: "s1", UserID: "u1", Query: "q"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coordinator")

	assert.Equal(t, StatusFailed, recorder.statuses[len(recorder.statuses)-1])
	require.NotEmpty(t, recorder.messages)
	last := recorder.messages[len(recorder.messages)-1]
	assert.Equal(t, RoleSystemError, last.Role)
	assert.Contains(t, last.Content, "nowhere")
}

func TestRun_RecursionLimit(t *testing.T) {
	recorder := &fakeRecorder{}
	cfg := &config.ResearchConfig{RecursionLimit: 2, RoleRetries: 3, RAGTopK: 5}
	engine, _ := testEngine(t, recorder, cfg,
		text(`{"reasoning":"x","response":"調査します","next":"planner"}`),
		text("計画"),
		text(`{"reasoning":"x","planning":"p","next_action":"調査せよ","next":"agent"}`),
		text("発見した"),
	)

	out, err := engine.Run(context.Background(), Request{SessionID: "s1", UserID: "u1", Query: "q"})
	require.NoError(t, err)
	assert.Equal(t, StatusUnknownCompletion, out.Status)
	assert.Empty(t, out.FinalReport)
	assert.Equal(t, StatusUnknownCompletion, recorder.statuses[len(recorder.statuses)-1])
}
