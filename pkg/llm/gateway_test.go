package llm

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rainzero1960/paperscout/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedProvider returns canned results or errors in order, then
// repeats the last entry.
type scriptedProvider struct {
	providerType config.ProviderType

	mu      sync.Mutex
	script  []scriptedReply
	calls   int
	lastMsg []Message
}

type scriptedReply struct {
	result *Result
	err    error
}

func (p *scriptedProvider) Generate(ctx context.Context, messages []Message, model string, opts *Options) (*Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastMsg = messages
	idx := p.calls
	if idx >= len(p.script) {
		idx = len(p.script) - 1
	}
	p.calls++
	reply := p.script[idx]
	if reply.err != nil {
		return nil, reply.err
	}
	out := *reply.result
	return &out, nil
}

func (p *scriptedProvider) Type() config.ProviderType {
	return p.providerType
}

func (p *scriptedProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func ok(text string) scriptedReply {
	return scriptedReply{result: &Result{Text: text}}
}

func fail(msg string) scriptedReply {
	return scriptedReply{err: fmt.Errorf("%s", msg)}
}

func testLLMConfig() *config.LLMConfig {
	return &config.LLMConfig{
		Primary:         config.ModelSpec{Provider: config.ProviderGemini, Model: "gemini-2.0-flash"},
		Fallback:        config.ModelSpec{Provider: config.ProviderOpenAI, Model: "gpt-4o-mini"},
		CallTimeout:     5 * time.Second,
		RetryBackoff:    time.Millisecond,
		MaxRetries:      3,
		FailThreshold:   3,
		FallbackRetries: 2,
	}
}

func TestNewGateway_RequiresBothRoutes(t *testing.T) {
	cfg := testLLMConfig()
	primary := &scriptedProvider{providerType: config.ProviderGemini, script: []scriptedReply{ok("hi")}}

	_, err := NewGateway(cfg, primary)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fallback")

	fallback := &scriptedProvider{providerType: config.ProviderOpenAI, script: []scriptedReply{ok("hi")}}
	_, err = NewGateway(cfg, primary, fallback)
	require.NoError(t, err)
}

func TestInvoke_SuccessFirstAttempt(t *testing.T) {
	cfg := testLLMConfig()
	primary := &scriptedProvider{providerType: config.ProviderGemini, script: []scriptedReply{ok("hello")}}
	fallback := &scriptedProvider{providerType: config.ProviderOpenAI, script: []scriptedReply{ok("never")}}
	gw, err := NewGateway(cfg, primary, fallback)
	require.NoError(t, err)

	result, err := gw.Invoke(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, cfg.Primary, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", result.Text)
	assert.Equal(t, config.ProviderGemini, result.Provider)
	assert.False(t, result.UsedFallback)
	assert.Equal(t, 1, primary.callCount())
	assert.Equal(t, 0, fallback.callCount())
}

func TestInvoke_RetriesTransientThenSucceeds(t *testing.T) {
	cfg := testLLMConfig()
	primary := &scriptedProvider{providerType: config.ProviderGemini, script: []scriptedReply{
		fail("429 too many requests"),
		fail("503 service unavailable"),
		ok("third time"),
	}}
	fallback := &scriptedProvider{providerType: config.ProviderOpenAI, script: []scriptedReply{ok("never")}}
	gw, err := NewGateway(cfg, primary, fallback)
	require.NoError(t, err)

	result, err := gw.Invoke(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, cfg.Primary, nil)
	require.NoError(t, err)
	assert.Equal(t, "third time", result.Text)
	assert.Equal(t, 3, primary.callCount())
	assert.Equal(t, 0, fallback.callCount())
}

func TestInvoke_FatalErrorStopsRetrying(t *testing.T) {
	cfg := testLLMConfig()
	primary := &scriptedProvider{providerType: config.ProviderGemini, script: []scriptedReply{
		fail("invalid api key"),
	}}
	fallback := &scriptedProvider{providerType: config.ProviderOpenAI, script: []scriptedReply{ok("never")}}
	gw, err := NewGateway(cfg, primary, fallback)
	require.NoError(t, err)

	_, err = gw.Invoke(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, cfg.Primary, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAllRetriesFailed)
	// Fatal on the first try, so no further attempts on that route.
	assert.Equal(t, 1, primary.callCount())
}

func TestInvoke_FallbackEngagesAtThreshold(t *testing.T) {
	cfg := testLLMConfig()
	primary := &scriptedProvider{providerType: config.ProviderGemini, script: []scriptedReply{
		fail("429 too many requests"),
	}}
	fallback := &scriptedProvider{providerType: config.ProviderOpenAI, script: []scriptedReply{ok("rescued")}}
	gw, err := NewGateway(cfg, primary, fallback)
	require.NoError(t, err)

	// Three transient failures inside one call cross FailThreshold=3 and
	// the fallback leg runs within the same invocation.
	result, err := gw.Invoke(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, cfg.Primary, nil)
	require.NoError(t, err)
	assert.Equal(t, "rescued", result.Text)
	assert.True(t, result.UsedFallback)
	assert.Equal(t, config.ProviderOpenAI, result.Provider)
	assert.Equal(t, 3, primary.callCount())
	assert.Equal(t, 1, fallback.callCount())
}

func TestInvoke_ExhaustedPrimarySkipsStraightToFallback(t *testing.T) {
	cfg := testLLMConfig()
	primary := &scriptedProvider{providerType: config.ProviderGemini, script: []scriptedReply{
		fail("429 too many requests"),
	}}
	fallback := &scriptedProvider{providerType: config.ProviderOpenAI, script: []scriptedReply{ok("rescued")}}
	gw, err := NewGateway(cfg, primary, fallback)
	require.NoError(t, err)

	_, err = gw.Invoke(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, cfg.Primary, nil)
	require.NoError(t, err)
	primaryCalls := primary.callCount()

	// The gateway remembers the threshold crossing; the next call does
	// not touch the primary route at all.
	result, err := gw.Invoke(context.Background(), []Message{{Role: RoleUser, Content: "again"}}, cfg.Primary, nil)
	require.NoError(t, err)
	assert.True(t, result.UsedFallback)
	assert.Equal(t, primaryCalls, primary.callCount())
	assert.Equal(t, 2, fallback.callCount())
}

func TestInvoke_PrimarySuccessResetsFailureCount(t *testing.T) {
	cfg := testLLMConfig()
	primary := &scriptedProvider{providerType: config.ProviderGemini, script: []scriptedReply{
		fail("502 bad gateway"),
		fail("502 bad gateway"),
		ok("recovered"),
	}}
	fallback := &scriptedProvider{providerType: config.ProviderOpenAI, script: []scriptedReply{ok("never")}}
	gw, err := NewGateway(cfg, primary, fallback)
	require.NoError(t, err)

	result, err := gw.Invoke(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, cfg.Primary, nil)
	require.NoError(t, err)
	assert.False(t, result.UsedFallback)
	assert.False(t, gw.primaryExhausted())
}

func TestInvoke_AllRoutesFail(t *testing.T) {
	cfg := testLLMConfig()
	primary := &scriptedProvider{providerType: config.ProviderGemini, script: []scriptedReply{
		fail("503 service unavailable"),
	}}
	fallback := &scriptedProvider{providerType: config.ProviderOpenAI, script: []scriptedReply{
		fail("503 service unavailable"),
	}}
	gw, err := NewGateway(cfg, primary, fallback)
	require.NoError(t, err)

	_, err = gw.Invoke(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, cfg.Primary, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAllRetriesFailed)

	var ce *CallError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, string(config.ProviderOpenAI), ce.Provider)
	assert.Equal(t, 3, primary.callCount())
	assert.Equal(t, 2, fallback.callCount())
}

func TestInvokeStructured_ParsesJSON(t *testing.T) {
	cfg := testLLMConfig()
	primary := &scriptedProvider{providerType: config.ProviderGemini, script: []scriptedReply{
		ok(`{"title": "Attention Is All You Need", "score": 5}`),
	}}
	fallback := &scriptedProvider{providerType: config.ProviderOpenAI, script: []scriptedReply{ok("never")}}
	gw, err := NewGateway(cfg, primary, fallback)
	require.NoError(t, err)

	var out struct {
		Title string `json:"title"`
		Score int    `json:"score"`
	}
	_, err = gw.InvokeStructured(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, cfg.Primary, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "Attention Is All You Need", out.Title)
	assert.Equal(t, 5, out.Score)
}

func TestInvokeStructured_StripsCodeFence(t *testing.T) {
	cfg := testLLMConfig()
	primary := &scriptedProvider{providerType: config.ProviderGemini, script: []scriptedReply{
		ok("```json\n{\"title\": \"fenced\"}\n```"),
	}}
	fallback := &scriptedProvider{providerType: config.ProviderOpenAI, script: []scriptedReply{ok("never")}}
	gw, err := NewGateway(cfg, primary, fallback)
	require.NoError(t, err)

	var out struct {
		Title string `json:"title"`
	}
	_, err = gw.InvokeStructured(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, cfg.Primary, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "fenced", out.Title)
}

func TestInvokeStructured_RetriesOnUnparsableOutput(t *testing.T) {
	cfg := testLLMConfig()
	primary := &scriptedProvider{providerType: config.ProviderGemini, script: []scriptedReply{
		ok("sorry, I cannot produce JSON"),
		ok(`{"title": "second try"}`),
	}}
	fallback := &scriptedProvider{providerType: config.ProviderOpenAI, script: []scriptedReply{ok("never")}}
	gw, err := NewGateway(cfg, primary, fallback)
	require.NoError(t, err)

	var out struct {
		Title string `json:"title"`
	}
	_, err = gw.InvokeStructured(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, cfg.Primary, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "second try", out.Title)
	assert.Equal(t, 2, primary.callCount())
}

func TestClassify(t *testing.T) {
	assert.Equal(t, KindTransient, classify(fmt.Errorf("429 too many requests")))
	assert.Equal(t, KindTransient, classify(fmt.Errorf("rate limit exceeded")))
	assert.Equal(t, KindTransient, classify(fmt.Errorf("connection reset by peer")))
	assert.Equal(t, KindTimeout, classify(context.DeadlineExceeded))
	assert.Equal(t, KindFatal, classify(context.Canceled))
	assert.Equal(t, KindFatal, classify(fmt.Errorf("invalid api key")))
}
