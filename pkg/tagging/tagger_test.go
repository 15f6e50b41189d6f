package tagging

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rainzero1960/paperscout/pkg/config"
	"github.com/rainzero1960/paperscout/pkg/llm"
	"github.com/rainzero1960/paperscout/pkg/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSVLine(t *testing.T) {
	cases := []struct {
		name   string
		answer string
		want   []string
	}{
		{"plain", "NLP,Transformer,Attention", []string{"NLP", "Transformer", "Attention"}},
		{"whitespace", "  NLP ,  Transformer , Attention  ", []string{"NLP", "Transformer", "Attention"}},
		{"case insensitive", "nlp,transformer", []string{"NLP", "Transformer"}},
		{"unknown dropped", "NLP,MadeUpTag,Transformer", []string{"NLP", "Transformer"}},
		{"duplicates collapse", "NLP,nlp,NLP", []string{"NLP"}},
		{"code fence", "```\nNLP,Transformer\n```", []string{"NLP", "Transformer"}},
		{"prose then tags", "選んだタグは以下です。\nNLP,Transformer", []string{"NLP", "Transformer"}},
		{"nothing valid", "すみません、わかりません。", nil},
		{"empty", "", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseCSVLine(tc.answer))
		})
	}
}

func TestMergeWithLevelTags(t *testing.T) {
	merged := MergeWithLevelTags("Favourite,OldStuff", []string{"NLP", "Transformer"})
	assert.Equal(t, "Favourite,NLP,Transformer", merged)

	// Level tags survive, stale content tags do not.
	assert.NotContains(t, merged, "OldStuff")
}

func TestHasContentTags(t *testing.T) {
	assert.False(t, HasContentTags(""))
	assert.False(t, HasContentTags("Favourite,Recommended"))
	assert.True(t, HasContentTags("Favourite,NLP"))
	assert.True(t, HasContentTags("Transformer"))
}

func TestIsLevelTag(t *testing.T) {
	assert.True(t, IsLevelTag("Favourite"))
	assert.True(t, IsLevelTag("NotInterested"))
	assert.True(t, IsLevelTag("Recommended"))
	assert.False(t, IsLevelTag("NLP"))
}

func TestRulesText_ListsAllCategories(t *testing.T) {
	rules := RulesText()
	for _, cat := range []string{"Modality", "Task", "Architecture", "Techniques", "Evaluation"} {
		assert.Contains(t, rules, cat)
	}
	assert.Contains(t, rules, "カンマ区切り")
}

// scripted provider for driving the gateway in tagger tests.
type scriptedProvider struct {
	providerType config.ProviderType
	replies      []string
	calls        atomic.Int32
}

func (p *scriptedProvider) Generate(_ context.Context, _ []llm.Message, _ string, _ *llm.Options) (*llm.Result, error) {
	idx := int(p.calls.Add(1)) - 1
	if idx >= len(p.replies) {
		idx = len(p.replies) - 1
	}
	return &llm.Result{Text: p.replies[idx]}, nil
}

func (p *scriptedProvider) Type() config.ProviderType {
	return p.providerType
}

type promptStore struct{}

func (promptStore) CustomPrompt(context.Context, string, string) (*prompt.StoredPrompt, error) {
	return nil, prompt.ErrNotFound
}
func (promptStore) PersonaPrompt(context.Context, string) (*prompt.StoredPrompt, error) {
	return nil, prompt.ErrNotFound
}
func (promptStore) Profile(context.Context, string) (*prompt.Profile, error) {
	return &prompt.Profile{Name: "田中", Character: prompt.CharacterNone}, nil
}
func (promptStore) Group(context.Context, string, string) (*prompt.StoredGroup, error) {
	return nil, prompt.ErrNotFound
}

func newTestGateway(t *testing.T, primary, fallback *scriptedProvider) *llm.Gateway {
	t.Helper()
	cfg := &config.LLMConfig{
		Primary:         config.ModelSpec{Provider: config.ProviderGemini, Model: "gemini-2.0-flash"},
		Fallback:        config.ModelSpec{Provider: config.ProviderOpenAI, Model: "gpt-4o-mini"},
		CallTimeout:     time.Second,
		RetryBackoff:    time.Millisecond,
		MaxRetries:      3,
		FailThreshold:   3,
		FallbackRetries: 3,
	}
	gw, err := llm.NewGateway(cfg, primary, fallback)
	require.NoError(t, err)
	return gw
}

func TestGenerateTags_FirstAttemptSucceeds(t *testing.T) {
	primary := &scriptedProvider{providerType: config.ProviderGemini, replies: []string{"NLP, Transformer, Attention"}}
	fallback := &scriptedProvider{providerType: config.ProviderOpenAI, replies: []string{"never"}}
	tagger := NewTagger(newTestGateway(t, primary, fallback), prompt.NewResolver(promptStore{}))

	tags, err := tagger.GenerateTags(context.Background(), "u1", "要約本文")
	require.NoError(t, err)
	assert.Equal(t, []string{"NLP", "Transformer", "Attention"}, tags)
	assert.Equal(t, int32(1), primary.calls.Load())
	assert.Equal(t, int32(0), fallback.calls.Load())
}

func TestGenerateTags_FallsBackAfterThreeInvalidAnswers(t *testing.T) {
	primary := &scriptedProvider{providerType: config.ProviderGemini, replies: []string{"わかりません"}}
	fallback := &scriptedProvider{providerType: config.ProviderOpenAI, replies: []string{"Vision,Diffusion"}}
	tagger := NewTagger(newTestGateway(t, primary, fallback), prompt.NewResolver(promptStore{}))

	tags, err := tagger.GenerateTags(context.Background(), "u1", "要約本文")
	require.NoError(t, err)
	assert.Equal(t, []string{"Vision", "Diffusion"}, tags)
	assert.Equal(t, int32(3), primary.calls.Load())
	assert.Equal(t, int32(1), fallback.calls.Load())
}

func TestGenerateTags_TotalFailure(t *testing.T) {
	primary := &scriptedProvider{providerType: config.ProviderGemini, replies: []string{"no tags here"}}
	fallback := &scriptedProvider{providerType: config.ProviderOpenAI, replies: []string{"also nothing"}}
	tagger := NewTagger(newTestGateway(t, primary, fallback), prompt.NewResolver(promptStore{}))

	_, err := tagger.GenerateTags(context.Background(), "u1", "要約本文")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoValidTags)
	assert.Equal(t, int32(3), primary.calls.Load())
	assert.Equal(t, int32(3), fallback.calls.Load())
}

func TestGenerateTags_SingleTagIsRejected(t *testing.T) {
	primary := &scriptedProvider{providerType: config.ProviderGemini, replies: []string{"NLP", "NLP,Transformer"}}
	fallback := &scriptedProvider{providerType: config.ProviderOpenAI, replies: []string{"never"}}
	tagger := NewTagger(newTestGateway(t, primary, fallback), prompt.NewResolver(promptStore{}))

	tags, err := tagger.GenerateTags(context.Background(), "u1", "要約本文")
	require.NoError(t, err)
	assert.Equal(t, []string{"NLP", "Transformer"}, tags)
	assert.Equal(t, int32(2), primary.calls.Load())
}
