package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rainzero1960/paperscout/pkg/config"
	"github.com/rainzero1960/paperscout/pkg/llm"
	"github.com/rainzero1960/paperscout/pkg/vector"
)

// scriptedProvider replays canned results in order.
type scriptedProvider struct {
	mu      sync.Mutex
	script  []*llm.Result
	errs    []error
	calls   int
	gotMsgs [][]llm.Message
}

func (p *scriptedProvider) Generate(_ context.Context, messages []llm.Message, _ string, _ *llm.Options) (*llm.Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gotMsgs = append(p.gotMsgs, messages)
	i := p.calls
	p.calls++
	if i < len(p.errs) && p.errs[i] != nil {
		return nil, p.errs[i]
	}
	if i >= len(p.script) {
		return nil, fmt.Errorf("script exhausted at call %d", i+1)
	}
	out := *p.script[i]
	return &out, nil
}

func (p *scriptedProvider) Type() config.ProviderType { return config.ProviderGemini }

func newTestGateway(t *testing.T, script ...*llm.Result) (*llm.Gateway, *scriptedProvider) {
	t.Helper()
	provider := &scriptedProvider{script: script}
	gw, err := llm.NewGateway(&config.LLMConfig{
		Primary:         config.ModelSpec{Provider: config.ProviderGemini, Model: "test-model"},
		Fallback:        config.ModelSpec{Provider: config.ProviderGemini, Model: "test-fallback"},
		CallTimeout:     5 * time.Second,
		RetryBackoff:    time.Millisecond,
		MaxRetries:      1,
		FailThreshold:   99,
		FallbackRetries: 1,
	}, provider)
	require.NoError(t, err)
	return gw, provider
}

// fakeVectorStore is an in-memory vector.Store for service tests.
type fakeVectorStore struct {
	mu   sync.Mutex
	docs map[string]vector.Document
}

func newFakeVectorStore() *fakeVectorStore {
	return &fakeVectorStore{docs: make(map[string]vector.Document)}
}

func (f *fakeVectorStore) Add(_ context.Context, docs []vector.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range docs {
		f.docs[d.ID] = d
	}
	return nil
}

func (f *fakeVectorStore) DeleteByFilter(_ context.Context, cond vector.Condition) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, d := range f.docs {
		if cond.Matches(d.Metadata) {
			delete(f.docs, id)
		}
	}
	return nil
}

func (f *fakeVectorStore) SearchByVector(_ context.Context, _ []float32, k int, filter *vector.Filter) ([]vector.SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []vector.SearchResult
	for _, d := range f.docs {
		if filter.Matches(d.Metadata) {
			out = append(out, vector.SearchResult{Document: d, Score: 1})
		}
		if len(out) == k {
			break
		}
	}
	return out, nil
}

func (f *fakeVectorStore) GetEmbeddings(_ context.Context, keys []vector.Key) (map[vector.Key][]float32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[vector.Key][]float32)
	for _, key := range keys {
		if d, ok := f.docs[vector.DocumentID(key.UserID, key.PaperID)]; ok {
			out[key] = d.Embedding
		}
	}
	return out, nil
}

func (f *fakeVectorStore) BatchExists(_ context.Context, userID string, paperIDs []string) (map[string]bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]bool, len(paperIDs))
	for _, pid := range paperIDs {
		_, ok := f.docs[vector.DocumentID(userID, pid)]
		out[pid] = ok
	}
	return out, nil
}

var _ vector.Store = (*fakeVectorStore)(nil)

// unitEmbedder returns a fixed unit vector per text.
type unitEmbedder struct{}

func (unitEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1, 0, 0}
	}
	return out, nil
}
