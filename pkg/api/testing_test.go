package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/rainzero1960/paperscout/pkg/config"
	"github.com/rainzero1960/paperscout/pkg/database"
	"github.com/rainzero1960/paperscout/pkg/jobs"
	"github.com/rainzero1960/paperscout/pkg/llm"
	"github.com/rainzero1960/paperscout/pkg/paper"
	"github.com/rainzero1960/paperscout/pkg/prompt"
	"github.com/rainzero1960/paperscout/pkg/services"
	"github.com/rainzero1960/paperscout/pkg/summary"
	"github.com/rainzero1960/paperscout/pkg/tagging"
	"github.com/rainzero1960/paperscout/pkg/vector"
	testdb "github.com/rainzero1960/paperscout/test/database"
)

// scriptedProvider replays canned results in order.
type scriptedProvider struct {
	mu     sync.Mutex
	script []*llm.Result
	calls  int
}

func (p *scriptedProvider) Generate(_ context.Context, _ []llm.Message, _ string, _ *llm.Options) (*llm.Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	i := p.calls
	p.calls++
	if i >= len(p.script) {
		return nil, fmt.Errorf("script exhausted at call %d", i+1)
	}
	out := *p.script[i]
	return &out, nil
}

func (p *scriptedProvider) Type() config.ProviderType { return config.ProviderGemini }

// fakeVectorStore is an in-memory vector.Store for handler tests.
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

// testServer wires the full service stack over a test database with a
// scripted model provider and an in-memory vector store.
type testServer struct {
	engine   *gin.Engine
	client   *database.Client
	provider *scriptedProvider
	registry *jobs.Registry
}

func newTestServer(t *testing.T, script ...*llm.Result) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := testdb.NewTestClient(t)

	provider := &scriptedProvider{script: script}
	gateway, err := llm.NewGateway(&config.LLMConfig{
		Primary:         config.ModelSpec{Provider: config.ProviderGemini, Model: "test-model"},
		Fallback:        config.ModelSpec{Provider: config.ProviderGemini, Model: "test-fallback"},
		CallTimeout:     5 * time.Second,
		RetryBackoff:    time.Millisecond,
		MaxRetries:      1,
		FailThreshold:   99,
		FallbackRetries: 1,
	}, provider)
	require.NoError(t, err)

	store := newFakeVectorStore()
	indexer := vector.NewIndexer(unitEmbedder{}, store, 10)
	registry := jobs.NewRegistry()

	arxiv := paper.NewClient(2*time.Second, "http://127.0.0.1:1")
	papers := services.NewPaperService(client.Client, arxiv, store)
	prompts := services.NewPromptService(client.Client)
	resolver := prompt.NewResolver(prompts)

	cfg := &config.CoordinatorConfig{
		PollInterval: 10 * time.Millisecond,
		WaitTimeout:  2 * time.Second,
	}
	repo := services.NewSummaryRepo(client.Client)
	coordinator := summary.NewCoordinator(repo, cfg)
	bulk := summary.NewBulkRunner(&config.BulkConfig{PaperWorkers: 1, PromptWorkers: 1}, registry)
	summaries := services.NewSummaryService(client.Client, papers, coordinator, gateway, resolver,
		indexer, tagging.NewTagger(gateway, resolver), registry, bulk, cfg)

	svc := Services{
		Users:     services.NewUserService(client.Client),
		Papers:    papers,
		Prompts:   prompts,
		Summaries: summaries,
		Research:  services.NewResearchService(client.Client, gateway, resolver, indexer, nil, nil),
		RAG:       services.NewRAGService(client.Client, gateway, resolver, indexer, nil, registry, nil),
		Chat:      services.NewPaperChatService(client.Client, papers, gateway, resolver, cfg),
		Recommend: services.NewRecommendService(client.Client, papers, store),
	}

	srv := NewServer(client, svc, registry)
	return &testServer{
		engine:   srv.Router(),
		client:   client,
		provider: provider,
		registry: registry,
	}
}

// do performs one JSON request. An empty token leaves the Authorization
// header unset.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.engine.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
