package webtool

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rainzero1960/paperscout/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *config.WebToolConfig {
	return &config.WebToolConfig{
		SearchAPIKey:  "tvly-test",
		SearchBaseURL: baseURL,
		MaxResults:    5,
		HTTPTimeout:   5 * time.Second,
	}
}

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search", r.URL.Path)
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "tvly-test", req["api_key"])
		assert.Equal(t, "diffusion models", req["query"])
		assert.Equal(t, float64(5), req["max_results"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"title": "Paper A", "url": "https://a.example", "content": "snippet", "score": 0.9},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	results, err := client.Search(context.Background(), "diffusion models")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Paper A", results[0].Title)
	assert.Equal(t, 0.9, results[0].Score)
}

func TestSearch_Disabled(t *testing.T) {
	client := NewClient(&config.WebToolConfig{HTTPTimeout: time.Second})
	assert.False(t, client.Enabled())
	_, err := client.Search(context.Background(), "q")
	assert.Error(t, err)
}

func TestSearch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.Search(context.Background(), "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 429")
}

func TestExtract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>Page Title</title></head><body>
			<script>junk()</script>
			<p>Useful text.</p>
		</body></html>`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	text, err := client.Extract(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "# Page Title")
	assert.Contains(t, text, "Useful text.")
	assert.NotContains(t, text, "junk()")
}

func TestExtract_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body><script>only</script></body></html>"))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.Extract(context.Background(), srv.URL)
	assert.Error(t, err)
}
