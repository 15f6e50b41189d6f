package paper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExternalID(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"https://arxiv.org/abs/2401.00001", "2401.00001", false},
		{"https://arxiv.org/abs/2401.00001v3", "2401.00001", false},
		{"https://arxiv.org/pdf/2401.00001.pdf", "2401.00001", false},
		{"http://arxiv.org/html/1706.03762v7", "1706.03762", false},
		{"2401.00001", "2401.00001", false},
		{"https://example.com/paper", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := ParseExternalID(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

const absPage = `<!DOCTYPE html><html><body>
<h1 class="title mathjax"><span class="descriptor">Title:</span>Attention Is All You Need</h1>
<div class="authors"><a href="#">Ashish Vaswani</a>, <a href="#">Noam Shazeer</a></div>
<div class="dateline">(Submitted on 12 Jun 2017)</div>
<blockquote class="abstract mathjax"><span class="descriptor">Abstract:</span>
The dominant sequence transduction models are based on complex recurrent
or convolutional neural networks.
</blockquote>
</body></html>`

func TestFetch_ParsesAbstractPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/abs/1706.03762", r.URL.Path)
		_, _ = w.Write([]byte(absPage))
	}))
	defer srv.Close()

	client := NewClient(5*time.Second, srv.URL)
	meta, err := client.Fetch(context.Background(), "https://arxiv.org/abs/1706.03762v7")
	require.NoError(t, err)

	assert.Equal(t, "1706.03762", meta.ExternalID)
	assert.Equal(t, "Attention Is All You Need", meta.Title)
	assert.Equal(t, "Ashish Vaswani, Noam Shazeer", meta.Authors)
	assert.Contains(t, meta.Abstract, "sequence transduction models")
	// Markup whitespace is collapsed.
	assert.NotContains(t, meta.Abstract, "\n")
	assert.Equal(t, time.Date(2017, 6, 12, 0, 0, 0, 0, time.UTC), meta.PublishedAt)
}

func TestFetch_MissingTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body>not an abs page</body></html>"))
	}))
	defer srv.Close()

	client := NewClient(5*time.Second, srv.URL)
	_, err := client.Fetch(context.Background(), "2401.00001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no title")
}

func TestFetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(5*time.Second, srv.URL)
	_, err := client.Fetch(context.Background(), "2401.00001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestFetchFullText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/html/2401.00001", r.URL.Path)
		_, _ = w.Write([]byte(`<html><body>
			<script>ignore()</script>
			<h1>Introduction</h1>
			<p>First paragraph.</p>
			<p>Second paragraph.</p>
		</body></html>`))
	}))
	defer srv.Close()

	client := NewClient(5*time.Second, srv.URL)
	text, err := client.FetchFullText(context.Background(), "2401.00001")
	require.NoError(t, err)
	assert.Contains(t, text, "Introduction")
	assert.Contains(t, text, "First paragraph.")
	assert.NotContains(t, text, "ignore()")
}

func TestFetchFullText_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body></body></html>"))
	}))
	defer srv.Close()

	client := NewClient(5*time.Second, srv.URL)
	_, err := client.FetchFullText(context.Background(), "2401.00001")
	assert.Error(t, err)
}
