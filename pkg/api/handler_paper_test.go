package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSingleSummaryRejectsBadInput(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/papers/generate_single_summary", "alice", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodPost, "/papers/generate_single_summary", "alice", map[string]any{
		"url": "not an arxiv url",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPaperNotFoundMapping(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/papers/nope", "alice", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/papers/nope", "alice", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodPut, "/papers/nope/tags", "alice", map[string]any{"tags": "NLP"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListPapersEmpty(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/papers", "alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["papers"], 0)
}

func TestRecommendEmptyCorpus(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/papers/recommend", "alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["recommended_link_ids"], 0)
}

func TestCheckDuplicationsEmptyCorpus(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/papers/check_duplications", "alice", map[string]any{
		"urls": []string{"https://arxiv.org/abs/2406.01234"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Len(t, body["existing_vector_urls"], 0)
	assert.Len(t, body["existing_summary_info"], 0)
}

func TestEditedSummaryValidationAndNotFound(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPut, "/summaries/edited", "alice", map[string]any{
		"default_summary_id": "ds-1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodPut, "/summaries/edited", "alice", map[string]any{
		"default_summary_id": "ds-1",
		"custom_summary_id":  "cs-1",
		"body":               "x",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodPut, "/summaries/edited", "alice", map[string]any{
		"default_summary_id": "ds-1",
		"body":               "x",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodGet, "/summaries/edited", "alice", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodGet, "/summaries/edited?default_summary_id=ds-1", "alice", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChatSessionRequiresLink(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/chat/sessions", "alice", map[string]any{
		"paper_id": "nope",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
