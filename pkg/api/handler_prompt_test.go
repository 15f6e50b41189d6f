package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptLifecycleOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/prompts", "alice", map[string]any{
		"type": "paper_summary",
		"name": "concise",
		"body": "Summarise {paper_text} briefly.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)
	promptID := created["id"].(string)
	assert.Equal(t, "paper_summary", created["type"])

	list := decodeBody(t, ts.do(t, http.MethodGet, "/prompts?type=paper_summary", "alice", nil))
	require.Len(t, list["prompts"], 1)

	rec = ts.do(t, http.MethodPut, "/prompts/"+promptID, "alice", map[string]any{"name": "concise v2"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "concise v2", decodeBody(t, rec)["name"])

	// Another user cannot touch it.
	rec = ts.do(t, http.MethodPut, "/prompts/"+promptID, "bob", map[string]any{"name": "stolen"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/prompts/"+promptID, "alice", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/prompts/"+promptID, "alice", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreatePromptRejectsBadShape(t *testing.T) {
	ts := newTestServer(t)

	// Missing body field fails binding.
	rec := ts.do(t, http.MethodPost, "/prompts", "alice", map[string]any{
		"type": "paper_summary",
		"name": "incomplete",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown type fails service validation.
	rec = ts.do(t, http.MethodPost, "/prompts", "alice", map[string]any{
		"type": "unknown_type",
		"name": "bad",
		"body": "text",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPromptGroupLifecycleOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/prompt-groups", "alice", map[string]any{
		"name":     "my research set",
		"category": "deepresearch",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	groupID := decodeBody(t, rec)["id"].(string)

	list := decodeBody(t, ts.do(t, http.MethodGet, "/prompt-groups?category=deepresearch", "alice", nil))
	require.Len(t, list["groups"], 1)

	rec = ts.do(t, http.MethodDelete, "/prompt-groups/"+groupID, "alice", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	list = decodeBody(t, ts.do(t, http.MethodGet, "/prompt-groups", "alice", nil))
	assert.Len(t, list["groups"], 0)
}
