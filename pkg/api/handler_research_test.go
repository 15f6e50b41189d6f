package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResearchStartRejectsMissingQuery(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/deepresearch/start", "alice", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResearchStartCreatesSession(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/deeprag/start", "alice", map[string]any{
		"query": "what is attention?",
	})
	require.Equal(t, http.StatusAccepted, rec.Code)
	sessionID := decodeBody(t, rec)["session_id"].(string)
	require.NotEmpty(t, sessionID)

	status := decodeBody(t, ts.do(t, http.MethodGet, "/deeprag/sessions/"+sessionID+"/status", "alice", nil))
	assert.Equal(t, sessionID, status["session_id"])
	assert.NotEmpty(t, status["status"])

	list := decodeBody(t, ts.do(t, http.MethodGet, "/deeprag/sessions", "alice", nil))
	require.Len(t, list["sessions"], 1)

	// Sessions are invisible on the other category and to other users.
	other := decodeBody(t, ts.do(t, http.MethodGet, "/deepresearch/sessions", "alice", nil))
	assert.Len(t, other["sessions"], 0)
	rec = ts.do(t, http.MethodGet, "/deeprag/sessions/"+sessionID+"/status", "bob", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResearchSessionStatusNotFound(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/deepresearch/sessions/nope/status", "alice", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRAGQueryRejectsMissingQuestion(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/rag/query", "alice", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRAGRunStatusNotFound(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/rag/sessions/nope/status", "alice", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
