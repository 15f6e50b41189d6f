package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateDisplayNameOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPut, "/auth/display_name", "alice", map[string]any{
		"display_name": "Alice A.",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Alice A.", decodeBody(t, rec)["display_name"])
}

func TestSelectCharacterWithoutPapers(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/auth/select_character", "alice", map[string]any{
		"character": "sakura",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)

	// No papers, nothing to regenerate.
	assert.Equal(t, false, body["bulk_started"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "sakura", user["selected_character"])

	rec = ts.do(t, http.MethodPost, "/auth/select_character", "alice", map[string]any{
		"character": "raiden",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBulkProgressIdleAndRunning(t *testing.T) {
	ts := newTestServer(t)

	// No run ever started in this process.
	rec := ts.do(t, http.MethodGet, "/auth/character-selection-bulk-update-progress", "alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["is_running"])

	// A registry entry is reflected as-is.
	me := decodeBody(t, ts.do(t, http.MethodGet, "/auth/me", "alice", nil))
	ts.registry.Start(me["id"].(string), 7)

	body = decodeBody(t, ts.do(t, http.MethodGet, "/auth/character-selection-bulk-update-progress", "alice", nil))
	assert.Equal(t, true, body["is_running"])
	assert.Equal(t, float64(7), body["total"])
}
