package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerAuthRequired(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/papers", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := ts.do(t, http.MethodGet, "/papers", "   ", nil)
	assert.Equal(t, http.StatusUnauthorized, req.Code)
}

func TestBearerAuthProvisionsUser(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/auth/me", "alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "alice", body["username"])

	// Same token resolves to the same user.
	again := decodeBody(t, ts.do(t, http.MethodGet, "/auth/me", "alice", nil))
	assert.Equal(t, body["id"], again["id"])

	// A different token is a different user.
	other := decodeBody(t, ts.do(t, http.MethodGet, "/auth/me", "bob", nil))
	assert.NotEqual(t, body["id"], other["id"])
}

func TestSecurityHeaders(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
}
