package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rainzero1960/paperscout/pkg/llm"
	"github.com/rainzero1960/paperscout/pkg/ragagent"
	"github.com/rainzero1960/paperscout/pkg/services"
	"github.com/rainzero1960/paperscout/pkg/summary"
)

// mapServiceError maps service-layer errors to HTTP error responses and
// writes the JSON body. Unexpected errors are logged with their cause
// and surfaced as an opaque 500.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
		return
	}
	if errors.Is(err, summary.ErrBulkAlreadyRunning) || errors.Is(err, ragagent.ErrAlreadyRunning) {
		c.JSON(http.StatusConflict, gin.H{"error": "a run is already in progress"})
		return
	}

	slog.Error("Unexpected service error",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// mapGenerationError is mapServiceError for the summary-generation
// endpoints: model failures keep their kind but lose their cause in the
// response body.
func mapGenerationError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}

	slog.Error("Summary generation failed",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": redactGenerationError(err)})
}

// redactGenerationError builds the user-facing failure message. The
// classification survives; the provider's raw error text does not.
func redactGenerationError(err error) string {
	kind := llm.KindFatal
	var ce *llm.CallError
	if errors.As(err, &ce) {
		kind = ce.Kind
	} else if llm.IsTimeout(err) {
		kind = llm.KindTimeout
	}
	return fmt.Sprintf("要約生成に失敗しました: %s", kind)
}
