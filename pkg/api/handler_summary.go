package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rainzero1960/paperscout/pkg/models"
	"github.com/rainzero1960/paperscout/pkg/services"
)

// GenerateSingleSummary handles POST /papers/generate_single_summary.
// Concurrent calls for the same key converge on one model invocation.
func (s *Server) GenerateSingleSummary(c *gin.Context) {
	var req generateSingleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.svc.Summaries.GenerateSingle(c.Request.Context(), currentUserID(c), services.GenerateSingleRequest{
		URL:             req.URL,
		PromptID:        req.PromptID,
		CreateEmbedding: req.CreateEmbedding,
		IsFirstForPaper: req.IsFirstForPaper,
		Provider:        req.Provider,
		Model:           req.Model,
	})
	if err != nil {
		mapGenerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewGenerateSingleResponse(result))
}

// GenerateMultipleSummariesParallel handles
// POST /papers/generate_multiple_summaries_parallel. Per-prompt
// failures are reported inline; the call fails only when nothing could
// run at all.
func (s *Server) GenerateMultipleSummariesParallel(c *gin.Context) {
	var req generateParallelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.svc.Summaries.GenerateParallel(c.Request.Context(), currentUserID(c), services.GenerateParallelRequest{
		URL:              req.URL,
		PromptIDs:        req.SelectedPrompts,
		CreateEmbeddings: req.CreateEmbeddings,
		EmbeddingTarget:  services.EmbeddingTarget(req.EmbeddingTarget),
	})
	if err != nil {
		mapGenerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewGenerateParallelResponse(result, redactGenerationError))
}

// ImportFromArxiv handles POST /papers/import_from_arxiv. Convenience
// wrapper over the single-summary flow with first-paper defaults: the
// paper is ingested, summarised, vectorised, and tagged in one call.
func (s *Server) ImportFromArxiv(c *gin.Context) {
	var req importFromArxivRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.svc.Summaries.GenerateSingle(c.Request.Context(), currentUserID(c), services.GenerateSingleRequest{
		URL:             req.URL,
		PromptID:        req.PromptID,
		CreateEmbedding: true,
		IsFirstForPaper: true,
	})
	if err != nil {
		mapGenerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewGenerateSingleResponse(result))
}

// UpsertEditedSummary handles PUT /summaries/edited. The first edit of
// a summary creates the override; later edits replace it.
func (s *Server) UpsertEditedSummary(c *gin.Context) {
	var req upsertEditedSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := s.svc.Papers.UpsertEdited(c.Request.Context(), currentUserID(c),
		req.DefaultSummaryID, req.CustomSummaryID, req.Body, req.OnePoint)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewEditedSummary(row))
}

// GetEditedSummary handles GET /summaries/edited. The target summary is
// named by exactly one of the default_summary_id / custom_summary_id
// query parameters.
func (s *Server) GetEditedSummary(c *gin.Context) {
	row, err := s.svc.Papers.GetEdited(c.Request.Context(), currentUserID(c),
		c.Query("default_summary_id"), c.Query("custom_summary_id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewEditedSummary(row))
}

// CheckDuplications handles POST /papers/check_duplications.
func (s *Server) CheckDuplications(c *gin.Context) {
	var req checkDuplicationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := s.svc.Summaries.CheckDuplications(c.Request.Context(), currentUserID(c), req.URLs)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewDuplicationReport(report))
}

// CheckExistingSummary handles POST /papers/check_existing_summary.
func (s *Server) CheckExistingSummary(c *gin.Context) {
	var req checkExistingSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := s.svc.Summaries.CheckExisting(c.Request.Context(), currentUserID(c), req.URL, req.PromptID, req.Provider, req.Model)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewExistingSummary(existing))
}
