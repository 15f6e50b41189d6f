package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rainzero1960/paperscout/pkg/llm"
	"github.com/rainzero1960/paperscout/pkg/models"
	"github.com/rainzero1960/paperscout/pkg/services"
)

// RAGQuery handles POST /rag/query, the synchronous single-shot
// variant.
func (s *Server) RAGQuery(c *gin.Context) {
	var req ragQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := s.svc.RAG.Query(c.Request.Context(), currentUserID(c), toQueryRequest(req))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewRAGResponse(resp))
}

// RAGStartAsync handles POST /rag/start_async. One run per user at a
// time; the returned id is polled on the status endpoint.
func (s *Server) RAGStartAsync(c *gin.Context) {
	var req ragQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	runID, err := s.svc.RAG.StartAsync(c.Request.Context(), currentUserID(c), toQueryRequest(req))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"session_id": runID})
}

// RAGRunStatus handles GET /rag/sessions/:run_id/status.
func (s *Server) RAGRunStatus(c *gin.Context) {
	run, err := s.svc.RAG.GetRun(c.Request.Context(), currentUserID(c), c.Param("run_id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewRAGRunStatus(run))
}

func toQueryRequest(req ragQueryRequest) services.QueryRequest {
	history := make([]llm.Message, len(req.History))
	for i, turn := range req.History {
		history[i] = llm.Message{Role: turn.Role, Content: turn.Content}
	}
	return services.QueryRequest{
		Question:     req.Question,
		History:      history,
		Tags:         req.Tags,
		PromptID:     req.PromptID,
		UseCharacter: req.UseCharacterPrompt,
		UseWeb:       req.UseWeb,
	}
}
