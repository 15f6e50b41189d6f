package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rainzero1960/paperscout/pkg/models"
	"github.com/rainzero1960/paperscout/pkg/services"
)

// CreatePrompt handles POST /prompts.
func (s *Server) CreatePrompt(c *gin.Context) {
	var req createPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := s.svc.Prompts.CreatePrompt(c.Request.Context(), currentUserID(c), services.CreatePromptRequest{
		Type:     req.Type,
		Name:     req.Name,
		Body:     req.Body,
		Category: req.Category,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.NewPrompt(row))
}

// ListPrompts handles GET /prompts. An optional type query filters by
// prompt type; results include ownerless global prompts.
func (s *Server) ListPrompts(c *gin.Context) {
	rows, err := s.svc.Prompts.ListPrompts(c.Request.Context(), currentUserID(c), c.Query("type"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"prompts": models.NewPrompts(rows)})
}

// UpdatePrompt handles PUT /prompts/:prompt_id. Only the owner may
// update; edits mark dependent summaries as stale.
func (s *Server) UpdatePrompt(c *gin.Context) {
	var req updatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := s.svc.Prompts.UpdatePrompt(c.Request.Context(), currentUserID(c), c.Param("prompt_id"), services.UpdatePromptRequest{
		Name:     req.Name,
		Body:     req.Body,
		IsActive: req.IsActive,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewPrompt(row))
}

// DeletePrompt handles DELETE /prompts/:prompt_id.
func (s *Server) DeletePrompt(c *gin.Context) {
	if err := s.svc.Prompts.DeletePrompt(c.Request.Context(), currentUserID(c), c.Param("prompt_id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreatePromptGroup handles POST /prompt-groups.
func (s *Server) CreatePromptGroup(c *gin.Context) {
	var req createPromptGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := s.svc.Prompts.CreateGroup(c.Request.Context(), currentUserID(c), services.CreateGroupRequest{
		Name:          req.Name,
		Category:      req.Category,
		CoordinatorID: req.CoordinatorID,
		PlannerID:     req.PlannerID,
		SupervisorID:  req.SupervisorID,
		AgentID:       req.AgentID,
		SummaryID:     req.SummaryID,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.NewPromptGroup(row))
}

// ListPromptGroups handles GET /prompt-groups. An optional category
// query filters by research category.
func (s *Server) ListPromptGroups(c *gin.Context) {
	rows, err := s.svc.Prompts.ListGroups(c.Request.Context(), currentUserID(c), c.Query("category"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": models.NewPromptGroups(rows)})
}

// DeletePromptGroup handles DELETE /prompt-groups/:group_id.
func (s *Server) DeletePromptGroup(c *gin.Context) {
	if err := s.svc.Prompts.DeleteGroup(c.Request.Context(), currentUserID(c), c.Param("group_id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
