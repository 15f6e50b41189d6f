package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rainzero1960/paperscout/pkg/models"
	"github.com/rainzero1960/paperscout/pkg/services"
)

// Me handles GET /auth/me.
func (s *Server) Me(c *gin.Context) {
	user, err := s.svc.Users.Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewUser(user))
}

// UpdateDisplayName handles PUT /auth/display_name.
func (s *Server) UpdateDisplayName(c *gin.Context) {
	var req updateDisplayNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := s.svc.Users.UpdateDisplayName(c.Request.Context(), currentUserID(c), req.DisplayName)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewUser(user))
}

// SelectCharacter handles POST /auth/select_character. Switching the
// character kicks off a background regeneration of the user's default
// summaries in the new voice; progress is readable on the bulk progress
// endpoint. The selection itself succeeds even when a bulk run is
// already in flight.
func (s *Server) SelectCharacter(c *gin.Context) {
	var req selectCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	userID := currentUserID(c)

	user, err := s.svc.Users.SelectCharacter(ctx, userID, req.Character)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	links, err := s.svc.Papers.ListLinks(ctx, userID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	bulkStarted := false
	if len(links) > 0 {
		papers := make([]services.BulkPaper, len(links))
		for i, link := range links {
			papers[i] = services.BulkPaper{PaperID: link.PaperID, PromptIDs: []string{""}}
		}
		bulkStarted = s.svc.Summaries.StartBulk(userID, papers) == nil
	}

	c.JSON(http.StatusOK, gin.H{
		"user":         models.NewUser(user),
		"bulk_started": bulkStarted,
	})
}

// SetAffinity handles POST /auth/affinity.
func (s *Server) SetAffinity(c *gin.Context) {
	var req setAffinityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := s.svc.Users.SetAffinity(c.Request.Context(), currentUserID(c), req.Character, req.Level)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewUser(user))
}

// AddPoints handles POST /auth/points.
func (s *Server) AddPoints(c *gin.Context) {
	var req addPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := s.svc.Users.AddPoints(c.Request.Context(), currentUserID(c), req.Delta)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewUser(user))
}

// BulkUpdateProgress handles
// GET /auth/character-selection-bulk-update-progress.
func (s *Server) BulkUpdateProgress(c *gin.Context) {
	st, ok := s.registry.Get(currentUserID(c))
	c.JSON(http.StatusOK, models.NewBulkProgress(st, ok))
}
