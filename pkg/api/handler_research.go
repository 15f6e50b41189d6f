package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rainzero1960/paperscout/pkg/models"
	"github.com/rainzero1960/paperscout/pkg/services"
)

// startResearch handles POST /deepresearch/start and /deeprag/start.
// A missing session id starts a fresh session; either way the graph run
// is scheduled in the background and the session id is returned for
// status polling.
func (s *Server) startResearch(category string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req researchStartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		userID := currentUserID(c)

		sessionID := req.SessionID
		if sessionID == "" {
			session, err := s.svc.Research.CreateSession(ctx, userID, category, "")
			if err != nil {
				mapServiceError(c, err)
				return
			}
			sessionID = session.ID
		}

		err := s.svc.Research.Start(ctx, userID, services.StartRequest{
			SessionID:    sessionID,
			Query:        req.Query,
			GroupID:      req.SystemPromptGroup,
			UseCharacter: req.UseCharacterPrompt,
			Tags:         req.Tags,
		})
		if err != nil {
			mapServiceError(c, err)
			return
		}

		c.JSON(http.StatusAccepted, gin.H{"session_id": sessionID})
	}
}

// listResearchSessions handles GET /deepresearch/sessions and
// /deeprag/sessions.
func (s *Server) listResearchSessions(category string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions, err := s.svc.Research.ListSessions(c.Request.Context(), currentUserID(c), category)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"sessions": models.NewResearchSessions(sessions)})
	}
}

// ResearchSessionStatus handles GET /…/sessions/:session_id/status.
// Returns the live status plus the full message log, intermediate
// steps included, so clients can render progress.
func (s *Server) ResearchSessionStatus(c *gin.Context) {
	ctx := c.Request.Context()
	userID := currentUserID(c)
	sessionID := c.Param("session_id")

	session, err := s.svc.Research.GetSession(ctx, userID, sessionID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	msgs, err := s.svc.Research.ListMessages(ctx, userID, sessionID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewSessionStatus(session, msgs))
}
