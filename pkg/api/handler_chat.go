package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rainzero1960/paperscout/pkg/models"
)

// CreateChatSession handles POST /chat/sessions. The caller must own a
// link to the paper.
func (s *Server) CreateChatSession(c *gin.Context) {
	var req createChatSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := s.svc.Chat.CreateSession(c.Request.Context(), currentUserID(c), req.PaperID, req.Title)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.NewPaperChatSession(session))
}

// ListChatSessions handles GET /chat/sessions. An optional paper_id
// query narrows the list to one paper.
func (s *Server) ListChatSessions(c *gin.Context) {
	sessions, err := s.svc.Chat.ListSessions(c.Request.Context(), currentUserID(c), c.Query("paper_id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": models.NewPaperChatSessions(sessions)})
}

// ListChatMessages handles GET /chat/sessions/:session_id/messages.
func (s *Server) ListChatMessages(c *gin.Context) {
	msgs, err := s.svc.Chat.ListMessages(c.Request.Context(), currentUserID(c), c.Param("session_id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": models.NewPaperChatMessages(msgs)})
}

// SendChatMessage handles POST /chat/sessions/:session_id/messages.
// The user turn is persisted, the assistant answer is generated inline,
// and both land in the message log.
func (s *Server) SendChatMessage(c *gin.Context) {
	var req sendChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := s.svc.Chat.SendMessage(c.Request.Context(), currentUserID(c), c.Param("session_id"),
		req.Content, req.UseCharacterPrompt)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewPaperChatMessage(answer))
}
