package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rainzero1960/paperscout/pkg/models"
)

// ListPapers handles GET /papers. Links are ordered by most recently
// updated first.
func (s *Server) ListPapers(c *gin.Context) {
	links, err := s.svc.Papers.ListLinks(c.Request.Context(), currentUserID(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"papers": models.NewPaperLinks(links)})
}

// GetPaper handles GET /papers/:paper_id. Reading a paper bumps its
// last-accessed time.
func (s *Server) GetPaper(c *gin.Context) {
	ctx := c.Request.Context()
	userID := currentUserID(c)
	paperID := c.Param("paper_id")

	link, err := s.svc.Papers.GetLink(ctx, userID, paperID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	meta, err := s.svc.Papers.GetPaper(ctx, paperID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if err := s.svc.Papers.Touch(ctx, userID, paperID); err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"paper": models.NewPaper(meta),
		"link":  models.NewPaperLink(link),
	})
}

// UpdatePaperTags handles PUT /papers/:paper_id/tags.
func (s *Server) UpdatePaperTags(c *gin.Context) {
	var req updateTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := s.svc.Papers.UpdateTags(c.Request.Context(), currentUserID(c), c.Param("paper_id"), req.Tags)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewPaperLink(link))
}

// UpdatePaperMemo handles PUT /papers/:paper_id/memo.
func (s *Server) UpdatePaperMemo(c *gin.Context) {
	var req updateMemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := s.svc.Papers.UpdateMemo(c.Request.Context(), currentUserID(c), c.Param("paper_id"), req.Memo)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewPaperLink(link))
}

// SetPaperSelection handles PUT /papers/:paper_id/selection. At most
// one of the two summary ids may be set; empty ids clear the selection.
func (s *Server) SetPaperSelection(c *gin.Context) {
	var req setSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := s.svc.Papers.SetSelection(c.Request.Context(), currentUserID(c), c.Param("paper_id"),
		req.SelectedDefaultSummaryID, req.SelectedCustomSummaryID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewPaperLink(link))
}

// DeletePaper handles DELETE /papers/:paper_id. Removes the caller's
// link, their summaries, and their vector; shared metadata survives for
// other users.
func (s *Server) DeletePaper(c *gin.Context) {
	if err := s.svc.Papers.DeleteLink(c.Request.Context(), currentUserID(c), c.Param("paper_id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RecommendPapers handles POST /papers/recommend. Picks from untagged
// papers near the user's favourites and tags them; returns the link ids
// that were tagged this run.
func (s *Server) RecommendPapers(c *gin.Context) {
	picked, err := s.svc.Recommend.Recommend(c.Request.Context(), currentUserID(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if picked == nil {
		picked = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"recommended_link_ids": picked})
}
