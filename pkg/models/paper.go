package models

import (
	"time"

	"github.com/rainzero1960/paperscout/ent"
)

// Paper is the shared metadata view of one arXiv paper.
type Paper struct {
	ID         string    `json:"id"`
	ExternalID string    `json:"external_id"`
	URL        string    `json:"url"`
	Title      string    `json:"title"`
	Authors    string    `json:"authors"`
	Abstract   string    `json:"abstract"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewPaper converts an ent row.
func NewPaper(p *ent.PaperMetadata) *Paper {
	return &Paper{
		ID:         p.ID,
		ExternalID: p.ExternalID,
		URL:        p.URL,
		Title:      p.Title,
		Authors:    p.Authors,
		Abstract:   p.Abstract,
		CreatedAt:  p.CreatedAt,
	}
}

// PaperLink is the per-user view of a paper.
type PaperLink struct {
	ID                       string     `json:"id"`
	PaperID                  string     `json:"paper_id"`
	Tags                     string     `json:"tags,omitempty"`
	Memo                     string     `json:"memo,omitempty"`
	SelectedDefaultSummaryID string     `json:"selected_default_summary_id,omitempty"`
	SelectedCustomSummaryID  string     `json:"selected_custom_summary_id,omitempty"`
	LastAccessed             *time.Time `json:"last_accessed,omitempty"`
	CreatedAt                time.Time  `json:"created_at"`
}

// NewPaperLink converts an ent row.
func NewPaperLink(l *ent.UserPaperLink) *PaperLink {
	out := &PaperLink{
		ID:        l.ID,
		PaperID:   l.PaperID,
		Tags:      l.Tags,
		Memo:      l.Memo,
		CreatedAt: l.CreatedAt,
	}
	if l.SelectedDefaultSummaryID != nil {
		out.SelectedDefaultSummaryID = *l.SelectedDefaultSummaryID
	}
	if l.SelectedCustomSummaryID != nil {
		out.SelectedCustomSummaryID = *l.SelectedCustomSummaryID
	}
	if l.LastAccessed != nil {
		out.LastAccessed = l.LastAccessed
	}
	return out
}

// NewPaperLinks converts a slice of ent rows.
func NewPaperLinks(links []*ent.UserPaperLink) []*PaperLink {
	out := make([]*PaperLink, len(links))
	for i, l := range links {
		out[i] = NewPaperLink(l)
	}
	return out
}
