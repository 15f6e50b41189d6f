package models

import (
	"time"

	"github.com/rainzero1960/paperscout/ent"
)

// PaperChatSession is the per-paper chat session view.
type PaperChatSession struct {
	ID               string    `json:"id"`
	PaperID          string    `json:"paper_id"`
	Title            string    `json:"title"`
	ProcessingStatus string    `json:"processing_status"`
	CreatedAt        time.Time `json:"created_at"`
	LastUpdated      time.Time `json:"last_updated"`
}

// NewPaperChatSession converts an ent row.
func NewPaperChatSession(s *ent.PaperChatSession) *PaperChatSession {
	return &PaperChatSession{
		ID:               s.ID,
		PaperID:          s.PaperID,
		Title:            s.Title,
		ProcessingStatus: string(s.ProcessingStatus),
		CreatedAt:        s.CreatedAt,
		LastUpdated:      s.UpdatedAt,
	}
}

// NewPaperChatSessions converts a slice of ent rows.
func NewPaperChatSessions(rows []*ent.PaperChatSession) []*PaperChatSession {
	out := make([]*PaperChatSession, len(rows))
	for i, s := range rows {
		out[i] = NewPaperChatSession(s)
	}
	return out
}

// PaperChatMessage is one chat turn.
type PaperChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Sequence  int       `json:"sequence"`
	CreatedAt time.Time `json:"created_at"`
}

// NewPaperChatMessage converts an ent row.
func NewPaperChatMessage(m *ent.PaperChatMessage) *PaperChatMessage {
	return &PaperChatMessage{
		ID:        m.ID,
		Role:      string(m.Role),
		Content:   m.Content,
		Sequence:  m.Sequence,
		CreatedAt: m.CreatedAt,
	}
}

// NewPaperChatMessages converts a slice of ent rows.
func NewPaperChatMessages(rows []*ent.PaperChatMessage) []*PaperChatMessage {
	out := make([]*PaperChatMessage, len(rows))
	for i, m := range rows {
		out[i] = NewPaperChatMessage(m)
	}
	return out
}
