package models

import (
	"time"

	"github.com/rainzero1960/paperscout/ent"
)

// ResearchSession is the research-session view for listing and status
// polling.
type ResearchSession struct {
	ID               string    `json:"id"`
	Category         string    `json:"category"`
	Title            string    `json:"title"`
	ProcessingStatus string    `json:"processing_status"`
	CreatedAt        time.Time `json:"created_at"`
	LastUpdated      time.Time `json:"last_updated"`
}

// NewResearchSession converts an ent row.
func NewResearchSession(s *ent.ResearchSession) *ResearchSession {
	return &ResearchSession{
		ID:               s.ID,
		Category:         string(s.Category),
		Title:            s.Title,
		ProcessingStatus: string(s.ProcessingStatus),
		CreatedAt:        s.CreatedAt,
		LastUpdated:      s.UpdatedAt,
	}
}

// NewResearchSessions converts a slice of ent rows.
func NewResearchSessions(rows []*ent.ResearchSession) []*ResearchSession {
	out := make([]*ResearchSession, len(rows))
	for i, s := range rows {
		out[i] = NewResearchSession(s)
	}
	return out
}

// ResearchMessage is one persisted research turn.
type ResearchMessage struct {
	ID             string         `json:"id"`
	Role           string         `json:"role"`
	Content        string         `json:"content"`
	IsIntermediate bool           `json:"is_intermediate"`
	Sequence       int            `json:"sequence"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// NewResearchMessage converts an ent row.
func NewResearchMessage(m *ent.ResearchMessage) *ResearchMessage {
	return &ResearchMessage{
		ID:             m.ID,
		Role:           string(m.Role),
		Content:        m.Content,
		IsIntermediate: m.IsIntermediate,
		Sequence:       m.Sequence,
		Metadata:       m.MetadataJSON,
		CreatedAt:      m.CreatedAt,
	}
}

// SessionStatus is the status-poll payload: current status plus the
// message log.
type SessionStatus struct {
	SessionID   string             `json:"session_id"`
	Status      string             `json:"status"`
	Messages    []*ResearchMessage `json:"messages"`
	LastUpdated time.Time          `json:"last_updated"`
}

// NewSessionStatus builds the poll payload.
func NewSessionStatus(s *ent.ResearchSession, msgs []*ent.ResearchMessage) *SessionStatus {
	out := &SessionStatus{
		SessionID:   s.ID,
		Status:      string(s.ProcessingStatus),
		Messages:    make([]*ResearchMessage, len(msgs)),
		LastUpdated: s.UpdatedAt,
	}
	for i, m := range msgs {
		out.Messages[i] = NewResearchMessage(m)
	}
	return out
}
