package models

import (
	"time"

	"github.com/rainzero1960/paperscout/ent"
)

// Prompt is the custom-prompt view.
type Prompt struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Body      string    `json:"body"`
	Category  string    `json:"category,omitempty"`
	IsActive  bool      `json:"is_active"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPrompt converts an ent row.
func NewPrompt(p *ent.Prompt) *Prompt {
	return &Prompt{
		ID:        p.ID,
		Type:      string(p.Type),
		Name:      p.Name,
		Body:      p.Body,
		Category:  p.Category,
		IsActive:  p.IsActive,
		UpdatedAt: p.UpdatedAt,
	}
}

// NewPrompts converts a slice of ent rows.
func NewPrompts(rows []*ent.Prompt) []*Prompt {
	out := make([]*Prompt, len(rows))
	for i, p := range rows {
		out[i] = NewPrompt(p)
	}
	return out
}

// PromptGroup is the research prompt-group view. Empty slot ids mean
// the built-in default prompt for that role.
type PromptGroup struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	CoordinatorID string    `json:"coordinator_prompt_id,omitempty"`
	PlannerID     string    `json:"planner_prompt_id,omitempty"`
	SupervisorID  string    `json:"supervisor_prompt_id,omitempty"`
	AgentID       string    `json:"agent_prompt_id,omitempty"`
	SummaryID     string    `json:"summary_prompt_id,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewPromptGroup converts an ent row.
func NewPromptGroup(g *ent.PromptGroup) *PromptGroup {
	deref := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	return &PromptGroup{
		ID:            g.ID,
		Name:          g.Name,
		Category:      string(g.Category),
		CoordinatorID: deref(g.CoordinatorPromptID),
		PlannerID:     deref(g.PlannerPromptID),
		SupervisorID:  deref(g.SupervisorPromptID),
		AgentID:       deref(g.AgentPromptID),
		SummaryID:     deref(g.SummaryPromptID),
		UpdatedAt:     g.UpdatedAt,
	}
}

// NewPromptGroups converts a slice of ent rows.
func NewPromptGroups(rows []*ent.PromptGroup) []*PromptGroup {
	out := make([]*PromptGroup, len(rows))
	for i, g := range rows {
		out[i] = NewPromptGroup(g)
	}
	return out
}
