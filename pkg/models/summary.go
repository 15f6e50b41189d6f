package models

import (
	"time"

	"github.com/rainzero1960/paperscout/ent"
	"github.com/rainzero1960/paperscout/pkg/jobs"
	"github.com/rainzero1960/paperscout/pkg/services"
)

// GenerateSingleResponse reports one generation call.
type GenerateSingleResponse struct {
	PaperID          string  `json:"paper_id"`
	UserPaperLinkID  string  `json:"user_paper_link_id"`
	DefaultSummaryID string  `json:"default_summary_id,omitempty"`
	CustomSummaryID  string  `json:"custom_summary_id,omitempty"`
	VectorCreated    bool    `json:"vector_created"`
	PromptName       string  `json:"prompt_name"`
	PromptType       string  `json:"prompt_type"`
	ProcessingTime   float64 `json:"processing_time_seconds"`
}

// NewGenerateSingleResponse converts a service result.
func NewGenerateSingleResponse(r *services.GenerateSingleResult) *GenerateSingleResponse {
	return &GenerateSingleResponse{
		PaperID:          r.PaperID,
		UserPaperLinkID:  r.UserPaperLinkID,
		DefaultSummaryID: r.DefaultSummaryID,
		CustomSummaryID:  r.CustomSummaryID,
		VectorCreated:    r.VectorCreated,
		PromptName:       r.PromptName,
		PromptType:       r.PromptType,
		ProcessingTime:   r.ProcessingTime.Seconds(),
	}
}

// PromptResult is the per-prompt outcome of a parallel run.
type PromptResult struct {
	PromptID   string `json:"prompt_id,omitempty"`
	PromptName string `json:"prompt_name,omitempty"`
	PromptType string `json:"prompt_type,omitempty"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

// GenerateParallelResponse aggregates a parallel run.
type GenerateParallelResponse struct {
	PaperID         string         `json:"paper_id"`
	UserPaperLinkID string         `json:"user_paper_link_id"`
	Results         []PromptResult `json:"results"`
	Succeeded       int            `json:"succeeded"`
	Failed          int            `json:"failed"`
	VectorCreated   bool           `json:"vector_created"`
}

// NewGenerateParallelResponse converts a service result. Per-prompt
// failures are redacted to the user-facing message; details stay in the
// server log.
func NewGenerateParallelResponse(r *services.GenerateParallelResult, redact func(error) string) *GenerateParallelResponse {
	out := &GenerateParallelResponse{
		PaperID:         r.PaperID,
		UserPaperLinkID: r.UserPaperLinkID,
		Results:         make([]PromptResult, len(r.Results)),
		Succeeded:       r.Succeeded,
		Failed:          r.Failed,
		VectorCreated:   r.VectorCreated,
	}
	for i, pr := range r.Results {
		out.Results[i] = PromptResult{
			PromptID:   pr.PromptID,
			PromptName: pr.PromptName,
			PromptType: pr.PromptType,
			Success:    pr.Err == nil,
		}
		if pr.Err != nil {
			out.Results[i].Error = redact(pr.Err)
		}
	}
	return out
}

// DuplicationInfo describes a stored summary found by the duplication
// check.
type DuplicationInfo struct {
	URL        string `json:"url"`
	PromptName string `json:"prompt_name"`
	PromptType string `json:"prompt_type"`
	PromptID   string `json:"prompt_id,omitempty"`
}

// DuplicationReport is the batch duplication-check payload.
type DuplicationReport struct {
	ExistingVectorURLs  []string          `json:"existing_vector_urls"`
	ExistingSummaryInfo []DuplicationInfo `json:"existing_summary_info"`
}

// NewDuplicationReport converts a service report.
func NewDuplicationReport(r *services.DuplicationReport) *DuplicationReport {
	out := &DuplicationReport{
		ExistingVectorURLs:  r.ExistingVectorURLs,
		ExistingSummaryInfo: make([]DuplicationInfo, len(r.ExistingSummaryInfo)),
	}
	if out.ExistingVectorURLs == nil {
		out.ExistingVectorURLs = []string{}
	}
	for i, info := range r.ExistingSummaryInfo {
		out.ExistingSummaryInfo[i] = DuplicationInfo(info)
	}
	return out
}

// ExistingSummary is the per-key existence-check payload.
type ExistingSummary struct {
	Exists               bool   `json:"exists"`
	RequiresRegeneration bool   `json:"requires_regeneration"`
	SummaryType          string `json:"summary_type,omitempty"`
	SummaryID            string `json:"summary_id,omitempty"`
}

// NewExistingSummary converts a service result.
func NewExistingSummary(r *services.ExistingSummary) *ExistingSummary {
	return &ExistingSummary{
		Exists:               r.Exists,
		RequiresRegeneration: r.RequiresRegeneration,
		SummaryType:          r.SummaryType,
		SummaryID:            r.SummaryID,
	}
}

// EditedSummary is a user's hand-edited override of a stored summary.
type EditedSummary struct {
	ID               string    `json:"id"`
	DefaultSummaryID string    `json:"default_summary_id,omitempty"`
	CustomSummaryID  string    `json:"custom_summary_id,omitempty"`
	Body             string    `json:"body"`
	OnePoint         string    `json:"one_point,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewEditedSummary converts an ent row.
func NewEditedSummary(row *ent.EditedSummary) *EditedSummary {
	out := &EditedSummary{
		ID:        row.ID,
		Body:      row.Body,
		OnePoint:  row.OnePoint,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.DefaultSummaryID != nil {
		out.DefaultSummaryID = *row.DefaultSummaryID
	}
	if row.CustomSummaryID != nil {
		out.CustomSummaryID = *row.CustomSummaryID
	}
	return out
}

// BulkProgress is the bulk-run progress payload.
type BulkProgress struct {
	IsRunning  bool     `json:"is_running"`
	Total      int      `json:"total"`
	Processed  int      `json:"processed"`
	ETASeconds *float64 `json:"eta_seconds,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// NewBulkProgress converts a registry status. A missing entry reports
// an idle run.
func NewBulkProgress(st jobs.Status, ok bool) *BulkProgress {
	if !ok {
		return &BulkProgress{}
	}
	return &BulkProgress{
		IsRunning:  st.IsRunning,
		Total:      st.Total,
		Processed:  st.Processed,
		ETASeconds: st.ETASeconds,
		Error:      st.LastError,
	}
}
