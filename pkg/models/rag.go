package models

import (
	"github.com/rainzero1960/paperscout/pkg/ragagent"
	"github.com/rainzero1960/paperscout/pkg/services"
)

// RAGReference is one cited source of a RAG answer.
type RAGReference struct {
	Kind    string `json:"kind"`
	PaperID string `json:"paper_id,omitempty"`
	Title   string `json:"title,omitempty"`
	URL     string `json:"url,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}

// RAGStep is one intermediate turn of the agent loop.
type RAGStep struct {
	Role     string `json:"role"`
	Content  string `json:"content"`
	ToolName string `json:"tool_name,omitempty"`
}

// RAGResponse is a completed RAG answer.
type RAGResponse struct {
	Answer     string         `json:"answer"`
	References []RAGReference `json:"references"`
	Steps      []RAGStep      `json:"steps,omitempty"`
}

// NewRAGResponse converts an agent response.
func NewRAGResponse(r *ragagent.Response) *RAGResponse {
	out := &RAGResponse{
		Answer:     r.Answer,
		References: make([]RAGReference, len(r.References)),
		Steps:      make([]RAGStep, len(r.Steps)),
	}
	for i, ref := range r.References {
		out.References[i] = RAGReference(ref)
	}
	for i, st := range r.Steps {
		out.Steps[i] = RAGStep(st)
	}
	return out
}

// RAGRunStatus is the poll payload of an asynchronous RAG run.
type RAGRunStatus struct {
	RunID    string       `json:"run_id"`
	Question string       `json:"question"`
	Done     bool         `json:"done"`
	Error    string       `json:"error,omitempty"`
	Response *RAGResponse `json:"response,omitempty"`
}

// NewRAGRunStatus converts a service run.
func NewRAGRunStatus(run *services.RAGRun) *RAGRunStatus {
	out := &RAGRunStatus{
		RunID:    run.ID,
		Question: run.Question,
		Done:     run.Done,
		Error:    run.Error,
	}
	if run.Response != nil {
		out.Response = NewRAGResponse(run.Response)
	}
	return out
}
