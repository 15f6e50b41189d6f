// Package llm provides the gateway that all LLM traffic flows through:
// a uniform call interface over providers with retry, per-call timeout,
// and fallback routing. It is the single place errors are classified.
package llm

import (
	"context"
	"time"

	"github.com/rainzero1960/paperscout/pkg/config"
)

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is one turn of a conversation.
type Message struct {
	Role    string
	Content string

	// ToolCalls is set on assistant messages that requested tools.
	ToolCalls []ToolCall
	// ToolCallID and ToolName are set on tool result messages.
	ToolCallID string
	ToolName   string
}

// ToolDefinition describes a tool available to the LLM.
// Parameters is a JSON Schema object.
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// ToolCall is an LLM's request to call a tool. Arguments is raw JSON.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// Options carries per-call overrides. Zero values fall back to the
// gateway's configured defaults.
type Options struct {
	Temperature *float32
	TopP        *float32
	MaxRetries  int
	Timeout     time.Duration
	Tools       []ToolDefinition
	// JSONMode asks the provider for a JSON-object response.
	JSONMode bool
}

// Result is a successful gateway invocation. Provider/Model/UsedFallback
// describe the route that actually produced the text.
type Result struct {
	Text      string
	ToolCalls []ToolCall

	Provider     config.ProviderType
	Model        string
	UsedFallback bool
}

// Provider is one concrete LLM backend.
type Provider interface {
	// Generate performs a single attempt. The gateway owns retries,
	// timeouts, and fallback; providers just translate and call.
	Generate(ctx context.Context, messages []Message, model string, opts *Options) (*Result, error)

	Type() config.ProviderType
}

// Embedder produces embedding vectors for texts.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}
