// Package ragagent runs a bounded tool-calling loop over the LLM
// gateway: the model either answers or requests tools, tool outputs are
// appended as tool messages, and the loop repeats until a final answer
// or the turn cap.
package ragagent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rainzero1960/paperscout/pkg/llm"
	"github.com/rainzero1960/paperscout/pkg/prompt"
)

// maxToolTurns caps model turns in one run. The loop naturally exits on
// the first answer without tool calls.
const maxToolTurns = 10

// Agent drives the loop. Safe for concurrent use; per-run state lives
// on the stack.
type Agent struct {
	gateway  *llm.Gateway
	resolver *prompt.Resolver
}

// NewAgent creates an agent.
func NewAgent(gateway *llm.Gateway, resolver *prompt.Resolver) *Agent {
	return &Agent{gateway: gateway, resolver: resolver}
}

// Request is one question against a tool set.
type Request struct {
	UserID   string
	Question string
	// History is the session's prior turns, oldest first.
	History []llm.Message
	// PromptID optionally selects a custom rag_system prompt.
	PromptID     string
	UseCharacter bool
	Tools        *ToolSet
}

// Step is one message produced during the run, in order, for session
// persistence.
type Step struct {
	Role     string
	Content  string
	ToolName string
}

// Response is a completed run.
type Response struct {
	Answer     string
	References []Reference
	// Steps are the messages generated during the run, excluding the
	// caller's own question.
	Steps []Step
}

// Run resolves the system prompt and executes the loop to completion.
func (a *Agent) Run(ctx context.Context, req Request) (*Response, error) {
	resolved, err := a.resolver.Resolve(ctx, prompt.Request{
		Type:         prompt.TypeRAGSystem,
		UserID:       req.UserID,
		PromptID:     req.PromptID,
		UseCharacter: req.UseCharacter,
	})
	if err != nil {
		return nil, fmt.Errorf("resolve rag system prompt: %w", err)
	}

	messages := make([]llm.Message, 0, len(req.History)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: resolved.Body})
	messages = append(messages, req.History...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: req.Question})

	opts := &llm.Options{}
	if req.Tools != nil {
		opts.Tools = req.Tools.Definitions()
	}

	resp := &Response{}
	for turn := 1; turn <= maxToolTurns; turn++ {
		result, err := a.gateway.Invoke(ctx, messages, a.gateway.DefaultSpec(), opts)
		if err != nil {
			return nil, fmt.Errorf("rag turn %d: %w", turn, err)
		}

		if len(result.ToolCalls) == 0 {
			resp.Answer = result.Text
			resp.Steps = append(resp.Steps, Step{Role: llm.RoleAssistant, Content: result.Text})
			resp.References = dedupeReferences(resp.References)
			return resp, nil
		}

		messages = append(messages, llm.Message{
			Role:      llm.RoleAssistant,
			Content:   result.Text,
			ToolCalls: result.ToolCalls,
		})
		resp.Steps = append(resp.Steps, Step{Role: llm.RoleAssistant, Content: result.Text})

		for _, call := range result.ToolCalls {
			output := a.executeCall(ctx, req.Tools, call, resp)
			messages = append(messages, llm.Message{
				Role:       llm.RoleTool,
				Content:    output,
				ToolCallID: call.ID,
				ToolName:   call.Name,
			})
			resp.Steps = append(resp.Steps, Step{Role: llm.RoleTool, Content: output, ToolName: call.Name})
		}
	}

	return nil, fmt.Errorf("tool loop did not terminate within %d turns", maxToolTurns)
}

// executeCall runs one tool call. Failures become tool-message text so
// the model can adjust instead of aborting the run.
func (a *Agent) executeCall(ctx context.Context, tools *ToolSet, call llm.ToolCall, resp *Response) string {
	if tools == nil {
		return fmt.Sprintf("ツールエラー: %s は利用できません。", call.Name)
	}
	result, err := tools.Execute(ctx, call)
	if err != nil {
		slog.Warn("Tool call failed", "tool", call.Name, "error", err)
		return fmt.Sprintf("ツールエラー: %v", err)
	}
	resp.References = append(resp.References, result.References...)
	return result.Output
}

// dedupeReferences drops repeats, keyed by paper id for corpus hits and
// URL for web hits, preserving first-seen order.
func dedupeReferences(refs []Reference) []Reference {
	seen := make(map[string]bool, len(refs))
	out := make([]Reference, 0, len(refs))
	for _, ref := range refs {
		key := ref.Kind + "|" + ref.PaperID + "|" + ref.URL
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ref)
	}
	return out
}
