// Package research runs the five-role investigation graph:
// Coordinator -> Planner -> Supervisor -> (Agent <-> Tools)* -> Summary.
// Transitions are fixed; only the structured `next` fields at
// Coordinator and Supervisor, and the agent's tool calls, branch.
package research

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rainzero1960/paperscout/pkg/config"
	"github.com/rainzero1960/paperscout/pkg/llm"
	"github.com/rainzero1960/paperscout/pkg/prompt"
	"github.com/rainzero1960/paperscout/pkg/ragagent"
)

// Session processing statuses, written at the entry of each role so
// clients can render progress. Values match the research session
// processing_status enum.
const (
	StatusPending           = "pending"
	StatusCoordinating      = "coordinator"
	StatusPlanning          = "planning"
	StatusSupervising       = "supervising"
	StatusAgentRunning      = "agent_running"
	StatusToolRunning       = "tools"
	StatusSummarizing       = "summarizing"
	StatusCompleted         = "completed"
	StatusFailed            = "failed"
	StatusUnknownCompletion = "unknown_completion"
)

// Message roles as persisted.
const (
	RoleCoordinator = "coordinator"
	RolePlanner     = "planner"
	RoleSupervisor  = "supervisor"
	RoleAgent       = "agent"
	RoleToolOutput  = "tool"
	RoleSummary     = "summary"
	RoleSystemError = "system_error"
)

// Structured `next` values.
const (
	nextPlanner = "planner"
	nextEnd     = "END"
	nextAgent   = "agent"
	nextSummary = "summary"
)

// Message is one persisted graph output.
type Message struct {
	Role           string
	Content        string
	IsIntermediate bool
}

// Recorder is the persistence surface: message appends are serialised
// in creation order by the implementation.
type Recorder interface {
	SetStatus(ctx context.Context, sessionID, status string) error
	AppendMessage(ctx context.Context, sessionID string, msg Message) error
}

// Engine drives one graph run per call. Safe for concurrent use.
type Engine struct {
	gateway  *llm.Gateway
	resolver *prompt.Resolver
	recorder Recorder
	cfg      *config.ResearchConfig
}

// NewEngine creates an engine.
func NewEngine(gateway *llm.Gateway, resolver *prompt.Resolver, recorder Recorder, cfg *config.ResearchConfig) *Engine {
	if cfg == nil {
		cfg = config.DefaultResearchConfig()
	}
	return &Engine{gateway: gateway, resolver: resolver, recorder: recorder, cfg: cfg}
}

// Request is one investigation run. Tools decides the flavour: web
// search/extract for deepresearch, corpus search for deeprag.
type Request struct {
	SessionID string
	UserID    string
	Query     string
	// History is the session's prior user/assistant turns, oldest first.
	History      []llm.Message
	GroupID      string
	UseCharacter bool
	Tools        *ragagent.ToolSet
}

// Outcome is a finished run. FinalReport is the Summary output, or the
// Coordinator's direct response on a terminal coordinator turn.
type Outcome struct {
	Status      string
	FinalReport string
}

type coordinatorOutput struct {
	Reasoning string `json:"reasoning"`
	Response  string `json:"response"`
	Next      string `json:"next"`
}

type supervisorOutput struct {
	Reasoning  string `json:"reasoning"`
	Planning   string `json:"planning"`
	NextAction string `json:"next_action"`
	Next       string `json:"next"`
}

// Run executes the graph. Any failure sets status=failed and appends a
// system_error message; partial progress stays persisted.
func (e *Engine) Run(ctx context.Context, req Request) (*Outcome, error) {
	out, err := e.run(ctx, req)
	if err != nil {
		dctx, cancel := detached(ctx)
		defer cancel()
		if serr := e.recorder.SetStatus(dctx, req.SessionID, StatusFailed); serr != nil {
			slog.Error("Failed to mark research session failed", "session_id", req.SessionID, "error", serr)
		}
		if aerr := e.recorder.AppendMessage(dctx, req.SessionID, Message{
			Role:    RoleSystemError,
			Content: err.Error(),
		}); aerr != nil {
			slog.Error("Failed to record research error", "session_id", req.SessionID, "error", aerr)
		}
		return nil, err
	}
	return out, nil
}

func (e *Engine) run(ctx context.Context, req Request) (*Outcome, error) {
	prompts, err := e.resolver.ResolveGroup(ctx, req.UserID, req.GroupID, req.UseCharacter)
	if err != nil {
		return nil, fmt.Errorf("resolve role prompts: %w", err)
	}

	// history is the tool-free transcript every role reasons over. Tool
	// traffic stays inside the agent phase.
	history := append(append([]llm.Message{}, req.History...), llm.Message{Role: llm.RoleUser, Content: req.Query})

	// Coordinator.
	if err := e.recorder.SetStatus(ctx, req.SessionID, StatusCoordinating); err != nil {
		return nil, err
	}
	var coord coordinatorOutput
	err = e.structuredRole(ctx, prompts.Coordinator, history, &coord, func() error {
		if coord.Next != nextPlanner && coord.Next != nextEnd {
			return fmt.Errorf("coordinator next %q is not planner or END", coord.Next)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("coordinator: %w", err)
	}

	if coord.Next == nextEnd {
		if err := e.recorder.AppendMessage(ctx, req.SessionID, Message{
			Role:    RoleCoordinator,
			Content: coord.Response,
		}); err != nil {
			return nil, err
		}
		if err := e.recorder.SetStatus(ctx, req.SessionID, StatusCompleted); err != nil {
			return nil, err
		}
		return &Outcome{Status: StatusCompleted, FinalReport: coord.Response}, nil
	}

	if err := e.recorder.AppendMessage(ctx, req.SessionID, Message{
		Role:           RoleCoordinator,
		Content:        coord.Response,
		IsIntermediate: true,
	}); err != nil {
		return nil, err
	}
	history = append(history, llm.Message{Role: llm.RoleAssistant, Content: coord.Response})

	// Planner.
	if err := e.recorder.SetStatus(ctx, req.SessionID, StatusPlanning); err != nil {
		return nil, err
	}
	plan, err := e.freeTextRole(ctx, prompts.Planner, history, nil)
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	if err := e.recorder.AppendMessage(ctx, req.SessionID, Message{
		Role:           RolePlanner,
		Content:        plan,
		IsIntermediate: true,
	}); err != nil {
		return nil, err
	}
	history = append(history, llm.Message{Role: llm.RoleAssistant, Content: plan})

	// Supervisor/agent loop until the supervisor hands off to summary.
	// The step counter is a safety net across every LLM turn.
	steps := 0
	for {
		if steps++; steps > e.cfg.RecursionLimit {
			slog.Error("Research graph hit recursion limit", "session_id", req.SessionID, "limit", e.cfg.RecursionLimit)
			if err := e.recorder.SetStatus(ctx, req.SessionID, StatusUnknownCompletion); err != nil {
				return nil, err
			}
			return &Outcome{Status: StatusUnknownCompletion}, nil
		}

		if err := e.recorder.SetStatus(ctx, req.SessionID, StatusSupervising); err != nil {
			return nil, err
		}
		var sup supervisorOutput
		err := e.structuredRole(ctx, prompts.Supervisor, history, &sup, func() error {
			if sup.Next != nextAgent && sup.Next != nextSummary {
				return fmt.Errorf("supervisor next %q is not agent or summary", sup.Next)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("supervisor: %w", err)
		}
		if err := e.recorder.AppendMessage(ctx, req.SessionID, Message{
			Role:           RoleSupervisor,
			Content:        sup.NextAction,
			IsIntermediate: true,
		}); err != nil {
			return nil, err
		}

		if sup.Next == nextSummary {
			break
		}

		history = append(history, llm.Message{Role: llm.RoleUser, Content: sup.NextAction})
		findings, used, err := e.agentPhase(ctx, req, prompts.Agent, history, steps)
		if err != nil {
			return nil, err
		}
		steps += used
		if err := e.recorder.AppendMessage(ctx, req.SessionID, Message{
			Role:           RoleAgent,
			Content:        findings,
			IsIntermediate: true,
		}); err != nil {
			return nil, err
		}
		history = append(history, llm.Message{Role: llm.RoleAssistant, Content: findings})
	}

	// Summary.
	if err := e.recorder.SetStatus(ctx, req.SessionID, StatusSummarizing); err != nil {
		return nil, err
	}
	report, err := e.freeTextRole(ctx, prompts.Summary, asUserClosing(history), nil)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	if err := e.recorder.AppendMessage(ctx, req.SessionID, Message{
		Role:    RoleSummary,
		Content: report,
	}); err != nil {
		return nil, err
	}
	if err := e.recorder.SetStatus(ctx, req.SessionID, StatusCompleted); err != nil {
		return nil, err
	}
	return &Outcome{Status: StatusCompleted, FinalReport: report}, nil
}

// agentPhase runs the agent with its tools from the latest supervisor
// instruction until it answers without tool calls. Returns the
// findings and the number of extra LLM turns consumed.
func (e *Engine) agentPhase(ctx context.Context, req Request, agentPrompt string, history []llm.Message, steps int) (string, int, error) {
	if err := e.recorder.SetStatus(ctx, req.SessionID, StatusAgentRunning); err != nil {
		return "", 0, err
	}

	// The agent only sees the slice from the last supervisor
	// instruction onward.
	working := []llm.Message{history[len(history)-1]}

	opts := &llm.Options{}
	if req.Tools != nil {
		opts.Tools = req.Tools.Definitions()
	}

	used := 0
	for {
		if steps+used > e.cfg.RecursionLimit {
			return "", used, fmt.Errorf("agent phase exceeded recursion limit %d", e.cfg.RecursionLimit)
		}
		used++

		result, err := e.invokeWithRetries(ctx, agentPrompt, working, opts)
		if err != nil {
			return "", used, fmt.Errorf("agent: %w", err)
		}
		if len(result.ToolCalls) == 0 {
			return result.Text, used, nil
		}

		if err := e.recorder.SetStatus(ctx, req.SessionID, StatusToolRunning); err != nil {
			return "", used, err
		}
		working = append(working, llm.Message{
			Role:      llm.RoleAssistant,
			Content:   result.Text,
			ToolCalls: result.ToolCalls,
		})
		for _, call := range result.ToolCalls {
			output := e.runTool(ctx, req.Tools, call)
			if err := e.recorder.AppendMessage(ctx, req.SessionID, Message{
				Role:           RoleToolOutput,
				Content:        output,
				IsIntermediate: true,
			}); err != nil {
				return "", used, err
			}
			working = append(working, llm.Message{
				Role:       llm.RoleTool,
				Content:    output,
				ToolCallID: call.ID,
				ToolName:   call.Name,
			})
		}
		if err := e.recorder.SetStatus(ctx, req.SessionID, StatusAgentRunning); err != nil {
			return "", used, err
		}
	}
}

// runTool executes one call; failures become tool output text so the
// agent can adjust instead of killing the session.
func (e *Engine) runTool(ctx context.Context, tools *ragagent.ToolSet, call llm.ToolCall) string {
	if tools == nil {
		return fmt.Sprintf("ツールエラー: %s は利用できません。", call.Name)
	}
	result, err := tools.Execute(ctx, call)
	if err != nil {
		slog.Warn("Research tool call failed", "tool", call.Name, "error", err)
		return fmt.Sprintf("ツールエラー: %v", err)
	}
	return result.Output
}

// structuredRole invokes a role that must emit validated JSON, with the
// in-graph retry budget on top of the gateway's own retries.
func (e *Engine) structuredRole(ctx context.Context, systemPrompt string, history []llm.Message, out any, validate func() error) error {
	messages := withSystem(systemPrompt, history)

	var lastErr error
	for attempt := 1; attempt <= e.cfg.RoleRetries; attempt++ {
		_, err := e.gateway.InvokeStructured(ctx, messages, e.gateway.DefaultSpec(), nil, out)
		if err == nil {
			if verr := validate(); verr == nil {
				return nil
			} else {
				err = verr
			}
		}
		lastErr = err
		slog.Warn("Structured role attempt failed",
			"attempt", attempt, "of", e.cfg.RoleRetries, "error", err)
		if ctx.Err() != nil {
			return lastErr
		}
	}
	return lastErr
}

// invokeWithRetries is one agent turn, tool calls allowed, with the
// in-graph retry budget.
func (e *Engine) invokeWithRetries(ctx context.Context, systemPrompt string, history []llm.Message, opts *llm.Options) (*llm.Result, error) {
	messages := withSystem(systemPrompt, history)

	var lastErr error
	for attempt := 1; attempt <= e.cfg.RoleRetries; attempt++ {
		result, err := e.gateway.Invoke(ctx, messages, e.gateway.DefaultSpec(), opts)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return nil, lastErr
}

// freeTextRole invokes a role that answers in prose.
func (e *Engine) freeTextRole(ctx context.Context, systemPrompt string, history []llm.Message, opts *llm.Options) (string, error) {
	messages := withSystem(systemPrompt, history)

	var lastErr error
	for attempt := 1; attempt <= e.cfg.RoleRetries; attempt++ {
		result, err := e.gateway.Invoke(ctx, messages, e.gateway.DefaultSpec(), opts)
		if err == nil {
			if strings.TrimSpace(result.Text) != "" {
				return result.Text, nil
			}
			err = fmt.Errorf("empty role output")
		}
		lastErr = err
		if ctx.Err() != nil {
			return "", lastErr
		}
	}
	return "", lastErr
}

func withSystem(systemPrompt string, history []llm.Message) []llm.Message {
	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: systemPrompt})
	return append(messages, history...)
}

// asUserClosing rewrites the last assistant turn as a user turn so the
// summary role treats the accumulated findings as its input.
func asUserClosing(history []llm.Message) []llm.Message {
	out := append([]llm.Message{}, history...)
	if n := len(out); n > 0 && out[n-1].Role == llm.RoleAssistant {
		out[n-1].Role = llm.RoleUser
	}
	return out
}

// detached keeps failure bookkeeping writable after the request
// context is gone.
func detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
}
