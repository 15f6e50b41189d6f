package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rainzero1960/paperscout/ent"
	"github.com/rainzero1960/paperscout/ent/researchmessage"
	"github.com/rainzero1960/paperscout/ent/researchsession"
	"github.com/rainzero1960/paperscout/pkg/config"
	"github.com/rainzero1960/paperscout/pkg/jobs"
	"github.com/rainzero1960/paperscout/pkg/llm"
	"github.com/rainzero1960/paperscout/pkg/prompt"
	"github.com/rainzero1960/paperscout/pkg/ragagent"
	"github.com/rainzero1960/paperscout/pkg/research"
	"github.com/rainzero1960/paperscout/pkg/vector"
	"github.com/rainzero1960/paperscout/pkg/webtool"
)

// CategoryRAG marks sessions created by asynchronous RAG runs. They
// share the research session tables but are not listed on the
// deepresearch/deeprag surfaces.
const CategoryRAG = "rag"

// RAGService answers questions over the user's vectorised corpus,
// synchronously or as a background run polled via the job registry.
type RAGService struct {
	client   *ent.Client
	agent    *ragagent.Agent
	indexer  *vector.Indexer
	web      *webtool.Client
	registry *jobs.Registry
	cfg      *config.ResearchConfig

	// In-flight runs are cached here for cheap polling; the session
	// rows are the durable record.
	mu      sync.Mutex
	results map[string]*RAGRun
}

// NewRAGService creates a new RAGService
func NewRAGService(client *ent.Client, gateway *llm.Gateway, resolver *prompt.Resolver, indexer *vector.Indexer, web *webtool.Client, registry *jobs.Registry, cfg *config.ResearchConfig) *RAGService {
	if cfg == nil {
		cfg = config.DefaultResearchConfig()
	}
	return &RAGService{
		client:   client,
		agent:    ragagent.NewAgent(gateway, resolver),
		indexer:  indexer,
		web:      web,
		registry: registry,
		cfg:      cfg,
		results:  make(map[string]*RAGRun),
	}
}

// QueryRequest is one RAG question.
type QueryRequest struct {
	Question string
	// History carries prior turns of a client-held conversation.
	History []llm.Message
	// Tags restrict corpus search to papers carrying any of them.
	Tags         []string
	PromptID     string
	UseCharacter bool
	// UseWeb additionally offers the web tools when they are configured.
	UseWeb bool
}

// Query answers synchronously.
func (s *RAGService) Query(ctx context.Context, userID string, req QueryRequest) (*ragagent.Response, error) {
	if req.Question == "" {
		return nil, NewValidationError("question", "required")
	}

	tools, err := s.toolSet(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	return s.agent.Run(ctx, ragagent.Request{
		UserID:       userID,
		Question:     req.Question,
		History:      req.History,
		PromptID:     req.PromptID,
		UseCharacter: req.UseCharacter,
		Tools:        tools,
	})
}

// RAGRun is the observable state of one asynchronous run.
type RAGRun struct {
	ID       string
	UserID   string
	Question string
	Done     bool
	Error    string
	Response *ragagent.Response
}

// StartAsync launches a background run and returns its id, which is
// also the id of the session row recording the run. One run per user
// at a time; ragagent.ErrAlreadyRunning otherwise.
func (s *RAGService) StartAsync(ctx context.Context, userID string, req QueryRequest) (string, error) {
	if req.Question == "" {
		return "", NewValidationError("question", "required")
	}

	tools, err := s.toolSet(ctx, userID, req)
	if err != nil {
		return "", err
	}

	// Use background context with timeout for critical write
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	session, err := s.client.ResearchSession.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetCategory(researchsession.CategoryRag).
		SetTitle(runTitle(req.Question)).
		SetProcessingStatus(researchsession.ProcessingStatusAgentRunning).
		Save(dbCtx)
	if err != nil {
		return "", wrapEntError(err)
	}

	recorder := &sessionRecorder{client: s.client}
	if err := recorder.appendRaw(dbCtx, session.ID, researchmessage.RoleUser, req.Question, false, nil); err != nil {
		return "", fmt.Errorf("record rag question: %w", err)
	}

	run := &RAGRun{
		ID:       session.ID,
		UserID:   userID,
		Question: req.Question,
	}

	err = s.agent.RunAsync(s.registry, ragagent.Request{
		UserID:       userID,
		Question:     req.Question,
		History:      req.History,
		PromptID:     req.PromptID,
		UseCharacter: req.UseCharacter,
		Tools:        tools,
	}, func(resp *ragagent.Response, err error) {
		s.mu.Lock()
		run.Done = true
		run.Response = resp
		if err != nil {
			run.Error = err.Error()
		}
		s.mu.Unlock()
		s.persistRun(session.ID, resp, err)
	})
	if err != nil {
		// The run never started; the session row must not linger.
		if derr := s.client.ResearchSession.DeleteOneID(session.ID).Exec(dbCtx); derr != nil {
			slog.Warn("Failed to remove unstarted rag session", "session_id", session.ID, "error", derr)
		}
		return "", err
	}

	s.mu.Lock()
	s.results[run.ID] = run
	s.mu.Unlock()
	return run.ID, nil
}

// persistRun writes the finished run into its session row so the
// outcome survives a restart. Runs on the background goroutine.
func (s *RAGService) persistRun(sessionID string, resp *ragagent.Response, runErr error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	recorder := &sessionRecorder{client: s.client}
	logger := slog.With("session_id", sessionID)

	if runErr != nil {
		if err := recorder.appendRaw(ctx, sessionID, researchmessage.RoleSystemError, runErr.Error(), false, nil); err != nil {
			logger.Error("Failed to record rag run error", "error", err)
		}
		if err := recorder.SetStatus(ctx, sessionID, research.StatusFailed); err != nil {
			logger.Error("Failed to mark rag session failed", "error", err)
		}
		return
	}

	for i, step := range resp.Steps {
		role := researchmessage.RoleSystemStep
		intermediate := true
		var meta map[string]interface{}
		switch {
		case i == len(resp.Steps)-1:
			// The last step is the final answer. It becomes the
			// assistant turn and carries the reference list for later
			// reconstruction.
			role = researchmessage.RoleAssistant
			intermediate = false
			meta = map[string]interface{}{"references": referencesMeta(resp.References)}
		case step.Role == llm.RoleTool:
			role = researchmessage.RoleTool
			meta = map[string]interface{}{"tool_name": step.ToolName}
		default:
			if step.Content == "" {
				continue
			}
		}
		if err := recorder.appendRaw(ctx, sessionID, role, step.Content, intermediate, meta); err != nil {
			logger.Error("Failed to record rag run step", "error", err)
			return
		}
	}
	if err := recorder.SetStatus(ctx, sessionID, research.StatusCompleted); err != nil {
		logger.Error("Failed to mark rag session completed", "error", err)
	}
}

// GetRun returns a run's current state; ErrNotFound for unknown ids or
// other users' runs. In-flight runs are served from the process-local
// cache, finished runs fall back to the session rows.
func (s *RAGService) GetRun(ctx context.Context, userID, runID string) (*RAGRun, error) {
	s.mu.Lock()
	if run, ok := s.results[runID]; ok && run.UserID == userID {
		out := *run
		s.mu.Unlock()
		return &out, nil
	}
	s.mu.Unlock()
	return s.loadRun(ctx, userID, runID)
}

// loadRun rebuilds a run from its persisted session.
func (s *RAGService) loadRun(ctx context.Context, userID, runID string) (*RAGRun, error) {
	session, err := s.client.ResearchSession.Query().
		Where(
			researchsession.ID(runID),
			researchsession.UserID(userID),
			researchsession.CategoryEQ(researchsession.CategoryRag),
		).
		Only(ctx)
	if err != nil {
		return nil, wrapEntError(err)
	}

	msgs, err := s.client.ResearchMessage.Query().
		Where(researchmessage.SessionID(runID)).
		Order(ent.Asc(researchmessage.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load rag run messages: %w", err)
	}

	run := &RAGRun{
		ID:     session.ID,
		UserID: session.UserID,
		Done: session.ProcessingStatus == researchsession.ProcessingStatusCompleted ||
			session.ProcessingStatus == researchsession.ProcessingStatusFailed,
	}
	for _, m := range msgs {
		switch m.Role {
		case researchmessage.RoleUser:
			if run.Question == "" {
				run.Question = m.Content
			}
		case researchmessage.RoleSystemError:
			run.Error = m.Content
		case researchmessage.RoleAssistant:
			if !m.IsIntermediate {
				run.Response = &ragagent.Response{
					Answer:     m.Content,
					References: referencesFromMeta(m.MetadataJSON),
				}
			}
		}
	}
	return run, nil
}

// runTitle derives the session title from the question.
func runTitle(question string) string {
	title := []rune(question)
	if len(title) > 50 {
		title = title[:50]
	}
	return string(title)
}

func referencesMeta(refs []ragagent.Reference) []interface{} {
	out := make([]interface{}, 0, len(refs))
	for _, r := range refs {
		out = append(out, map[string]interface{}{
			"kind":     r.Kind,
			"paper_id": r.PaperID,
			"title":    r.Title,
			"url":      r.URL,
			"snippet":  r.Snippet,
		})
	}
	return out
}

func referencesFromMeta(meta map[string]interface{}) []ragagent.Reference {
	raw, ok := meta["references"]
	if !ok {
		return nil
	}
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil
	}
	var refs []ragagent.Reference
	if err := json.Unmarshal(encoded, &refs); err != nil {
		return nil
	}
	return refs
}

// toolSet always includes corpus search; web tools join in on request
// when configured.
func (s *RAGService) toolSet(ctx context.Context, userID string, req QueryRequest) (*ragagent.ToolSet, error) {
	paperIDs, err := paperIDsForTags(ctx, s.client, userID, req.Tags)
	if err != nil {
		return nil, err
	}

	tools := []ragagent.Tool{
		ragagent.NewCorpusSearchTool(s.indexer, userID, paperIDs, s.cfg.RAGTopK),
	}
	if req.UseWeb && s.web != nil && s.web.Enabled() {
		tools = append(tools,
			ragagent.NewWebSearchTool(s.web),
			ragagent.NewWebExtractTool(s.web),
		)
	}
	return ragagent.NewToolSet(tools...), nil
}
