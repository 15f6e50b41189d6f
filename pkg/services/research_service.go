package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rainzero1960/paperscout/ent"
	"github.com/rainzero1960/paperscout/ent/researchmessage"
	"github.com/rainzero1960/paperscout/ent/researchsession"
	"github.com/rainzero1960/paperscout/ent/userpaperlink"
	"github.com/rainzero1960/paperscout/pkg/config"
	"github.com/rainzero1960/paperscout/pkg/llm"
	"github.com/rainzero1960/paperscout/pkg/prompt"
	"github.com/rainzero1960/paperscout/pkg/ragagent"
	"github.com/rainzero1960/paperscout/pkg/research"
	"github.com/rainzero1960/paperscout/pkg/tagging"
	"github.com/rainzero1960/paperscout/pkg/vector"
	"github.com/rainzero1960/paperscout/pkg/webtool"
)

// Research session categories.
const (
	CategoryDeepResearch = "deepresearch"
	CategoryDeepRAG      = "deeprag"
)

// ResearchService owns research sessions: creation, background graph
// execution, and the message log.
type ResearchService struct {
	client  *ent.Client
	engine  *research.Engine
	indexer *vector.Indexer
	web     *webtool.Client
	cfg     *config.ResearchConfig
}

// NewResearchService creates a new ResearchService
func NewResearchService(client *ent.Client, gateway *llm.Gateway, resolver *prompt.Resolver, indexer *vector.Indexer, web *webtool.Client, cfg *config.ResearchConfig) *ResearchService {
	if cfg == nil {
		cfg = config.DefaultResearchConfig()
	}
	s := &ResearchService{
		client:  client,
		indexer: indexer,
		web:     web,
		cfg:     cfg,
	}
	s.engine = research.NewEngine(gateway, resolver, &sessionRecorder{client: client}, cfg)
	return s
}

// CreateSession opens a new research session.
func (s *ResearchService) CreateSession(httpCtx context.Context, userID, category, title string) (*ent.ResearchSession, error) {
	cat := researchsession.Category(category)
	if err := researchsession.CategoryValidator(cat); err != nil {
		return nil, NewValidationError("category", err.Error())
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	session, err := s.client.ResearchSession.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetCategory(cat).
		SetTitle(title).
		Save(ctx)
	if err != nil {
		return nil, wrapEntError(err)
	}
	return session, nil
}

// GetSession returns a session the user owns.
func (s *ResearchService) GetSession(ctx context.Context, userID, sessionID string) (*ent.ResearchSession, error) {
	session, err := s.client.ResearchSession.Query().
		Where(researchsession.ID(sessionID), researchsession.UserID(userID)).
		Only(ctx)
	if err != nil {
		return nil, wrapEntError(err)
	}
	return session, nil
}

// ListSessions returns the user's sessions, newest first.
func (s *ResearchService) ListSessions(ctx context.Context, userID, category string) ([]*ent.ResearchSession, error) {
	q := s.client.ResearchSession.Query().
		Where(researchsession.UserID(userID)).
		Order(ent.Desc(researchsession.FieldCreatedAt))
	if category != "" {
		cat := researchsession.Category(category)
		if err := researchsession.CategoryValidator(cat); err != nil {
			return nil, NewValidationError("category", err.Error())
		}
		q = q.Where(researchsession.CategoryEQ(cat))
	}
	return q.All(ctx)
}

// ListMessages returns the session's messages in creation order.
func (s *ResearchService) ListMessages(ctx context.Context, userID, sessionID string) ([]*ent.ResearchMessage, error) {
	if _, err := s.GetSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	return s.client.ResearchMessage.Query().
		Where(researchmessage.SessionID(sessionID)).
		Order(ent.Asc(researchmessage.FieldSequence)).
		All(ctx)
}

// StartRequest launches one investigation turn on an existing session.
type StartRequest struct {
	SessionID    string
	Query        string
	GroupID      string
	UseCharacter bool
	// Tags restrict the deeprag corpus to papers carrying any of them;
	// empty searches the user's whole corpus. Ignored for deepresearch.
	Tags []string
}

// Start validates the session, persists the user turn, and schedules
// the graph run in the background. Clients poll the status endpoint.
func (s *ResearchService) Start(ctx context.Context, userID string, req StartRequest) error {
	session, err := s.GetSession(ctx, userID, req.SessionID)
	if err != nil {
		return err
	}
	if req.Query == "" {
		return NewValidationError("query", "required")
	}

	history, err := s.conversationHistory(ctx, req.SessionID)
	if err != nil {
		return err
	}

	tools, err := s.toolSet(ctx, userID, string(session.Category), req.Tags)
	if err != nil {
		return err
	}

	recorder := &sessionRecorder{client: s.client}
	if err := recorder.appendRaw(ctx, req.SessionID, researchmessage.RoleUser, req.Query, false, nil); err != nil {
		return fmt.Errorf("record user turn: %w", err)
	}
	if session.Title == "" {
		s.setTitle(ctx, req.SessionID, req.Query)
	}

	go s.processSession(research.Request{
		SessionID:    req.SessionID,
		UserID:       userID,
		Query:        req.Query,
		History:      history,
		GroupID:      req.GroupID,
		UseCharacter: req.UseCharacter,
		Tools:        tools,
	})
	return nil
}

// processSession drives one graph run to completion off the request
// goroutine. Failure bookkeeping happens inside the engine.
func (s *ResearchService) processSession(req research.Request) {
	logger := slog.With("session_id", req.SessionID, "user_id", req.UserID)
	logger.Info("Starting research session run")

	outcome, err := s.engine.Run(context.Background(), req)
	if err != nil {
		logger.Error("Research session run failed", "error", err)
		return
	}
	logger.Info("Research session run finished", "status", outcome.Status)
}

// toolSet builds the flavour-specific tools: web search/extract for
// deepresearch, scoped corpus search for deeprag.
func (s *ResearchService) toolSet(ctx context.Context, userID, category string, tags []string) (*ragagent.ToolSet, error) {
	switch category {
	case CategoryDeepResearch:
		if s.web == nil || !s.web.Enabled() {
			return nil, fmt.Errorf("web tools are not configured")
		}
		return ragagent.NewToolSet(
			ragagent.NewWebSearchTool(s.web),
			ragagent.NewWebExtractTool(s.web),
		), nil
	case CategoryDeepRAG:
		paperIDs, err := paperIDsForTags(ctx, s.client, userID, tags)
		if err != nil {
			return nil, err
		}
		return ragagent.NewToolSet(
			ragagent.NewCorpusSearchTool(s.indexer, userID, paperIDs, s.cfg.RAGTopK),
		), nil
	default:
		return nil, NewValidationError("category", fmt.Sprintf("unknown category %q", category))
	}
}

// paperIDsForTags resolves a tag list to the user's matching paper ids.
// Tags are stored as a CSV column, so the match runs over parsed lists.
func paperIDsForTags(ctx context.Context, client *ent.Client, userID string, tags []string) ([]string, error) {
	if len(tags) == 0 {
		return nil, nil
	}

	links, err := client.UserPaperLink.Query().
		Where(userpaperlink.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list paper links: %w", err)
	}

	wanted := make(map[string]bool, len(tags))
	for _, tag := range tags {
		wanted[tag] = true
	}

	var paperIDs []string
	for _, link := range links {
		for _, tag := range tagging.ParseTagList(link.Tags) {
			if wanted[tag] {
				paperIDs = append(paperIDs, link.PaperID)
				break
			}
		}
	}
	if len(paperIDs) == 0 {
		return nil, NewValidationError("tags", "no papers carry the requested tags")
	}
	return paperIDs, nil
}

// conversationHistory returns prior non-intermediate turns as LLM
// messages, oldest first.
func (s *ResearchService) conversationHistory(ctx context.Context, sessionID string) ([]llm.Message, error) {
	rows, err := s.client.ResearchMessage.Query().
		Where(
			researchmessage.SessionID(sessionID),
			researchmessage.IsIntermediate(false),
		).
		Order(ent.Asc(researchmessage.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session history: %w", err)
	}

	history := make([]llm.Message, 0, len(rows))
	for _, row := range rows {
		switch row.Role {
		case researchmessage.RoleUser:
			history = append(history, llm.Message{Role: llm.RoleUser, Content: row.Content})
		case researchmessage.RoleAssistant:
			history = append(history, llm.Message{Role: llm.RoleAssistant, Content: row.Content})
		}
	}
	return history, nil
}

func (s *ResearchService) setTitle(ctx context.Context, sessionID, query string) {
	title := []rune(query)
	if len(title) > 50 {
		title = title[:50]
	}
	if err := s.client.ResearchSession.UpdateOneID(sessionID).
		SetTitle(string(title)).
		Exec(ctx); err != nil {
		slog.Warn("Failed to set session title", "session_id", sessionID, "error", err)
	}
}

// sessionRecorder persists graph output. Graph roles map onto the
// message role enum: intermediate output becomes a system_step with the
// graph role kept in metadata, final output becomes an assistant turn,
// tool output and errors keep their own roles.
type sessionRecorder struct {
	client *ent.Client
}

// appendRetries absorbs sequence collisions between concurrent appends.
const appendRetries = 3

func (r *sessionRecorder) SetStatus(ctx context.Context, sessionID, status string) error {
	err := r.client.ResearchSession.UpdateOneID(sessionID).
		SetProcessingStatus(researchsession.ProcessingStatus(status)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set session status: %w", err)
	}
	return nil
}

func (r *sessionRecorder) AppendMessage(ctx context.Context, sessionID string, msg research.Message) error {
	role, meta := persistedRole(msg)
	return r.appendRaw(ctx, sessionID, role, msg.Content, msg.IsIntermediate, meta)
}

// appendRaw inserts the message at the next sequence number. The unique
// (session_id, sequence) index serialises concurrent appends; losers
// re-read the tail and retry.
func (r *sessionRecorder) appendRaw(ctx context.Context, sessionID string, role researchmessage.Role, content string, intermediate bool, meta map[string]interface{}) error {
	var lastErr error
	for attempt := 0; attempt < appendRetries; attempt++ {
		seq, err := r.nextSequence(ctx, sessionID)
		if err != nil {
			return err
		}

		create := r.client.ResearchMessage.Create().
			SetID(uuid.New().String()).
			SetSessionID(sessionID).
			SetRole(role).
			SetContent(content).
			SetIsIntermediate(intermediate).
			SetSequence(seq)
		if meta != nil {
			create.SetMetadataJSON(meta)
		}

		err = create.Exec(ctx)
		if err == nil {
			return nil
		}
		if !ent.IsConstraintError(err) {
			return fmt.Errorf("append session message: %w", err)
		}
		lastErr = err
	}
	return fmt.Errorf("append session message after %d attempts: %w", appendRetries, lastErr)
}

func (r *sessionRecorder) nextSequence(ctx context.Context, sessionID string) (int, error) {
	last, err := r.client.ResearchMessage.Query().
		Where(researchmessage.SessionID(sessionID)).
		Order(ent.Desc(researchmessage.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("read message tail: %w", err)
	}
	return last.Sequence + 1, nil
}

func persistedRole(msg research.Message) (researchmessage.Role, map[string]interface{}) {
	meta := map[string]interface{}{"graph_role": msg.Role}
	switch msg.Role {
	case research.RoleToolOutput:
		return researchmessage.RoleTool, meta
	case research.RoleSystemError:
		return researchmessage.RoleSystemError, nil
	default:
		if msg.IsIntermediate {
			return researchmessage.RoleSystemStep, meta
		}
		return researchmessage.RoleAssistant, meta
	}
}

var _ research.Recorder = (*sessionRecorder)(nil)
