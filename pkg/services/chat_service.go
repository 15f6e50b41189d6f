package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rainzero1960/paperscout/ent"
	"github.com/rainzero1960/paperscout/ent/paperchatmessage"
	"github.com/rainzero1960/paperscout/ent/paperchatsession"
	"github.com/rainzero1960/paperscout/pkg/config"
	"github.com/rainzero1960/paperscout/pkg/llm"
	"github.com/rainzero1960/paperscout/pkg/prompt"
)

// PaperChatService runs per-paper conversations: the paper's content is
// pinned into the system prompt and every turn is persisted.
type PaperChatService struct {
	client   *ent.Client
	papers   *PaperService
	gateway  *llm.Gateway
	resolver *prompt.Resolver
	cfg      *config.CoordinatorConfig
}

// NewPaperChatService creates a new PaperChatService
func NewPaperChatService(client *ent.Client, papers *PaperService, gateway *llm.Gateway, resolver *prompt.Resolver, cfg *config.CoordinatorConfig) *PaperChatService {
	if cfg == nil {
		cfg = config.DefaultCoordinatorConfig()
	}
	return &PaperChatService{client: client, papers: papers, gateway: gateway, resolver: resolver, cfg: cfg}
}

// CreateSession opens a chat session on a paper the user has ingested.
func (s *PaperChatService) CreateSession(httpCtx context.Context, userID, paperID, title string) (*ent.PaperChatSession, error) {
	if _, err := s.papers.GetLink(httpCtx, userID, paperID); err != nil {
		return nil, err
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	session, err := s.client.PaperChatSession.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetPaperID(paperID).
		SetTitle(title).
		Save(ctx)
	if err != nil {
		return nil, wrapEntError(err)
	}
	return session, nil
}

// GetSession returns a chat session the user owns.
func (s *PaperChatService) GetSession(ctx context.Context, userID, sessionID string) (*ent.PaperChatSession, error) {
	session, err := s.client.PaperChatSession.Query().
		Where(paperchatsession.ID(sessionID), paperchatsession.UserID(userID)).
		Only(ctx)
	if err != nil {
		return nil, wrapEntError(err)
	}
	return session, nil
}

// ListSessions returns the user's chat sessions for a paper, newest
// first. An empty paperID lists across all papers.
func (s *PaperChatService) ListSessions(ctx context.Context, userID, paperID string) ([]*ent.PaperChatSession, error) {
	q := s.client.PaperChatSession.Query().
		Where(paperchatsession.UserID(userID)).
		Order(ent.Desc(paperchatsession.FieldCreatedAt))
	if paperID != "" {
		q = q.Where(paperchatsession.PaperID(paperID))
	}
	return q.All(ctx)
}

// ListMessages returns the session's messages in creation order.
func (s *PaperChatService) ListMessages(ctx context.Context, userID, sessionID string) ([]*ent.PaperChatMessage, error) {
	if _, err := s.GetSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	return s.client.PaperChatMessage.Query().
		Where(paperchatmessage.SessionID(sessionID)).
		Order(ent.Asc(paperchatmessage.FieldSequence)).
		All(ctx)
}

// SendMessage appends the user's turn, runs the model over the paper
// content plus history, and appends the answer. The session status
// moves pending/processing/completed so pollers can render progress;
// failure leaves status=failed with a system_error message.
func (s *PaperChatService) SendMessage(ctx context.Context, userID, sessionID, content string, useCharacter bool) (*ent.PaperChatMessage, error) {
	if content == "" {
		return nil, NewValidationError("content", "required")
	}
	session, err := s.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.setStatus(ctx, sessionID, paperchatsession.ProcessingStatusProcessing); err != nil {
		return nil, err
	}

	if _, err := s.append(ctx, sessionID, paperchatmessage.RoleUser, content); err != nil {
		return nil, err
	}

	answer, err := s.answer(ctx, userID, session.PaperID, sessionID, content, useCharacter)
	if err != nil {
		// Status and error message survive the failed request so the
		// session view can show what happened.
		dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		if _, aerr := s.append(dctx, sessionID, paperchatmessage.RoleSystemError, err.Error()); aerr != nil {
			slog.Error("Failed to record chat error", "session_id", sessionID, "error", aerr)
		}
		if serr := s.setStatus(dctx, sessionID, paperchatsession.ProcessingStatusFailed); serr != nil {
			slog.Error("Failed to mark chat session failed", "session_id", sessionID, "error", serr)
		}
		return nil, err
	}

	msg, err := s.append(ctx, sessionID, paperchatmessage.RoleAssistant, answer)
	if err != nil {
		return nil, err
	}
	if err := s.setStatus(ctx, sessionID, paperchatsession.ProcessingStatusCompleted); err != nil {
		return nil, err
	}
	return msg, nil
}

// answer runs one model turn over the pinned paper and the session
// history.
func (s *PaperChatService) answer(ctx context.Context, userID, paperID, sessionID, question string, useCharacter bool) (string, error) {
	resolved, err := s.resolver.Resolve(ctx, prompt.Request{
		Type:         prompt.TypePaperChatSystem,
		UserID:       userID,
		UseCharacter: useCharacter,
	})
	if err != nil {
		return "", fmt.Errorf("resolve chat system prompt: %w", err)
	}

	meta, err := s.papers.GetPaper(ctx, paperID)
	if err != nil {
		return "", err
	}
	body, err := s.papers.EnsureFullText(ctx, paperID)
	if err != nil {
		return "", err
	}

	system := resolved.Body + "\n\n対象論文:\n" + paperContent(meta, body, s.cfg.MaxBodyChars)

	history, err := s.history(ctx, sessionID)
	if err != nil {
		return "", err
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: system})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: question})

	result, err := s.gateway.Invoke(ctx, messages, s.gateway.DefaultSpec(), nil)
	if err != nil {
		return "", fmt.Errorf("chat turn: %w", err)
	}
	return result.Text, nil
}

// history returns prior user/assistant turns, oldest first.
func (s *PaperChatService) history(ctx context.Context, sessionID string) ([]llm.Message, error) {
	rows, err := s.client.PaperChatMessage.Query().
		Where(
			paperchatmessage.SessionID(sessionID),
			paperchatmessage.RoleIn(paperchatmessage.RoleUser, paperchatmessage.RoleAssistant),
		).
		Order(ent.Asc(paperchatmessage.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load chat history: %w", err)
	}

	history := make([]llm.Message, 0, len(rows))
	for _, row := range rows {
		role := llm.RoleUser
		if row.Role == paperchatmessage.RoleAssistant {
			role = llm.RoleAssistant
		}
		history = append(history, llm.Message{Role: role, Content: row.Content})
	}
	return history, nil
}

// append inserts a message at the next sequence number; the unique
// (session_id, sequence) index serialises concurrent appends.
func (s *PaperChatService) append(ctx context.Context, sessionID string, role paperchatmessage.Role, content string) (*ent.PaperChatMessage, error) {
	var lastErr error
	for attempt := 0; attempt < appendRetries; attempt++ {
		last, err := s.client.PaperChatMessage.Query().
			Where(paperchatmessage.SessionID(sessionID)).
			Order(ent.Desc(paperchatmessage.FieldSequence)).
			First(ctx)
		seq := 1
		switch {
		case err == nil:
			seq = last.Sequence + 1
		case !ent.IsNotFound(err):
			return nil, fmt.Errorf("read chat tail: %w", err)
		}

		msg, err := s.client.PaperChatMessage.Create().
			SetID(uuid.New().String()).
			SetSessionID(sessionID).
			SetRole(role).
			SetContent(content).
			SetSequence(seq).
			Save(ctx)
		if err == nil {
			return msg, nil
		}
		if !ent.IsConstraintError(err) {
			return nil, fmt.Errorf("append chat message: %w", err)
		}
		lastErr = err
	}
	return nil, fmt.Errorf("append chat message after %d attempts: %w", appendRetries, lastErr)
}

func (s *PaperChatService) setStatus(ctx context.Context, sessionID string, status paperchatsession.ProcessingStatus) error {
	if err := s.client.PaperChatSession.UpdateOneID(sessionID).
		SetProcessingStatus(status).
		Exec(ctx); err != nil {
		return fmt.Errorf("set chat session status: %w", err)
	}
	return nil
}
