// Package cleanup provides the background janitor enforcing data
// retention policies.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/rainzero1960/paperscout/ent"
	"github.com/rainzero1960/paperscout/ent/customsummary"
	"github.com/rainzero1960/paperscout/ent/defaultsummary"
	"github.com/rainzero1960/paperscout/ent/paperchatsession"
	"github.com/rainzero1960/paperscout/ent/researchsession"
	"github.com/rainzero1960/paperscout/pkg/config"
)

// processingMarker is the placeholder body prefix written by the
// summary coordinator while a generation is in flight.
const processingMarker = "[PROCESSING_"

// Service periodically enforces retention policies:
//   - Removes PROCESSING placeholder rows abandoned by crashed owners,
//     so a later request can re-acquire the key.
//   - Deletes terminal research and chat sessions past their retention
//     window; messages go with them via the FK cascade.
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	client *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client) *Service {
	return &Service{
		config: cfg,
		client: client,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"stale_processing_age", s.config.StaleProcessingAge,
		"session_retention_days", s.config.SessionRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.removeStalePlaceholders(ctx)
	s.pruneIdleSessions(ctx)
}

// removeStalePlaceholders deletes placeholder summary rows older than
// the stale-processing age. The age must exceed the coordinator's wait
// timeout so a live owner's row is never removed from under it.
func (s *Service) removeStalePlaceholders(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.StaleProcessingAge)

	defaults, err := s.client.DefaultSummary.Delete().
		Where(
			defaultsummary.BodyHasPrefix(processingMarker),
			defaultsummary.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: stale default placeholder cleanup failed", "error", err)
		return
	}

	customs, err := s.client.CustomSummary.Delete().
		Where(
			customsummary.BodyHasPrefix(processingMarker),
			customsummary.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: stale custom placeholder cleanup failed", "error", err)
		return
	}

	if defaults+customs > 0 {
		slog.Info("Retention: removed stale placeholders",
			"default_summaries", defaults, "custom_summaries", customs)
	}
}

// pruneIdleSessions deletes terminal sessions whose last update is past
// the retention window. In-flight sessions are never touched.
func (s *Service) pruneIdleSessions(ctx context.Context) {
	if s.config.SessionRetentionDays <= 0 {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -s.config.SessionRetentionDays)

	research, err := s.client.ResearchSession.Delete().
		Where(
			researchsession.ProcessingStatusIn(
				researchsession.ProcessingStatusCompleted,
				researchsession.ProcessingStatusFailed,
				researchsession.ProcessingStatusUnknownCompletion,
			),
			researchsession.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: research session cleanup failed", "error", err)
		return
	}

	chats, err := s.client.PaperChatSession.Delete().
		Where(
			paperchatsession.ProcessingStatusIn(
				paperchatsession.ProcessingStatusCompleted,
				paperchatsession.ProcessingStatusFailed,
			),
			paperchatsession.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: chat session cleanup failed", "error", err)
		return
	}

	if research+chats > 0 {
		slog.Info("Retention: pruned idle sessions",
			"research_sessions", research, "chat_sessions", chats)
	}
}
