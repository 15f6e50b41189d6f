package summary

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rainzero1960/paperscout/pkg/config"
	"github.com/rainzero1960/paperscout/pkg/jobs"
	"golang.org/x/sync/errgroup"
)

// ErrBulkAlreadyRunning is returned when the user already has a bulk
// run in flight.
var ErrBulkAlreadyRunning = errors.New("bulk run already in progress for user")

// Task is one paper's worth of bulk work: its prompt generations, run
// in parallel, then an optional per-paper follow-up (selection,
// vectorisation).
type Task struct {
	PaperID string
	// Prompts each perform one dual generation.
	Prompts []func(ctx context.Context) error
	// After runs once all prompts for the paper finished.
	After func(ctx context.Context) error
}

// BulkRunner fans bulk work out over a bounded worker pool and reports
// per-user progress to the job registry. Individual failures are
// recorded and skipped; the run continues.
type BulkRunner struct {
	cfg      *config.BulkConfig
	registry *jobs.Registry
}

// NewBulkRunner creates a runner.
func NewBulkRunner(cfg *config.BulkConfig, registry *jobs.Registry) *BulkRunner {
	if cfg == nil {
		cfg = config.DefaultBulkConfig()
	}
	return &BulkRunner{cfg: cfg, registry: registry}
}

// Run processes the tasks for one user. It blocks until every task
// finished or ctx is cancelled; callers start it on its own goroutine.
func (b *BulkRunner) Run(ctx context.Context, userID string, tasks []Task) error {
	if !b.registry.Start(userID, len(tasks)) {
		return ErrBulkAlreadyRunning
	}
	defer b.registry.Finish(userID)

	var papers errgroup.Group
	papers.SetLimit(b.cfg.PaperWorkers)
	for _, task := range tasks {
		task := task
		papers.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			b.runTask(ctx, userID, task)
			b.registry.Advance(userID)
			return nil
		})
	}
	_ = papers.Wait()
	return ctx.Err()
}

func (b *BulkRunner) runTask(ctx context.Context, userID string, task Task) {
	var prompts errgroup.Group
	prompts.SetLimit(b.cfg.PromptWorkers)
	for _, run := range task.Prompts {
		run := run
		prompts.Go(func() error {
			if err := run(ctx); err != nil {
				slog.Error("Bulk prompt generation failed",
					"user_id", userID, "paper_id", task.PaperID, "error", err)
				b.registry.Fail(userID, err)
			}
			return nil
		})
	}
	_ = prompts.Wait()

	if task.After != nil {
		if err := task.After(ctx); err != nil {
			slog.Error("Bulk per-paper follow-up failed",
				"user_id", userID, "paper_id", task.PaperID, "error", err)
			b.registry.Fail(userID, err)
		}
	}
}
