package summary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rainzero1960/paperscout/pkg/config"
)

// Role is how a request ended up obtaining its summary.
type Role string

// Request roles.
const (
	// RoleReader found a READY row and did no work.
	RoleReader Role = "reader"
	// RoleOwner inserted the placeholder and generated.
	RoleOwner Role = "owner"
	// RoleWaiter polled until another owner's row became READY.
	RoleWaiter Role = "waiter"
	// RoleEscalator timed out waiting, bumped the epoch, and generated.
	RoleEscalator Role = "escalator"
)

// Generation is the produce of one LLM invocation.
type Generation struct {
	Body         string
	Provider     string
	Model        string
	UsedFallback bool
}

// GenerateFunc invokes the LLM for one key. The coordinator calls it at
// most once per acquisition and owns all row bookkeeping around it.
type GenerateFunc func(ctx context.Context) (*Generation, error)

// Outcome reports how a summary was obtained.
type Outcome struct {
	Record *Record
	Role   Role
	// Generated is true when this call invoked the LLM.
	Generated bool
}

// Coordinator implements the acquisition protocol. It holds no locks;
// all coordination happens through Repo's atomic statements.
type Coordinator struct {
	repo Repo
	cfg  *config.CoordinatorConfig
}

// NewCoordinator creates a coordinator.
func NewCoordinator(repo Repo, cfg *config.CoordinatorConfig) *Coordinator {
	if cfg == nil {
		cfg = config.DefaultCoordinatorConfig()
	}
	return &Coordinator{repo: repo, cfg: cfg}
}

// Ensure returns the READY summary for the key, generating it when
// absent. Concurrent callers for the same key converge on one LLM call.
// promptUpdatedAt is the custom prompt's current updated_at; zero for
// default summaries.
func (c *Coordinator) Ensure(ctx context.Context, key Key, promptUpdatedAt time.Time, generate GenerateFunc) (*Outcome, error) {
	rec, err := c.repo.Get(ctx, key)
	switch {
	case err == nil:
		n, ready := rec.Epoch()
		if !ready {
			return c.wait(ctx, key, n, promptUpdatedAt, generate)
		}
		if fresh(rec, promptUpdatedAt) {
			return &Outcome{Record: rec, Role: RoleReader}, nil
		}
		// The custom prompt changed since this row was generated. One
		// caller converts it back into a placeholder and regenerates.
		claimed, err := c.repo.Reclaim(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("reclaim stale summary: %w", err)
		}
		if claimed {
			return c.generate(ctx, key, 1, promptUpdatedAt, generate, RoleOwner)
		}
		return c.wait(ctx, key, 1, promptUpdatedAt, generate)

	case errors.Is(err, ErrNotFound):
		if _, err := c.repo.InsertPlaceholder(ctx, key, 1); err == nil {
			return c.generate(ctx, key, 1, promptUpdatedAt, generate, RoleOwner)
		} else if !errors.Is(err, ErrAlreadyExists) {
			return nil, fmt.Errorf("insert placeholder: %w", err)
		}
		// Lost the insert race; a concurrent owner holds the key.
		return c.wait(ctx, key, 1, promptUpdatedAt, generate)

	default:
		return nil, fmt.Errorf("read summary row: %w", err)
	}
}

// wait polls the row until READY, the epoch moves, the row disappears,
// or the deadline passes. Epoch movement resets the deadline; a
// disappeared row is re-claimed with a safe epoch; a deadline miss
// escalates by bumping the epoch, which transfers ownership.
func (c *Coordinator) wait(ctx context.Context, key Key, lastN int, promptUpdatedAt time.Time, generate GenerateFunc) (*Outcome, error) {
	deadline := time.Now().Add(c.cfg.WaitTimeout)

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.cfg.PollInterval):
		}

		rec, err := c.repo.Get(ctx, key)
		if errors.Is(err, ErrNotFound) {
			n := SafeNumber(lastN, c.cfg.SafeNumberBump)
			if _, err := c.repo.InsertPlaceholder(ctx, key, n); err == nil {
				slog.Info("Summary row disappeared mid-wait, taking over",
					"paper_id", key.PaperID, "epoch", n)
				return c.generate(ctx, key, n, promptUpdatedAt, generate, RoleOwner)
			} else if !errors.Is(err, ErrAlreadyExists) {
				return nil, fmt.Errorf("insert safe placeholder: %w", err)
			}
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("poll summary row: %w", err)
		}

		n, ready := rec.Epoch()
		if ready {
			return &Outcome{Record: rec, Role: RoleWaiter}, nil
		}
		if n > lastN {
			// Another escalator restarted generation; wait on the new
			// epoch with a fresh deadline.
			lastN = n
			deadline = time.Now().Add(c.cfg.WaitTimeout)
			continue
		}

		if time.Now().After(deadline) {
			bumped, err := c.repo.Escalate(ctx, key, lastN)
			if err != nil {
				return nil, fmt.Errorf("escalate summary: %w", err)
			}
			if bumped {
				slog.Warn("Summary wait timed out, escalating",
					"paper_id", key.PaperID, "from_epoch", lastN)
				return c.generate(ctx, key, lastN+1, promptUpdatedAt, generate, RoleEscalator)
			}
			// Another escalator won the conditional write; the next
			// poll observes the bumped epoch and resets the deadline.
		}
	}
}

// generate runs the LLM as the owner of epoch n and writes the result.
func (c *Coordinator) generate(ctx context.Context, key Key, n int, promptUpdatedAt time.Time, generate GenerateFunc, role Role) (*Outcome, error) {
	gen, genErr := generate(ctx)
	if genErr != nil {
		// Total failure: remove the placeholder so the next requester
		// starts from ABSENT. Detached context so cancellation cannot
		// strand the row.
		dbCtx, cancel := detached(ctx)
		defer cancel()
		if err := c.repo.DeletePlaceholder(dbCtx, key, n); err != nil {
			slog.Error("Failed to remove placeholder after generation failure",
				"paper_id", key.PaperID, "epoch", n, "error", err)
		}
		return nil, fmt.Errorf("summary generation: %w", genErr)
	}

	final := Final{
		Body:     gen.Body,
		OnePoint: ExtractOnePoint(gen.Body, c.cfg.OnePointMarker),
		Provider: gen.Provider,
		Model:    gen.Model,
	}

	dbCtx, cancel := detached(ctx)
	defer cancel()

	// Fallback reconciliation: when the body came from the fallback
	// route, a row may already exist under the fallback's own key.
	if gen.UsedFallback && (gen.Provider != key.Provider || gen.Model != key.Model) {
		fallbackKey := key.WithRoute(gen.Provider, gen.Model)
		if _, err := c.repo.Get(dbCtx, fallbackKey); err == nil {
			rec, err := c.repo.Overwrite(dbCtx, fallbackKey, final)
			if err != nil {
				return nil, fmt.Errorf("reconcile fallback summary: %w", err)
			}
			if err := c.repo.DeletePlaceholder(dbCtx, key, n); err != nil {
				slog.Error("Failed to remove placeholder after fallback reconciliation",
					"paper_id", key.PaperID, "epoch", n, "error", err)
			}
			return &Outcome{Record: rec, Role: role, Generated: true}, nil
		} else if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("read fallback summary row: %w", err)
		}
		// No prior fallback row: the primary row keeps the key but
		// records the route that actually produced the body.
	}

	rec, current, err := c.repo.Finalize(dbCtx, key, n, final)
	if err != nil {
		return nil, fmt.Errorf("finalize summary: %w", err)
	}
	if !current {
		// The epoch moved on while we generated: an escalator owns the
		// key now. Discard our body and wait for theirs.
		slog.Warn("Discarding stale generation, epoch moved on",
			"paper_id", key.PaperID, "stale_epoch", n)
		cur, err := c.repo.Get(ctx, key)
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("summary row disappeared after stale generation")
		}
		if err != nil {
			return nil, fmt.Errorf("re-read summary row: %w", err)
		}
		if m, ready := cur.Epoch(); !ready {
			return c.wait(ctx, key, m, promptUpdatedAt, generate)
		}
		return &Outcome{Record: cur, Role: RoleWaiter}, nil
	}
	return &Outcome{Record: rec, Role: role, Generated: true}, nil
}

// fresh reports whether a READY row is still valid against the current
// custom prompt version.
func fresh(rec *Record, promptUpdatedAt time.Time) bool {
	if promptUpdatedAt.IsZero() {
		return true
	}
	return !promptUpdatedAt.After(rec.UpdatedAt)
}

// detached yields a context that survives caller cancellation, bounded
// so a wedged database cannot hold the goroutine forever. Row cleanup
// and final writes must complete even when the HTTP client went away.
func detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
}
