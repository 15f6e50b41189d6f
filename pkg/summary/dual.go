package summary

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// DualRequest asks for the character-none and character-selected
// variants of one logical summary in parallel. SelectedKey is nil when
// the user has no character selected.
type DualRequest struct {
	NoneKey     Key
	SelectedKey *Key

	PromptUpdatedAt time.Time

	GenerateNone     GenerateFunc
	GenerateSelected GenerateFunc
}

// DualOutcome carries both halves independently: each may have
// completed or failed on its own.
type DualOutcome struct {
	None    *Outcome
	NoneErr error

	Selected    *Outcome
	SelectedErr error
}

// Succeeded reports whether at least one variant completed.
func (d *DualOutcome) Succeeded() bool {
	return d.None != nil || d.Selected != nil
}

// EnsureDual runs both acquisitions concurrently with the same
// deadline. When both keys are held by other owners the two waits run
// in parallel; only still-pending keys escalate on timeout.
func (c *Coordinator) EnsureDual(ctx context.Context, req DualRequest) *DualOutcome {
	out := &DualOutcome{}

	var g errgroup.Group
	g.Go(func() error {
		out.None, out.NoneErr = c.Ensure(ctx, req.NoneKey, req.PromptUpdatedAt, req.GenerateNone)
		return nil
	})
	if req.SelectedKey != nil {
		g.Go(func() error {
			out.Selected, out.SelectedErr = c.Ensure(ctx, *req.SelectedKey, req.PromptUpdatedAt, req.GenerateSelected)
			return nil
		})
	}
	// Failures are reported per-variant, never as a group error.
	_ = g.Wait()
	return out
}
