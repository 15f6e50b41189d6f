package summary

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for Repo implementations.
var (
	// ErrNotFound signals that no row exists for the key.
	ErrNotFound = errors.New("summary not found")
	// ErrAlreadyExists signals a unique-index violation on insert; a
	// concurrent owner holds the key.
	ErrAlreadyExists = errors.New("summary already exists")
)

// Kind selects the summary table a key addresses.
type Kind string

// Summary kinds.
const (
	KindDefault Kind = "default"
	KindCustom  Kind = "custom"
)

// Key is the full uniqueness tuple of one summary slot. UserID and
// PromptID are empty for default summaries.
type Key struct {
	Kind      Kind
	UserID    string
	PaperID   string
	PromptID  string
	Provider  string
	Model     string
	Character string
	Affinity  int
}

// WithRoute returns the key re-addressed to another provider/model,
// used when reconciling a fallback-generated body.
func (k Key) WithRoute(provider, model string) Key {
	k.Provider = provider
	k.Model = model
	return k
}

// Record is one summary row as the coordinator sees it.
type Record struct {
	ID       string
	Body     string
	OnePoint string
	Provider string
	Model    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Epoch returns the processing number, or 0 with ready=true.
func (r *Record) Epoch() (n int, ready bool) {
	n, processing := ParseProcessing(r.Body)
	return n, !processing
}

// Final is the content an owner writes over its placeholder.
type Final struct {
	Body     string
	OnePoint string
	// Provider/Model record the route that actually produced the body.
	Provider string
	Model    string
}

// Repo is the persistence surface of the coordinator. Every mutation is
// a single atomic statement; the unique index and conditional updates
// are the coordination primitives.
type Repo interface {
	// Get returns the current row for the key, or ErrNotFound.
	Get(ctx context.Context, key Key) (*Record, error)

	// InsertPlaceholder inserts a PROCESSING_n row. ErrAlreadyExists on
	// unique violation means a concurrent owner exists.
	InsertPlaceholder(ctx context.Context, key Key, n int) (*Record, error)

	// Escalate bumps the row from epoch fromN to fromN+1 in one
	// conditional write. false means the row no longer carries fromN;
	// exactly one escalator per epoch can succeed.
	Escalate(ctx context.Context, key Key, fromN int) (bool, error)

	// Reclaim converts a READY row back into a PROCESSING_1 placeholder
	// in one conditional write, used when a custom prompt changed after
	// the row was generated. false means another caller claimed it or
	// the row is already processing.
	Reclaim(ctx context.Context, key Key) (bool, error)

	// Finalize overwrites the placeholder with the finished content iff
	// the row still carries expectedN. false means the epoch moved on
	// and this owner is stale; the content must be discarded.
	Finalize(ctx context.Context, key Key, expectedN int, final Final) (*Record, bool, error)

	// Overwrite unconditionally replaces the row's content, used for
	// fallback reconciliation onto an existing row.
	Overwrite(ctx context.Context, key Key, final Final) (*Record, error)

	// DeletePlaceholder removes the PROCESSING_n row iff it still
	// carries n, so the next requester starts from ABSENT.
	DeletePlaceholder(ctx context.Context, key Key, n int) error
}
