// Package jobs tracks long-running per-user background flows in
// process-local state. Clients poll the status endpoint; state does not
// survive a restart.
package jobs

import (
	"sync"
	"time"
)

// Status is a snapshot of one user's running job.
type Status struct {
	IsRunning bool      `json:"is_running"`
	Total     int       `json:"total"`
	Processed int       `json:"processed"`
	StartTime time.Time `json:"start_time"`
	LastError string    `json:"error,omitempty"`

	// ETASeconds is derived from throughput so far; nil until at least
	// one item has finished.
	ETASeconds *float64 `json:"eta_seconds,omitempty"`
}

// Registry is a mutex-guarded map of user id to job status.
type Registry struct {
	mu   sync.Mutex
	jobs map[string]*Status
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{jobs: make(map[string]*Status)}
}

// Start registers a new run for the user. Returns false when a run is
// already in flight; the existing entry is left untouched.
func (r *Registry) Start(userID string, total int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if st, ok := r.jobs[userID]; ok && st.IsRunning {
		return false
	}
	r.jobs[userID] = &Status{
		IsRunning: true,
		Total:     total,
		StartTime: time.Now(),
	}
	return true
}

// Advance increments the processed count.
func (r *Registry) Advance(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if st, ok := r.jobs[userID]; ok && st.IsRunning {
		st.Processed++
	}
}

// Fail records the most recent error without stopping the run.
func (r *Registry) Fail(userID string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if st, ok := r.jobs[userID]; ok {
		st.LastError = err.Error()
	}
}

// Finish marks the run complete. The entry stays readable until the
// next Start so clients can observe the terminal state.
func (r *Registry) Finish(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if st, ok := r.jobs[userID]; ok {
		st.IsRunning = false
	}
}

// Get returns a copy of the user's status; ok is false when the user
// has never started a run in this process.
func (r *Registry) Get(userID string) (Status, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.jobs[userID]
	if !ok {
		return Status{}, false
	}
	out := *st
	if out.IsRunning && out.Processed > 0 && out.Total > out.Processed {
		elapsed := time.Since(out.StartTime).Seconds()
		perItem := elapsed / float64(out.Processed)
		eta := perItem * float64(out.Total-out.Processed)
		out.ETASeconds = &eta
	}
	return out, true
}
