package summary

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// memRepo is an in-memory Repo whose methods are each atomic, matching
// the single-statement semantics of the database implementation.
type memRepo struct {
	mu   sync.Mutex
	rows map[Key]*Record
	seq  int
}

func newMemRepo() *memRepo {
	return &memRepo{rows: make(map[Key]*Record)}
}

func (r *memRepo) Get(_ context.Context, key Key) (*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.rows[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := *rec
	return &out, nil
}

func (r *memRepo) InsertPlaceholder(_ context.Context, key Key, n int) (*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[key]; ok {
		return nil, ErrAlreadyExists
	}
	r.seq++
	now := time.Now()
	rec := &Record{
		ID:        fmt.Sprintf("sum-%d", r.seq),
		Body:      ProcessingBody(n),
		Provider:  key.Provider,
		Model:     key.Model,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.rows[key] = rec
	out := *rec
	return &out, nil
}

func (r *memRepo) Escalate(_ context.Context, key Key, fromN int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.rows[key]
	if !ok {
		return false, nil
	}
	n, processing := ParseProcessing(rec.Body)
	if !processing || n != fromN {
		return false, nil
	}
	rec.Body = ProcessingBody(fromN + 1)
	rec.UpdatedAt = time.Now()
	return true, nil
}

func (r *memRepo) Reclaim(_ context.Context, key Key) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.rows[key]
	if !ok {
		return false, nil
	}
	if _, processing := ParseProcessing(rec.Body); processing {
		return false, nil
	}
	rec.Body = ProcessingBody(1)
	rec.OnePoint = ""
	rec.UpdatedAt = time.Now()
	return true, nil
}

func (r *memRepo) Finalize(_ context.Context, key Key, expectedN int, final Final) (*Record, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.rows[key]
	if !ok {
		return nil, false, nil
	}
	n, processing := ParseProcessing(rec.Body)
	if !processing || n != expectedN {
		return nil, false, nil
	}
	rec.Body = final.Body
	rec.OnePoint = final.OnePoint
	rec.Provider = final.Provider
	rec.Model = final.Model
	rec.UpdatedAt = time.Now()
	out := *rec
	return &out, true, nil
}

func (r *memRepo) Overwrite(_ context.Context, key Key, final Final) (*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.rows[key]
	if !ok {
		return nil, ErrNotFound
	}
	rec.Body = final.Body
	rec.OnePoint = final.OnePoint
	rec.Provider = final.Provider
	rec.Model = final.Model
	rec.UpdatedAt = time.Now()
	out := *rec
	return &out, nil
}

func (r *memRepo) DeletePlaceholder(_ context.Context, key Key, n int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.rows[key]
	if !ok {
		return nil
	}
	if m, processing := ParseProcessing(rec.Body); processing && m == n {
		delete(r.rows, key)
	}
	return nil
}

// remove drops the row outright, simulating a crashed owner's cleanup.
func (r *memRepo) remove(key Key) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, key)
}

// body returns the raw current body for assertions.
func (r *memRepo) body(key Key) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.rows[key]
	if !ok {
		return "", false
	}
	return rec.Body, true
}
