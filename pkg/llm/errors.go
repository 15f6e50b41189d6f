package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrAllRetriesFailed is returned when every attempt on every route has
// been exhausted. The wrapped CallError carries the final cause and the
// last-attempted provider/model.
var ErrAllRetriesFailed = errors.New("all retries failed")

// Kind classifies a call failure so retry controllers can pattern-match.
type Kind string

// Failure kinds.
const (
	KindTimeout   Kind = "timeout"
	KindTransient Kind = "transient"
	KindFatal     Kind = "fatal"
)

// CallError wraps a provider failure with its classification and route.
type CallError struct {
	Kind     Kind
	Provider string
	Model    string
	Err      error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("llm call failed (%s, %s/%s): %v", e.Kind, e.Provider, e.Model, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// IsTimeout reports whether err is a deadline-kind call failure.
func IsTimeout(err error) bool {
	var ce *CallError
	if errors.As(err, &ce) {
		return ce.Kind == KindTimeout
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// IsTransient reports whether err is worth retrying on the same route.
func IsTransient(err error) bool {
	var ce *CallError
	if errors.As(err, &ce) {
		return ce.Kind == KindTransient
	}
	return false
}

// classify maps a raw provider error to a Kind. Rate limits, 5xx, and
// network failures are transient; context deadline is timeout; the rest
// is fatal.
func classify(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	if errors.Is(err, context.Canceled) {
		return KindFatal
	}

	msg := strings.ToLower(err.Error())
	transientPatterns := []string{
		"rate limit",
		"too many requests",
		"429",
		"500",
		"502",
		"503",
		"504",
		"internal server error",
		"bad gateway",
		"service unavailable",
		"overloaded",
		"connection",
		"network",
		"temporar",
		"timeout",
	}
	for _, p := range transientPatterns {
		if strings.Contains(msg, p) {
			return KindTransient
		}
	}
	return KindFatal
}
