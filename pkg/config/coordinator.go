package config

import "time"

// CoordinatorConfig controls the summary generation coordinator
// (pkg/summary): how waiters poll, when they escalate, and how the
// one-point line is located in generated bodies.
type CoordinatorConfig struct {
	// PollInterval is how often a waiter re-reads the PROCESSING row.
	PollInterval time.Duration

	// WaitTimeout is how long a waiter polls one key before escalating
	// and taking ownership.
	WaitTimeout time.Duration

	// SafeNumberBump is added to the last observed processing number when
	// a row disappears mid-wait, making a collision with a resurrected
	// owner statistically impossible.
	SafeNumberBump int

	// OnePointMarker is the section heading whose first following line
	// becomes the one_point excerpt. Localised deployments override it.
	OnePointMarker string

	// MaxBodyChars truncates paper full text before prompting.
	MaxBodyChars int
}

// DefaultCoordinatorConfig returns the built-in coordinator policy.
func DefaultCoordinatorConfig() *CoordinatorConfig {
	return &CoordinatorConfig{
		PollInterval:   60 * time.Second,
		WaitTimeout:    5 * time.Minute,
		SafeNumberBump: 100,
		OnePointMarker: "一言でいうと",
		MaxBodyChars:   100_000,
	}
}
