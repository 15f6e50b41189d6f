package config

import "time"

// BulkConfig controls the bulk summary flow: fan-out widths and the
// graceful-shutdown budget for in-flight generations.
type BulkConfig struct {
	// PaperWorkers is the number of papers processed concurrently per
	// bulk run.
	PaperWorkers int

	// PromptWorkers is the number of prompts dispatched concurrently
	// within one paper.
	PromptWorkers int

	// GracefulShutdownTimeout is the max time to wait for in-flight
	// generations during shutdown.
	GracefulShutdownTimeout time.Duration
}

// DefaultBulkConfig returns the built-in bulk-flow defaults.
func DefaultBulkConfig() *BulkConfig {
	return &BulkConfig{
		PaperWorkers:            3,
		PromptWorkers:           4,
		GracefulShutdownTimeout: 10 * time.Minute,
	}
}
