package config

import "time"

// RetentionConfig controls the background janitor (pkg/cleanup).
type RetentionConfig struct {
	// CleanupInterval is how often the janitor runs.
	CleanupInterval time.Duration

	// StaleProcessingAge is how old a PROCESSING placeholder must be
	// before it is treated as abandoned by a crashed owner and removed.
	// Must comfortably exceed the coordinator's wait timeout.
	StaleProcessingAge time.Duration

	// SessionRetentionDays is how long inactive research and chat
	// sessions are kept. Zero disables session retention.
	SessionRetentionDays int
}

// LoadRetentionConfig reads the janitor knobs from the environment.
func LoadRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		CleanupInterval:      getEnvDuration("CLEANUP_INTERVAL", time.Hour),
		StaleProcessingAge:   getEnvDuration("STALE_PROCESSING_AGE", 30*time.Minute),
		SessionRetentionDays: getEnvInt("SESSION_RETENTION_DAYS", 0),
	}
}
