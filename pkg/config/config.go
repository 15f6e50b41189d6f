// Package config provides environment-driven configuration for the
// PaperScout server. All knobs have working defaults so a bare process
// starts against localhost Postgres with only API keys supplied.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the umbrella configuration object returned by Load() and
// threaded through the application.
type Config struct {
	LLM         *LLMConfig
	Coordinator *CoordinatorConfig
	Bulk        *BulkConfig
	Vector      *VectorConfig
	WebTool     *WebToolConfig
	Research    *ResearchConfig
	Retention   *RetentionConfig
}

// Load builds the full configuration from environment variables.
func Load() (*Config, error) {
	llm, err := LoadLLMConfig()
	if err != nil {
		return nil, fmt.Errorf("llm config: %w", err)
	}

	vector, err := LoadVectorConfig()
	if err != nil {
		return nil, fmt.Errorf("vector config: %w", err)
	}

	cfg := &Config{
		LLM:         llm,
		Coordinator: DefaultCoordinatorConfig(),
		Bulk:        DefaultBulkConfig(),
		Vector:      vector,
		WebTool:     LoadWebToolConfig(),
		Research:    DefaultResearchConfig(),
		Retention:   LoadRetentionConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints that cannot be expressed as
// per-field defaults.
func (c *Config) Validate() error {
	if c.Coordinator.PollInterval <= 0 {
		return fmt.Errorf("coordinator poll_interval must be positive")
	}
	if c.Coordinator.WaitTimeout < c.Coordinator.PollInterval {
		return fmt.Errorf("coordinator wait_timeout must be >= poll_interval")
	}
	if c.Bulk.PaperWorkers <= 0 {
		return fmt.Errorf("bulk paper_workers must be positive")
	}
	if c.LLM.Primary.Provider == c.LLM.Fallback.Provider &&
		c.LLM.Primary.Model == c.LLM.Fallback.Model {
		return fmt.Errorf("fallback route must differ from primary")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
