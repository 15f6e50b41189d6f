package config

import (
	"os"
	"time"
)

// WebToolConfig configures the external web-search and URL-extraction
// tools used by the research graph and RAG agent.
type WebToolConfig struct {
	SearchAPIKey  string
	SearchBaseURL string
	MaxResults    int
	HTTPTimeout   time.Duration
}

// LoadWebToolConfig reads web tool configuration from the environment.
// An empty SearchAPIKey disables the web-flavoured tools; the corpus
// tool is unaffected.
func LoadWebToolConfig() *WebToolConfig {
	return &WebToolConfig{
		SearchAPIKey:  os.Getenv("TAVILY_API_KEY"),
		SearchBaseURL: getEnv("TAVILY_BASE_URL", "https://api.tavily.com"),
		MaxResults:    getEnvInt("WEB_SEARCH_MAX_RESULTS", 5),
		HTTPTimeout:   getEnvDuration("WEB_TOOL_TIMEOUT", 30*time.Second),
	}
}
