package config

import (
	"fmt"
	"os"
	"time"
)

// ProviderType identifies an LLM provider backend.
type ProviderType string

// Supported provider backends.
const (
	ProviderGemini ProviderType = "gemini"
	ProviderOpenAI ProviderType = "openai"
)

// ModelSpec names one concrete provider/model route.
type ModelSpec struct {
	Provider ProviderType
	Model    string
}

// String returns the "provider/model" form used in logs and summary keys.
func (s ModelSpec) String() string {
	return string(s.Provider) + "/" + s.Model
}

// LLMConfig configures the gateway: primary and fallback routes, the
// embedding model, and the retry/timeout policy shared by all callers.
type LLMConfig struct {
	Primary  ModelSpec
	Fallback ModelSpec

	GeminiAPIKey string
	OpenAIAPIKey string
	// OpenAIBaseURL overrides the OpenAI endpoint; set it to an
	// OpenRouter-compatible URL to route the fallback there.
	OpenAIBaseURL string

	EmbeddingModel string
	EmbeddingDims  int

	// CallTimeout bounds a single provider attempt.
	CallTimeout time.Duration
	// RetryBackoff is the fixed wait between attempts on the same route.
	RetryBackoff time.Duration
	// MaxRetries is the attempt count on the primary route.
	MaxRetries int
	// FailThreshold is the consecutive-failure count that flips the
	// gateway to the fallback route.
	FailThreshold int
	// FallbackRetries is the attempt count on the fallback route.
	FallbackRetries int

	Temperature float32
	TopP        float32
}

// LoadLLMConfig reads gateway configuration from the environment.
// At least one provider API key must be present.
func LoadLLMConfig() (*LLMConfig, error) {
	cfg := &LLMConfig{
		Primary: ModelSpec{
			Provider: ProviderType(getEnv("LLM_PRIMARY_PROVIDER", string(ProviderGemini))),
			Model:    getEnv("LLM_PRIMARY_MODEL", "gemini-2.0-flash"),
		},
		Fallback: ModelSpec{
			Provider: ProviderType(getEnv("LLM_FALLBACK_PROVIDER", string(ProviderOpenAI))),
			Model:    getEnv("LLM_FALLBACK_MODEL", "gpt-4o-mini"),
		},
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:   os.Getenv("OPENAI_BASE_URL"),
		EmbeddingModel:  getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
		EmbeddingDims:   getEnvInt("EMBEDDING_DIMS", 1536),
		CallTimeout:     getEnvDuration("LLM_CALL_TIMEOUT", 300*time.Second),
		RetryBackoff:    getEnvDuration("LLM_RETRY_BACKOFF", time.Minute),
		MaxRetries:      getEnvInt("LLM_MAX_RETRIES", 3),
		FailThreshold:   getEnvInt("LLM_FAIL_THRESHOLD", 3),
		FallbackRetries: getEnvInt("LLM_FALLBACK_RETRIES", 3),
		Temperature:     1.0,
		TopP:            1.0,
	}

	if cfg.GeminiAPIKey == "" && cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("no LLM API key configured (GEMINI_API_KEY or OPENAI_API_KEY)")
	}

	return cfg, nil
}
