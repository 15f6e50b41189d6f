package config

// ResearchConfig controls the research graph engine.
type ResearchConfig struct {
	// RecursionLimit is a safety net; natural termination is the
	// Summary role.
	RecursionLimit int

	// RoleRetries is the in-graph retry count per role on top of the
	// gateway's own retry policy.
	RoleRetries int

	// RAGTopK is the corpus_search result count.
	RAGTopK int
}

// DefaultResearchConfig returns the built-in research graph defaults.
func DefaultResearchConfig() *ResearchConfig {
	return &ResearchConfig{
		RecursionLimit: 20_000,
		RoleRetries:    3,
		RAGTopK:        5,
	}
}
