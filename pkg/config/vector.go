package config

import "fmt"

// VectorBackend selects the vector store implementation.
type VectorBackend string

// Supported vector store backends.
const (
	// VectorBackendChromem is the embedded on-disk store.
	VectorBackendChromem VectorBackend = "chromem"
	// VectorBackendPgvector stores vectors in Postgres with the pgvector
	// extension, sharing the relational database.
	VectorBackendPgvector VectorBackend = "pgvector"
)

// VectorConfig configures the vector store adapter.
type VectorConfig struct {
	Backend VectorBackend

	// PersistPath is the on-disk location for the chromem backend.
	PersistPath string
	// Collection is the chromem collection name.
	Collection string

	// BatchSize chunks bulk writes and existence checks.
	BatchSize int
}

// LoadVectorConfig reads vector store configuration from the environment.
func LoadVectorConfig() (*VectorConfig, error) {
	backend := VectorBackend(getEnv("VECTOR_BACKEND", string(VectorBackendChromem)))
	switch backend {
	case VectorBackendChromem, VectorBackendPgvector:
	default:
		return nil, fmt.Errorf("unknown vector backend %q", backend)
	}

	return &VectorConfig{
		Backend:     backend,
		PersistPath: getEnv("VECTOR_PERSIST_PATH", "./data/vectors"),
		Collection:  getEnv("VECTOR_COLLECTION", "paper_summaries"),
		BatchSize:   getEnvInt("VECTOR_BATCH_SIZE", 100),
	}, nil
}
