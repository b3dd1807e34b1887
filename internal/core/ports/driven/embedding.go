package driven

import "context"

// EmbeddingService maps text to a fixed-length vector.
//
// Determinism contract: the same input text must always yield the same
// vector. The model and its weights are fixed and versioned alongside the
// corpus - the model used at query time MUST be the model that built the
// corpus index. A mismatch with an equal dimension is a silent relevance
// bug, not a crash; only operators can catch it, by comparing the
// configured ModelName against the corpus build manifest.
//
// Implementations must tolerate concurrent calls after construction, or
// declare otherwise via EmbeddingSettings.Serialise so the pipeline guards
// the embed call with a mutex.
//
// Implementations may include:
//   - Ollama (nomic-embed-text, all-minilm)
//   - Google Generative Language API (gemini-embedding-001)
//   - Deterministic token-hash embedder (tests, offline smoke runs)
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	// Empty or unencodable input is an error. The pipeline tags
	// embedding failures with domain.ErrEmbedding; adapters return
	// plain causes.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the embedding vector size (e.g., 384, 768).
	// This must match the corpus index dimension.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the backend is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
