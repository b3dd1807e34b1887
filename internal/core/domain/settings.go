package domain

const unknownDescription = "Unknown"

// AIProvider identifies a backend for embeddings or answer generation.
type AIProvider string

// Available AI providers.
const (
	// AIProviderGemini is the Google Generative Language API.
	AIProviderGemini AIProvider = "gemini"

	// AIProviderOllama is a local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderHash is the deterministic local token-hash embedder.
	// Embedding only; useful for tests and offline smoke runs.
	AIProviderHash AIProvider = "hash"
)

// IsValid returns true if the provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderGemini, AIProviderOllama, AIProviderHash:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderGemini
}

// IsLocal returns true if this provider runs without network access
// to a cloud API.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderOllama || p == AIProviderHash
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderGemini:
		return "Google Gemini (cloud)"
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderHash:
		return "Token hash (local, deterministic)"
	default:
		return unknownDescription
	}
}

// EmbeddingSettings holds embedding backend configuration.
//
// Operational invariant: the configured model must be the model that
// produced the corpus vectors. A different model with the same dimension
// is a silent relevance bug - nothing at query time can detect it, so the
// model name is versioned alongside the corpus and checked by operators,
// not by code.
type EmbeddingSettings struct {
	// Provider is the embedding backend.
	Provider AIProvider

	// Model is the embedding model name, e.g. "nomic-embed-text".
	Model string

	// BaseURL is the API endpoint (for Ollama).
	BaseURL string

	// APIKey is the API credential (for Gemini).
	APIKey string

	// Dimensions is the vector size the model produces. Must equal the
	// corpus index dimension.
	Dimensions int

	// Serialise forces embedding calls through a mutex. Set this when
	// the backend does not tolerate concurrent invocation; the guard is
	// scoped to the embed call only.
	Serialise bool
}

// IsConfigured returns true if the embedding backend is set up.
func (e EmbeddingSettings) IsConfigured() bool {
	if !e.Provider.IsValid() {
		return false
	}
	if e.Provider.RequiresAPIKey() && e.APIKey == "" {
		return false
	}
	return true
}

// GenerationSettings holds generation backend configuration.
type GenerationSettings struct {
	// Provider is the generation backend.
	Provider AIProvider

	// Model is the generation model name, e.g. "gemini-2.0-flash".
	Model string

	// BaseURL is the API endpoint (for Ollama).
	BaseURL string

	// APIKey is the API credential (for Gemini).
	APIKey string

	// TimeoutSeconds bounds a single generation call. Zero means the
	// recommended default (30s). Expiry surfaces as a generation error,
	// never as an indefinite hang.
	TimeoutSeconds int

	// RequestsPerMinute enables a client-side rate limit when positive.
	RequestsPerMinute int
}

// IsConfigured returns true if the generation backend is set up.
func (g GenerationSettings) IsConfigured() bool {
	if !g.Provider.IsValid() || g.Provider == AIProviderHash {
		return false
	}
	if g.Provider.RequiresAPIKey() && g.APIKey == "" {
		return false
	}
	return true
}

// AppSettings is the full persisted configuration.
type AppSettings struct {
	// CorpusDir is the directory holding the corpus artifacts
	// (corpus.db and vectors.bin).
	CorpusDir string

	Embedding  EmbeddingSettings
	Generation GenerationSettings
	Ask        AskSettings
}

// AskSettings holds query pipeline defaults.
type AskSettings struct {
	// DefaultK is the number of chunks retrieved when the caller does
	// not specify one.
	DefaultK int

	// MaxK caps the per-query chunk count accepted from the caller.
	MaxK int
}
