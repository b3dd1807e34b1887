package driven

import "context"

// GenerationService is the narrow interface over the external answer
// generation backend. The core treats it as an opaque collaborator:
// credential management, model selection and retry policy belong to the
// caller, not here.
//
// Implementations may include:
//   - Google Generative Language API (gemini-2.0-flash)
//   - Ollama (local models)
type GenerationService interface {
	// Generate produces a completion for the prompt via one synchronous
	// call and returns the full response text unmodified. Transport
	// failures, timeouts and error statuses are errors; the pipeline
	// tags them with domain.ErrGeneration, keeping the cause reachable.
	// No retry is performed internally.
	Generate(ctx context.Context, prompt string) (string, error)

	// ModelName returns the name of the generation model being used.
	ModelName() string

	// Ping validates the backend is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
