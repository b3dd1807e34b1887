// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the pipeline to function:
//
//   - CorpusStore: Read-only access to the offline-built corpus
//   - VectorIndex: Nearest-neighbour search over the corpus vectors
//   - EmbeddingService: Maps query text to a vector
//   - GenerationService: The external answer generation backend
//   - SessionLog: Append-only record of answered queries
//
// # Optional Interfaces
//
//   - PromptStore: User-customisable prompt templates. When nil, the
//     grounded answerer uses its embedded defaults.
//   - ConfigStore: Application configuration persistence.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
