// Package domain defines the core business entities for medrag.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Chunk: A retrievable excerpt of a clinical note
//   - ChunkMetadata: The specialty and source record describing a chunk
//   - CorpusEntry: A chunk combined with its metadata under one stable id
//   - RetrievalResult: A chunk matched to a query, with its similarity score
//   - Answer: A generated answer together with the chunks that grounded it
//   - AnswerRecord: One entry in the in-memory session log
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
