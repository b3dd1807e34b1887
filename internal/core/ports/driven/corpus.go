package driven

import "github.com/bismatayyab23-tech/medrag-cli/internal/core/domain"

// CorpusStore provides read-only access to the offline-built corpus.
//
// The corpus is loaded once at startup and never written afterwards, so
// implementations are safe to share across concurrent query pipelines
// without locking. There are no insert or delete operations.
type CorpusStore interface {
	// ChunkCount returns the number of entries in the corpus.
	ChunkCount() int

	// SpecialtySet returns the sorted distinct medical specialties
	// across all entries.
	SpecialtySet() []string

	// VectorDimension returns the embedding dimension of the corpus
	// index built alongside the chunks.
	VectorDimension() int

	// Entry returns the combined chunk+metadata record at position i.
	// Positions are 0-based and correspond to vector index positions.
	Entry(i int) (domain.CorpusEntry, error)

	// Close releases resources.
	Close() error
}

// VectorIndex provides nearest-neighbour search over the corpus vectors.
// Read-only at query time; built offline together with the corpus.
type VectorIndex interface {
	// Search finds the k nearest entries to the query vector, ordered by
	// descending similarity with ties broken by ascending position.
	// Returns fewer than k hits only when the index holds fewer vectors.
	// A query dimension mismatch is an error.
	Search(query []float32, k int) ([]VectorHit, error)

	// Dimension returns the vector dimension of the index.
	Dimension() int

	// Count returns the number of vectors in the index.
	Count() int
}

// VectorHit is one similarity search result.
type VectorHit struct {
	// Position is the 0-based corpus position of the matched vector.
	Position int

	// Similarity is the cosine similarity score in [-1, 1].
	Similarity float64
}
