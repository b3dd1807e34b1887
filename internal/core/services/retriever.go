package services

import (
	"fmt"

	"github.com/bismatayyab23-tech/medrag-cli/internal/core/domain"
	"github.com/bismatayyab23-tech/medrag-cli/internal/core/ports/driven"
	"github.com/bismatayyab23-tech/medrag-cli/internal/logger"
)

// RetrieverService translates vector index hits into retrieval results by
// joining them against the corpus store. Ranking itself is delegated to the
// index; this service only validates inputs and hydrates the hits.
type RetrieverService struct {
	corpus driven.CorpusStore
	index  driven.VectorIndex
}

// NewRetrieverService creates a retriever over a loaded corpus and its index.
func NewRetrieverService(corpus driven.CorpusStore, index driven.VectorIndex) *RetrieverService {
	return &RetrieverService{
		corpus: corpus,
		index:  index,
	}
}

// Retrieve returns the k nearest chunks to the query vector, ordered by
// descending similarity with ties broken by corpus position. It returns
// fewer than k results only when the corpus holds fewer than k chunks.
func (s *RetrieverService) Retrieve(queryVector []float32, k int) ([]domain.RetrievalResult, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k must be >= 1, got %d", domain.ErrInvalidInput, k)
	}
	if got, want := len(queryVector), s.index.Dimension(); got != want {
		// The query was embedded with a different model than the one
		// that built the index. Surfaced distinctly so operators can
		// spot a stale index.
		return nil, fmt.Errorf("%w: query vector has %d dimensions, index has %d (embedding model mismatch?)",
			domain.ErrRetrieval, got, want)
	}

	hits, err := s.index.Search(queryVector, k)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRetrieval, err)
	}

	logger.Debug("Retriever: %d hits for k=%d", len(hits), k)

	results := make([]domain.RetrievalResult, 0, len(hits))
	for _, hit := range hits {
		entry, err := s.corpus.Entry(hit.Position)
		if err != nil {
			return nil, fmt.Errorf("%w: hydrate position %d: %w", domain.ErrRetrieval, hit.Position, err)
		}
		results = append(results, domain.RetrievalResult{
			Content:         entry.Chunk.Content,
			Metadata:        entry.Metadata,
			SimilarityScore: hit.Similarity,
		})
	}

	return results, nil
}
