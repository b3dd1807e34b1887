// Package hash provides a deterministic, fully offline embedding service.
//
// Each token is hashed into a bucket and the bucketed counts are L2
// normalised, giving a crude bag-of-words vector. Quality is far below a
// real embedding model; the value is that identical input always yields
// an identical vector with no network, API key or model download. Used
// for tests and for corpora whose index was built with the same scheme.
package hash

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"
	"unicode"

	"github.com/bismatayyab23-tech/medrag-cli/internal/core/ports/driven"
)

// Ensure EmbeddingService implements the interface.
var _ driven.EmbeddingService = (*EmbeddingService)(nil)

// DefaultDimensions is the vector size used when none is configured.
const DefaultDimensions = 256

// EmbeddingService maps token hashes into a fixed-size vector.
type EmbeddingService struct {
	dimensions int
}

// NewEmbeddingService creates a hash embedder. Dimensions below 1 fall
// back to DefaultDimensions.
func NewEmbeddingService(dimensions int) *EmbeddingService {
	if dimensions < 1 {
		dimensions = DefaultDimensions
	}
	return &EmbeddingService{dimensions: dimensions}
}

// Embed produces the deterministic bag-of-words vector for text. Input
// that yields no tokens is an error: a zero vector cosine-scores 0 against
// every chunk and would silently retrieve nothing.
func (s *EmbeddingService) Embed(_ context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("cannot embed empty text")
	}

	tokens := tokenise(text)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no encodable tokens in text")
	}

	vec := make([]float32, s.dimensions)
	for _, token := range tokens {
		h := fnv.New32a()
		h.Write([]byte(token)) //nolint:errcheck // fnv never errors
		vec[int(h.Sum32())%s.dimensions]++
	}

	// L2 normalise so cosine similarity behaves like dot product.
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	inv := 1 / math.Sqrt(norm)
	for i := range vec {
		vec[i] = float32(float64(vec[i]) * inv)
	}

	return vec, nil
}

// tokenise lowercases and splits on any non-letter, non-digit rune.
func tokenise(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Dimensions returns the embedding vector size.
func (s *EmbeddingService) Dimensions() int {
	return s.dimensions
}

// ModelName returns the name of the embedding model being used.
func (s *EmbeddingService) ModelName() string {
	return "hash-bow"
}

// Ping always succeeds; there is no backend to reach.
func (s *EmbeddingService) Ping(_ context.Context) error {
	return nil
}

// Close releases resources.
func (s *EmbeddingService) Close() error {
	return nil
}
