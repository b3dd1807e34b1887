package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/bismatayyab23-tech/medrag-cli/internal/core/domain"
	"github.com/bismatayyab23-tech/medrag-cli/internal/core/ports/driven"
)

// memCorpus implements driven.CorpusStore over an in-memory entry slice.
type memCorpus struct {
	entries []domain.CorpusEntry
	dim     int
}

func (c *memCorpus) ChunkCount() int { return len(c.entries) }

func (c *memCorpus) SpecialtySet() []string {
	seen := map[string]bool{}
	for _, e := range c.entries {
		seen[e.Metadata.MedicalSpecialty] = true
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func (c *memCorpus) VectorDimension() int { return c.dim }

func (c *memCorpus) Entry(i int) (domain.CorpusEntry, error) {
	if i < 0 || i >= len(c.entries) {
		return domain.CorpusEntry{}, fmt.Errorf("position %d out of range", i)
	}
	return c.entries[i], nil
}

func (c *memCorpus) Close() error { return nil }

// memIndex implements driven.VectorIndex with exact cosine search, the same
// ordering contract as the flat index adapter.
type memIndex struct {
	vectors [][]float32
	err     error
}

func (ix *memIndex) Search(query []float32, k int) ([]driven.VectorHit, error) {
	if ix.err != nil {
		return nil, ix.err
	}
	if len(ix.vectors) > 0 && len(query) != len(ix.vectors[0]) {
		return nil, errors.New("dimension mismatch")
	}

	hits := make([]driven.VectorHit, len(ix.vectors))
	for i, v := range ix.vectors {
		hits[i] = driven.VectorHit{Position: i, Similarity: cosine(query, v)}
	}
	sort.SliceStable(hits, func(a, b int) bool {
		if hits[a].Similarity != hits[b].Similarity {
			return hits[a].Similarity > hits[b].Similarity
		}
		return hits[a].Position < hits[b].Position
	})
	if k < len(hits) {
		hits = hits[:k]
	}
	return hits, nil
}

func (ix *memIndex) Dimension() int {
	if len(ix.vectors) == 0 {
		return 0
	}
	return len(ix.vectors[0])
}

func (ix *memIndex) Count() int { return len(ix.vectors) }

func cosine(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// stubEmbedder implements driven.EmbeddingService with a canned vector.
type stubEmbedder struct {
	vec   []float32
	err   error
	calls int
}

func (e *stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	if text == "" {
		return nil, errors.New("empty input")
	}
	return e.vec, nil
}

func (e *stubEmbedder) Dimensions() int           { return len(e.vec) }
func (e *stubEmbedder) ModelName() string         { return "stub-embed" }
func (e *stubEmbedder) Ping(ctx context.Context) error { return nil }
func (e *stubEmbedder) Close() error              { return nil }

// countingGenerator implements driven.GenerationService and counts calls,
// so tests can prove the no-context guard performs zero external calls.
type countingGenerator struct {
	reply      string
	err        error
	calls      int
	lastPrompt string
}

func (g *countingGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls++
	g.lastPrompt = prompt
	if g.err != nil {
		return "", g.err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return g.reply, nil
}

func (g *countingGenerator) ModelName() string         { return "stub-gen" }
func (g *countingGenerator) Ping(ctx context.Context) error { return nil }
func (g *countingGenerator) Close() error              { return nil }

// testCorpus builds the five-chunk, two-specialty corpus used across the
// pipeline tests, with axis-aligned vectors so similarity order is obvious.
func testCorpus() (*memCorpus, *memIndex) {
	entries := []domain.CorpusEntry{
		{
			Chunk:    domain.Chunk{ID: 1, Content: "Patient treated for seasonal allergies with loratadine."},
			Metadata: domain.ChunkMetadata{ChunkID: 1, MedicalSpecialty: "Allergy / Immunology", SourceRecordID: 10},
		},
		{
			Chunk:    domain.Chunk{ID: 2, Content: "Allergy shots administered over a six month course."},
			Metadata: domain.ChunkMetadata{ChunkID: 2, MedicalSpecialty: "Allergy / Immunology", SourceRecordID: 11},
		},
		{
			Chunk:    domain.Chunk{ID: 3, Content: "Echocardiogram shows normal left ventricular function."},
			Metadata: domain.ChunkMetadata{ChunkID: 3, MedicalSpecialty: "Cardiovascular / Pulmonary", SourceRecordID: 12},
		},
		{
			Chunk:    domain.Chunk{ID: 4, Content: "Nasal spray prescribed for allergic rhinitis."},
			Metadata: domain.ChunkMetadata{ChunkID: 4, MedicalSpecialty: "Allergy / Immunology", SourceRecordID: 13},
		},
		{
			Chunk:    domain.Chunk{ID: 5, Content: "Stress test negative for ischemic changes."},
			Metadata: domain.ChunkMetadata{ChunkID: 5, MedicalSpecialty: "Cardiovascular / Pulmonary", SourceRecordID: 14},
		},
	}
	vectors := [][]float32{
		{1, 0, 0},
		{0.9, 0.1, 0},
		{0, 1, 0},
		{0.8, 0.2, 0},
		{0, 0.9, 0.1},
	}
	return &memCorpus{entries: entries, dim: 3}, &memIndex{vectors: vectors}
}
