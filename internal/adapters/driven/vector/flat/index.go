// Package flat provides an exact nearest-neighbour index over the corpus
// vectors. The whole index is held in memory as a flat float32 matrix and
// every search scans all rows, which is exact and fast enough at corpus
// scale. Read-only after load, so safe for concurrent searches.
//
// The on-disk format (vectors.bin) is:
//
//	bytes 0..7    magic "MRAGVEC1"
//	bytes 8..11   uint32 little-endian vector dimension
//	bytes 12..15  uint32 little-endian vector count
//	bytes 16..    count * dimension float32 little-endian values, row-major
package flat

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/bismatayyab23-tech/medrag-cli/internal/core/ports/driven"
)

// FileName is the index file inside a corpus directory.
const FileName = "vectors.bin"

// magic identifies the index file format.
const magic = "MRAGVEC1"

const headerSize = len(magic) + 8

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// Index is an exact cosine-similarity index over normalised-or-not corpus
// vectors. Vectors are stored contiguously; row i corresponds to corpus
// position i.
type Index struct {
	dim  int
	data []float32
}

// New builds an index from vectors already in memory. All vectors must
// share one dimension.
func New(vectors [][]float32) (*Index, error) {
	if len(vectors) == 0 {
		return nil, errors.New("no vectors")
	}
	dim := len(vectors[0])
	if dim == 0 {
		return nil, errors.New("zero-dimension vectors")
	}

	data := make([]float32, 0, len(vectors)*dim)
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("vector %d has %d dimensions, want %d", i, len(v), dim)
		}
		data = append(data, v...)
	}

	return &Index{dim: dim, data: data}, nil
}

// Open reads an index file written by Save.
func Open(path string) (*Index, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading index file: %w", err)
	}

	if len(raw) < headerSize {
		return nil, fmt.Errorf("index file too short: %d bytes", len(raw))
	}
	if string(raw[:len(magic)]) != magic {
		return nil, fmt.Errorf("bad index magic %q", raw[:len(magic)])
	}

	dim := int(binary.LittleEndian.Uint32(raw[len(magic):]))
	count := int(binary.LittleEndian.Uint32(raw[len(magic)+4:]))
	if dim <= 0 || count <= 0 {
		return nil, fmt.Errorf("invalid index header: dimension=%d count=%d", dim, count)
	}

	body := raw[headerSize:]
	want := dim * count * 4
	if len(body) != want {
		return nil, fmt.Errorf("index body is %d bytes, want %d for %d x %d vectors",
			len(body), want, count, dim)
	}

	data := make([]float32, dim*count)
	for i := range data {
		data[i] = math.Float32frombits(binary.LittleEndian.Uint32(body[i*4:]))
	}

	return &Index{dim: dim, data: data}, nil
}

// ReadHeader reads only the dimension and count from an index file, so
// other corpus loaders can cross-check without loading the vectors.
func ReadHeader(path string) (dim, count int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("opening index file: %w", err)
	}
	defer f.Close()

	header := make([]byte, headerSize)
	if _, err := io.ReadFull(f, header); err != nil {
		return 0, 0, fmt.Errorf("reading index header: %w", err)
	}
	if string(header[:len(magic)]) != magic {
		return 0, 0, fmt.Errorf("bad index magic %q", header[:len(magic)])
	}

	dim = int(binary.LittleEndian.Uint32(header[len(magic):]))
	count = int(binary.LittleEndian.Uint32(header[len(magic)+4:]))
	if dim <= 0 || count <= 0 {
		return 0, 0, fmt.Errorf("invalid index header: dimension=%d count=%d", dim, count)
	}
	return dim, count, nil
}

// Save writes the index to path in the vectors.bin format.
func (ix *Index) Save(path string) error {
	count := ix.Count()

	buf := make([]byte, headerSize+len(ix.data)*4)
	copy(buf, magic)
	binary.LittleEndian.PutUint32(buf[len(magic):], uint32(ix.dim))
	binary.LittleEndian.PutUint32(buf[len(magic)+4:], uint32(count))
	for i, f := range ix.data {
		binary.LittleEndian.PutUint32(buf[headerSize+i*4:], math.Float32bits(f))
	}

	if err := os.WriteFile(path, buf, 0600); err != nil {
		return fmt.Errorf("writing index file: %w", err)
	}
	return nil
}

// Search returns the k nearest vectors by cosine similarity, ordered by
// descending similarity with ties broken by ascending position.
func (ix *Index) Search(query []float32, k int) ([]driven.VectorHit, error) {
	if len(query) != ix.dim {
		return nil, fmt.Errorf("query has %d dimensions, index has %d", len(query), ix.dim)
	}
	if k < 1 {
		return nil, fmt.Errorf("k must be >= 1, got %d", k)
	}

	count := ix.Count()
	hits := make([]driven.VectorHit, count)
	for i := 0; i < count; i++ {
		row := ix.data[i*ix.dim : (i+1)*ix.dim]
		hits[i] = driven.VectorHit{Position: i, Similarity: cosine(query, row)}
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

// Dimension returns the vector dimension of the index.
func (ix *Index) Dimension() int { return ix.dim }

// Count returns the number of vectors in the index.
func (ix *Index) Count() int {
	if ix.dim == 0 {
		return 0
	}
	return len(ix.data) / ix.dim
}

// cosine computes cosine similarity in float64 so the score ordering is
// stable even for near-parallel vectors. A zero vector scores 0.
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
