package domain

// Chunk represents one retrievable excerpt of a clinical transcription note.
// Chunks are produced offline by the corpus build and are immutable at runtime.
type Chunk struct {
	// ID is the stable identifier assigned when the corpus was built.
	ID int64

	// Content is the text of the excerpt.
	Content string
}

// ChunkMetadata describes the provenance of a chunk.
type ChunkMetadata struct {
	// ChunkID matches the Chunk this metadata describes.
	ChunkID int64

	// MedicalSpecialty is the specialty of the source transcription,
	// e.g. "Allergy / Immunology" or "Cardiovascular / Pulmonary".
	MedicalSpecialty string

	// SourceRecordID identifies the original transcription record
	// the chunk was cut from.
	SourceRecordID int64
}

// CorpusEntry is a chunk combined with its metadata under one stable id.
// Keeping the pair in one record means an entry can never refer to another
// chunk's metadata.
type CorpusEntry struct {
	Chunk    Chunk
	Metadata ChunkMetadata
}

// RetrievalResult is a chunk matched against a query, paired with its
// similarity score. Results are ephemeral - produced per query, never stored.
type RetrievalResult struct {
	// Content is the matched chunk text.
	Content string

	// Metadata describes the matched chunk.
	Metadata ChunkMetadata

	// SimilarityScore is the cosine similarity between the query vector
	// and the chunk vector, in [-1, 1]. Higher is more relevant.
	SimilarityScore float64
}

// Answer is the outcome of a successful ask: the generated text plus the
// retrieval results that grounded it, surfaced to the caller as citations.
type Answer struct {
	// Text is the full generation output, returned unmodified, or the
	// fixed NoContextAnswer when retrieval produced nothing.
	Text string

	// Sources are the retrieval results the answer was grounded in,
	// ordered by descending similarity.
	Sources []RetrievalResult
}

// Grounded reports whether the answer was produced from retrieved context.
func (a Answer) Grounded() bool {
	return len(a.Sources) > 0
}

// NoContextAnswer is the fixed response returned when retrieval produces no
// context. It deliberately never reaches the generation model: answering
// without grounding is how fabrication happens. The string is distinguishable
// from both a real answer (Answer.Grounded is false) and an error (it is not
// one).
const NoContextAnswer = "I couldn't find relevant medical information to answer this question in the available records."

// CorpusInfo summarises a loaded corpus for display.
type CorpusInfo struct {
	// ChunkCount is the number of entries in the corpus.
	ChunkCount int

	// Specialties is the sorted set of distinct medical specialties.
	Specialties []string

	// VectorDimension is the embedding dimension of the corpus index.
	VectorDimension int
}
