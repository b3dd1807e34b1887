package domain

import "errors"

// Domain errors represent the failure classes of the query pipeline.
// Services tag failures with these sentinels (wrapping the underlying cause
// with %w so both survive errors.Is), which keeps every failure
// distinguishable from a legitimate answer and from the fixed
// NoContextAnswer. An error string is never returned as answer text.
var (
	// ErrCorpusLoad indicates the persisted corpus could not be loaded.
	// Fatal at startup: the process cannot serve queries without a corpus.
	ErrCorpusLoad = errors.New("corpus load failed")

	// ErrEmbedding indicates the query could not be embedded.
	// Per-query: the pipeline aborts with no partial answer.
	ErrEmbedding = errors.New("embedding failed")

	// ErrRetrieval indicates the similarity search failed. A dimension
	// mismatch between the query vector and the corpus index means the
	// configured embedding model differs from the one that built the
	// index - a stale-index condition operators need to see distinctly.
	ErrRetrieval = errors.New("retrieval failed")

	// ErrGeneration indicates the generation backend call failed, timed
	// out, or returned an error status. Callers may retry with backoff;
	// the pipeline never retries internally.
	ErrGeneration = errors.New("generation failed")

	// ErrNotInitialised indicates the pipeline has not been constructed
	// yet, e.g. a query before the corpus was loaded.
	ErrNotInitialised = errors.New("system not initialised")

	// ErrInvalidInput indicates malformed caller input, such as an empty
	// question or a non-positive k.
	ErrInvalidInput = errors.New("invalid input")
)
