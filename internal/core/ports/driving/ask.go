package driving

import (
	"context"

	"github.com/bismatayyab23-tech/medrag-cli/internal/core/domain"
)

// AskService is the caller-facing entry point of the query pipeline.
type AskService interface {
	// Ask runs one query through embed, retrieve, generate. On success it
	// returns the answer with its grounding sources and appends a record
	// to the session log. Failures return a typed error tagged with one
	// of the domain sentinels and leave the session log untouched.
	//
	// The caller owns timeout and retry policy: pass a context with a
	// deadline (30s is a sensible default) and treat expiry as a
	// generation failure, not a hang.
	Ask(ctx context.Context, query string, opts AskOptions) (*domain.Answer, error)

	// CorpusInfo describes the loaded corpus.
	CorpusInfo() domain.CorpusInfo

	// History returns up to n session log records, most recent first.
	History(n int) []domain.AnswerRecord
}

// AskOptions tunes a single query.
type AskOptions struct {
	// K is the number of chunks to retrieve. Zero means the configured
	// default; negative is invalid.
	K int
}
