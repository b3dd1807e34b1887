// Package services contains the core query pipeline: embed the question,
// retrieve the nearest chunks, generate a grounded answer, log the result.
// Services orchestrate domain entities through the driven ports and contain
// no framework or transport code.
package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bismatayyab23-tech/medrag-cli/internal/core/domain"
	"github.com/bismatayyab23-tech/medrag-cli/internal/core/ports/driven"
	"github.com/bismatayyab23-tech/medrag-cli/internal/core/ports/driving"
	"github.com/bismatayyab23-tech/medrag-cli/internal/logger"
)

// Ensure RAGService implements the interface.
var _ driving.AskService = (*RAGService)(nil)

// RAGService runs the query pipeline over a loaded corpus.
//
// One Ask call is one synchronous sequence with no internal parallelism.
// The corpus and index are read-only after load, so concurrent Ask calls
// are safe; only the session log append and (optionally) the embed call
// are synchronised.
type RAGService struct {
	embedder  driven.EmbeddingService
	retriever *RetrieverService
	answerer  *AnswererService
	corpus    driven.CorpusStore
	session   driven.SessionLog

	defaultK int

	// embedMu serialises embed calls for backends that do not tolerate
	// concurrent invocation. Scoped to the embed call only, so retrieval
	// and generation of other queries are never serialised behind it.
	embedMu        sync.Mutex
	serialiseEmbed bool
}

// RAGConfig configures the pipeline.
type RAGConfig struct {
	// DefaultK is the retrieval depth used when AskOptions.K is zero.
	DefaultK int

	// SerialiseEmbedding guards the embed call with a mutex.
	SerialiseEmbedding bool
}

// NewRAGService wires the pipeline from its collaborators. The session log
// is injected rather than ambient so callers control its lifetime.
func NewRAGService(
	embedder driven.EmbeddingService,
	retriever *RetrieverService,
	answerer *AnswererService,
	corpus driven.CorpusStore,
	session driven.SessionLog,
	cfg RAGConfig,
) *RAGService {
	if cfg.DefaultK <= 0 {
		cfg.DefaultK = 3
	}
	return &RAGService{
		embedder:       embedder,
		retriever:      retriever,
		answerer:       answerer,
		corpus:         corpus,
		session:        session,
		defaultK:       cfg.DefaultK,
		serialiseEmbed: cfg.SerialiseEmbedding,
	}
}

// Ask runs one query through the pipeline. Successful answers (including
// the fixed no-context answer) are appended to the session log; failed
// queries are not logged, so the history only ever shows what the user
// actually received.
func (s *RAGService) Ask(ctx context.Context, query string, opts driving.AskOptions) (*domain.Answer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty query", domain.ErrInvalidInput)
	}

	k := opts.K
	if k == 0 {
		k = s.defaultK
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: k must be >= 1, got %d", domain.ErrInvalidInput, k)
	}

	logger.Section("Query Pipeline")
	logger.Debug("Query: %q, k=%d", query, k)

	queryVector, err := s.embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEmbedding, err)
	}
	logger.Debug("Query embedding: %d dimensions", len(queryVector))

	results, err := s.retriever.Retrieve(queryVector, k)
	if err != nil {
		return nil, err
	}
	logger.Info("Retrieved %d chunks", len(results))

	text, err := s.answerer.Answer(ctx, query, results)
	if err != nil {
		return nil, err
	}

	s.session.Record(query, text, len(results))

	return &domain.Answer{
		Text:    text,
		Sources: results,
	}, nil
}

// embed generates the query vector, serialising access to the embedding
// backend when configured to do so.
func (s *RAGService) embed(ctx context.Context, query string) ([]float32, error) {
	if s.serialiseEmbed {
		s.embedMu.Lock()
		defer s.embedMu.Unlock()
	}
	return s.embedder.Embed(ctx, query)
}

// CorpusInfo describes the loaded corpus.
func (s *RAGService) CorpusInfo() domain.CorpusInfo {
	return domain.CorpusInfo{
		ChunkCount:      s.corpus.ChunkCount(),
		Specialties:     s.corpus.SpecialtySet(),
		VectorDimension: s.corpus.VectorDimension(),
	}
}

// History returns up to n session log records, most recent first.
func (s *RAGService) History(n int) []domain.AnswerRecord {
	return s.session.Recent(n)
}
