package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/bismatayyab23-tech/medrag-cli/internal/core/domain"
	"github.com/bismatayyab23-tech/medrag-cli/internal/core/ports/driven"
	"github.com/bismatayyab23-tech/medrag-cli/internal/logger"
)

// Default prompt sections, used when no PromptStore is configured.
// The wording mirrors the corpus: clinical transcription notes answered
// strictly from supplied context.
const (
	defaultGroundedSystem = `You are a medical research assistant. Answer the question based ONLY on the provided medical context from clinical notes.`

	defaultGroundedFooter = `IMPORTANT INSTRUCTIONS:
- Answer using ONLY the information from the medical context above
- If the context doesn't contain relevant information, say "I cannot find specific information about this in the available medical records"
- Be precise and medically accurate
- Do not make up or hallucinate information
- Mention which medical specialty the information comes from when relevant
- Keep answers concise but informative`
)

// AnswererService builds a grounded prompt from retrieval results and
// delegates to the external generation backend.
type AnswererService struct {
	generator   driven.GenerationService
	promptStore driven.PromptStore
}

// NewAnswererService creates a grounded answerer over a generation backend.
func NewAnswererService(generator driven.GenerationService) *AnswererService {
	return &AnswererService{generator: generator}
}

// SetPromptStore sets the prompt store for loading customisable prompt
// sections. If not set, the embedded defaults are used.
func (s *AnswererService) SetPromptStore(store driven.PromptStore) {
	s.promptStore = store
}

// Answer generates an answer for the query grounded in the given results.
//
// With no results it returns domain.NoContextAnswer and performs no
// generation call: an ungrounded model answer is indistinguishable from
// fabrication, so the backend is never consulted without context.
func (s *AnswererService) Answer(ctx context.Context, query string, results []domain.RetrievalResult) (string, error) {
	if len(results) == 0 {
		logger.Info("Answerer: no context retrieved, skipping generation")
		return domain.NoContextAnswer, nil
	}

	prompt := s.buildPrompt(query, results)
	logger.Debug("Answerer: prompt is %d bytes across %d context blocks", len(prompt), len(results))

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		// Tag the class; the cause stays reachable for callers that
		// want to distinguish timeouts from error statuses.
		return "", fmt.Errorf("%w: %w", domain.ErrGeneration, err)
	}

	return text, nil
}

// buildPrompt assembles the single grounded prompt: system instruction,
// one labelled block per result (1-based, with its specialty), the literal
// question, and the closing instruction list.
func (s *AnswererService) buildPrompt(query string, results []domain.RetrievalResult) string {
	var sb strings.Builder

	sb.WriteString(s.promptSection(driven.PromptGroundedSystem, defaultGroundedSystem))
	sb.WriteString("\n\nMEDICAL CONTEXT:\n")

	for i, r := range results {
		fmt.Fprintf(&sb, "--- MEDICAL NOTE %d (Specialty: %s) ---\n%s", i+1, r.Metadata.MedicalSpecialty, r.Content)
		sb.WriteString("\n\n")
	}

	fmt.Fprintf(&sb, "QUESTION: %s\n\n", query)
	sb.WriteString(s.promptSection(driven.PromptGroundedFooter, defaultGroundedFooter))
	sb.WriteString("\n\nANSWER:")

	return sb.String()
}

// promptSection loads a named prompt section, falling back to the embedded
// default when no store is configured or the load fails.
func (s *AnswererService) promptSection(name, fallback string) string {
	if s.promptStore == nil {
		return fallback
	}
	prompt, err := s.promptStore.Load(name)
	if err != nil || strings.TrimSpace(prompt) == "" {
		logger.Warn("Answerer: prompt %q unavailable, using default: %v", name, err)
		return fallback
	}
	return prompt
}
