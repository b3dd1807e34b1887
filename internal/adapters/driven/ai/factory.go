// Package ai provides factory functions for creating AI service adapters.
package ai

import (
	"context"
	"fmt"
	"time"

	geminiembed "github.com/bismatayyab23-tech/medrag-cli/internal/adapters/driven/embedding/gemini"
	hashembed "github.com/bismatayyab23-tech/medrag-cli/internal/adapters/driven/embedding/hash"
	ollamaembed "github.com/bismatayyab23-tech/medrag-cli/internal/adapters/driven/embedding/ollama"
	geminillm "github.com/bismatayyab23-tech/medrag-cli/internal/adapters/driven/llm/gemini"
	ollamallm "github.com/bismatayyab23-tech/medrag-cli/internal/adapters/driven/llm/ollama"
	"github.com/bismatayyab23-tech/medrag-cli/internal/core/domain"
	"github.com/bismatayyab23-tech/medrag-cli/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// CreateAndValidateEmbeddingService creates an embedding service and
// validates connectivity before the first query runs, so a dead backend
// fails fast instead of failing the user's first question.
func CreateAndValidateEmbeddingService(settings domain.EmbeddingSettings) (driven.EmbeddingService, error) {
	svc, err := CreateEmbeddingService(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrNotInitialised, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: embedding backend unreachable: %w", domain.ErrNotInitialised, err)
	}

	return svc, nil
}

// CreateAndValidateGenerationService creates a generation service and
// validates connectivity.
func CreateAndValidateGenerationService(settings domain.GenerationSettings) (driven.GenerationService, error) {
	svc, err := CreateGenerationService(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrNotInitialised, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: generation backend unreachable: %w", domain.ErrNotInitialised, err)
	}

	return svc, nil
}

// CreateEmbeddingService creates the appropriate embedding service based
// on settings.
func CreateEmbeddingService(settings domain.EmbeddingSettings) (driven.EmbeddingService, error) {
	if !settings.IsConfigured() {
		return nil, fmt.Errorf("embedding backend is not configured")
	}

	switch settings.Provider {
	case domain.AIProviderOllama:
		return ollamaembed.NewEmbeddingService(ollamaembed.Config{
			BaseURL:    settings.BaseURL,
			Model:      settings.Model,
			Dimensions: settings.Dimensions,
		}), nil

	case domain.AIProviderGemini:
		return geminiembed.NewEmbeddingService(geminiembed.Config{
			APIKey:     settings.APIKey,
			BaseURL:    settings.BaseURL,
			Model:      settings.Model,
			Dimensions: settings.Dimensions,
		})

	case domain.AIProviderHash:
		return hashembed.NewEmbeddingService(settings.Dimensions), nil

	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", settings.Provider)
	}
}

// CreateGenerationService creates the appropriate generation service based
// on settings.
func CreateGenerationService(settings domain.GenerationSettings) (driven.GenerationService, error) {
	if !settings.IsConfigured() {
		return nil, fmt.Errorf("generation backend is not configured")
	}

	timeout := time.Duration(settings.TimeoutSeconds) * time.Second

	switch settings.Provider {
	case domain.AIProviderGemini:
		return geminillm.NewGenerationService(geminillm.Config{
			APIKey:            settings.APIKey,
			BaseURL:           settings.BaseURL,
			Model:             settings.Model,
			Timeout:           timeout,
			RequestsPerMinute: settings.RequestsPerMinute,
		})

	case domain.AIProviderOllama:
		return ollamallm.NewGenerationService(ollamallm.Config{
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
			Timeout: timeout,
		}), nil

	default:
		return nil, fmt.Errorf("unsupported generation provider: %s", settings.Provider)
	}
}
