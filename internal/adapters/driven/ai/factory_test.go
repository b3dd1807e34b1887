package ai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bismatayyab23-tech/medrag-cli/internal/core/domain"
)

func TestCreateEmbeddingService(t *testing.T) {
	tests := []struct {
		name      string
		settings  domain.EmbeddingSettings
		wantModel string
		wantErr   bool
	}{
		{
			name: "ollama",
			settings: domain.EmbeddingSettings{
				Provider: domain.AIProviderOllama,
				Model:    "nomic-embed-text",
			},
			wantModel: "nomic-embed-text",
		},
		{
			name: "gemini",
			settings: domain.EmbeddingSettings{
				Provider: domain.AIProviderGemini,
				APIKey:   "test-key",
			},
			wantModel: "text-embedding-004",
		},
		{
			name: "hash",
			settings: domain.EmbeddingSettings{
				Provider:   domain.AIProviderHash,
				Dimensions: 64,
			},
			wantModel: "hash-bow",
		},
		{
			name: "gemini without key",
			settings: domain.EmbeddingSettings{
				Provider: domain.AIProviderGemini,
			},
			wantErr: true,
		},
		{
			name:     "unknown provider",
			settings: domain.EmbeddingSettings{Provider: "openai"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := CreateEmbeddingService(tt.settings)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer svc.Close()
			assert.Equal(t, tt.wantModel, svc.ModelName())
		})
	}
}

func TestCreateGenerationService(t *testing.T) {
	tests := []struct {
		name      string
		settings  domain.GenerationSettings
		wantModel string
		wantErr   bool
	}{
		{
			name: "gemini",
			settings: domain.GenerationSettings{
				Provider: domain.AIProviderGemini,
				APIKey:   "test-key",
			},
			wantModel: "gemini-2.0-flash",
		},
		{
			name: "ollama",
			settings: domain.GenerationSettings{
				Provider: domain.AIProviderOllama,
				Model:    "llama3.2",
			},
			wantModel: "llama3.2",
		},
		{
			name:     "hash cannot generate",
			settings: domain.GenerationSettings{Provider: domain.AIProviderHash},
			wantErr:  true,
		},
		{
			name: "gemini without key",
			settings: domain.GenerationSettings{
				Provider: domain.AIProviderGemini,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := CreateGenerationService(tt.settings)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer svc.Close()
			assert.Equal(t, tt.wantModel, svc.ModelName())
		})
	}
}

func TestCreateAndValidateEmbeddingService_TagsInitFailure(t *testing.T) {
	_, err := CreateAndValidateEmbeddingService(domain.EmbeddingSettings{Provider: "nope"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotInitialised))
}

func TestCreateAndValidateEmbeddingService_HashNeedsNoBackend(t *testing.T) {
	svc, err := CreateAndValidateEmbeddingService(domain.EmbeddingSettings{
		Provider:   domain.AIProviderHash,
		Dimensions: 32,
	})
	require.NoError(t, err)
	defer svc.Close()
	assert.Equal(t, 32, svc.Dimensions())
}
