package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAIProvider_IsValid(t *testing.T) {
	assert.True(t, AIProviderGemini.IsValid())
	assert.True(t, AIProviderOllama.IsValid())
	assert.True(t, AIProviderHash.IsValid())
	assert.False(t, AIProvider("openai").IsValid())
	assert.False(t, AIProvider("").IsValid())
}

func TestAIProvider_RequiresAPIKey(t *testing.T) {
	assert.True(t, AIProviderGemini.RequiresAPIKey())
	assert.False(t, AIProviderOllama.RequiresAPIKey())
	assert.False(t, AIProviderHash.RequiresAPIKey())
}

func TestAIProvider_IsLocal(t *testing.T) {
	assert.False(t, AIProviderGemini.IsLocal())
	assert.True(t, AIProviderOllama.IsLocal())
	assert.True(t, AIProviderHash.IsLocal())
}

func TestAIProvider_Description(t *testing.T) {
	assert.Contains(t, AIProviderGemini.Description(), "Gemini")
	assert.Contains(t, AIProviderOllama.Description(), "Ollama")
	assert.Equal(t, unknownDescription, AIProvider("bogus").Description())
}

func TestEmbeddingSettings_IsConfigured(t *testing.T) {
	tests := []struct {
		name     string
		settings EmbeddingSettings
		want     bool
	}{
		{"ollama without key", EmbeddingSettings{Provider: AIProviderOllama, Model: "nomic-embed-text"}, true},
		{"gemini with key", EmbeddingSettings{Provider: AIProviderGemini, APIKey: "k"}, true},
		{"gemini without key", EmbeddingSettings{Provider: AIProviderGemini}, false},
		{"unknown provider", EmbeddingSettings{Provider: "bogus"}, false},
		{"empty", EmbeddingSettings{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.settings.IsConfigured())
		})
	}
}

func TestGenerationSettings_IsConfigured(t *testing.T) {
	assert.True(t, GenerationSettings{Provider: AIProviderGemini, APIKey: "k"}.IsConfigured())
	assert.True(t, GenerationSettings{Provider: AIProviderOllama}.IsConfigured())
	assert.False(t, GenerationSettings{Provider: AIProviderGemini}.IsConfigured())

	// The hash provider cannot generate answers.
	assert.False(t, GenerationSettings{Provider: AIProviderHash}.IsConfigured())
}
