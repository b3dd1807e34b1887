package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	var gotPath string
	var gotReq generateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(generateResponse{Response: "grounded answer", Done: true}) //nolint:errcheck
	}))
	defer server.Close()

	svc := NewGenerationService(Config{BaseURL: server.URL, Model: "llama3.2"})

	text, err := svc.Generate(context.Background(), "prompt text")
	require.NoError(t, err)

	assert.Equal(t, "/api/generate", gotPath)
	assert.Equal(t, "llama3.2", gotReq.Model)
	assert.Equal(t, "prompt text", gotReq.Prompt)
	assert.False(t, gotReq.Stream)
	assert.Equal(t, "grounded answer", text)
}

func TestGenerate_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewGenerationService(Config{BaseURL: server.URL})

	_, err := svc.Generate(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestPing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewGenerationService(Config{BaseURL: server.URL})
	require.NoError(t, svc.Ping(context.Background()))
}

func TestDefaults(t *testing.T) {
	svc := NewGenerationService(Config{})
	assert.Equal(t, DefaultModel, svc.ModelName())
}
