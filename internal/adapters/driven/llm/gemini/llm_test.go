package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateResponse(text string) generateResponse {
	return generateResponse{
		Candidates: []candidate{
			{Content: candidateContent{Parts: []requestPart{{Text: text}}}},
		},
	}
}

func TestNewGenerationService_RequiresAPIKey(t *testing.T) {
	_, err := NewGenerationService(Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestGenerate(t *testing.T) {
	var gotPath, gotKey string
	var gotReq generateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(candidateResponse("Loratadine is commonly prescribed.")) //nolint:errcheck
	}))
	defer server.Close()

	svc, err := NewGenerationService(Config{
		APIKey:            "test-key",
		BaseURL:           server.URL,
		RequestsPerMinute: -1,
	})
	require.NoError(t, err)

	text, err := svc.Generate(context.Background(), "grounded prompt")
	require.NoError(t, err)

	assert.Equal(t, "/models/gemini-2.0-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotReq.Contents, 1)
	require.Len(t, gotReq.Contents[0].Parts, 1)
	assert.Equal(t, "grounded prompt", gotReq.Contents[0].Parts[0].Text)
	assert.Equal(t, "Loratadine is commonly prescribed.", text)
}

func TestGenerate_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":429,"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	svc, err := NewGenerationService(Config{APIKey: "k", BaseURL: server.URL, RequestsPerMinute: -1})
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestGenerate_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{}) //nolint:errcheck
	}))
	defer server.Close()

	svc, err := NewGenerationService(Config{APIKey: "k", BaseURL: server.URL, RequestsPerMinute: -1})
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestGenerate_RateLimiterHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(candidateResponse("ok")) //nolint:errcheck
	}))
	defer server.Close()

	// One request per minute: the second call must wait, and the short
	// context deadline cancels that wait.
	svc, err := NewGenerationService(Config{APIKey: "k", BaseURL: server.URL, RequestsPerMinute: 1})
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(), "first")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = svc.Generate(ctx, "second")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter")
}

func TestPing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-2.0-flash", r.URL.Path)
		assert.Equal(t, "k", r.Header.Get("x-goog-api-key"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc, err := NewGenerationService(Config{APIKey: "k", BaseURL: server.URL})
	require.NoError(t, err)
	require.NoError(t, svc.Ping(context.Background()))
}

func TestDefaults(t *testing.T) {
	svc, err := NewGenerationService(Config{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, svc.ModelName())
}
