package narrativeclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/store-deck-api/internal/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Narrative: config.Narrative{
			BaseURL:        baseURL,
			APIKey:         "chave-teste",
			Model:          "claude-3-opus-20240229",
			Version:        "2023-06-01",
			MaxTokens:      1500,
			TimeoutSeconds: 5,
		},
	}
}

func TestGenerateText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "chave-teste", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "claude-3-opus-20240229", payload["model"])
		assert.Equal(t, float64(1500), payload["max_tokens"])

		messages, ok := payload["messages"].([]any)
		require.True(t, ok)
		require.Len(t, messages, 1)

		first, ok := messages[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "user", first["role"])
		assert.Equal(t, "analise as métricas", first["content"])

		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{
				{"type": "text", "text": "resumo gerado"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	text, err := client.GenerateText(context.Background(), "analise as métricas")
	require.NoError(t, err)
	assert.Equal(t, "resumo gerado", text)
}

func TestGenerateTextMissingAPIKey(t *testing.T) {
	cfg := testConfig("http://localhost")
	cfg.Narrative.APIKey = ""

	client := NewClient(cfg)

	_, err := client.GenerateText(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestGenerateTextEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"content": []any{}})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.GenerateText(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGenerateTextUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.GenerateText(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
