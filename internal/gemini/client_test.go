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

	"github.com/brainrotlabs/brainrot-api/internal/config"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.Config{
		GeminiAPIKey:    "test-key",
		GeminiBaseURL:   baseURL,
		GeminiModel:     "gemini-1.5-flash",
		GenerateTimeout: 5 * time.Second,
	}, nil)
}

func TestGeneratePost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-1.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var payload struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Len(t, payload.Contents, 1)
		assert.Contains(t, payload.Contents[0].Parts[0].Text, "toxicity level is 8/10")

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "  generated post  "}}}},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	text, err := client.GeneratePost(context.Background(), GenerateOptions{
		PostType:      "Startup Grind",
		ToxicityLevel: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, "generated post", text)
}

func TestGeneratePostServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.GeneratePost(context.Background(), GenerateOptions{PostType: "x", ToxicityLevel: 2})
	assert.Error(t, err)
}

func TestGeneratePostEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.GeneratePost(context.Background(), GenerateOptions{PostType: "x", ToxicityLevel: 2})
	assert.Error(t, err)
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(GenerateOptions{
		PostType:      "Fake VC Takes",
		ToxicityLevel: 2,
		Topic:         "funding winter",
		Tones:         []string{"sarcastic", "deadpan"},
	})
	assert.Contains(t, prompt, `"Fake VC Takes"`)
	assert.Contains(t, prompt, "2/10 (friendly and mild)")
	assert.Contains(t, prompt, "The topic should relate to: funding winter.")
	assert.Contains(t, prompt, "The tone should be: sarcastic, deadpan.")
	assert.Contains(t, prompt, "under 280 characters")

	bare := BuildPrompt(GenerateOptions{PostType: "x", ToxicityLevel: 10})
	assert.Contains(t, bare, "extremely toxic, unfiltered hell")
	assert.NotContains(t, bare, "The topic should relate")
	assert.NotContains(t, bare, "The tone should be")
}
