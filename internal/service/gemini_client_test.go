package service

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

func newTestGeminiClient(serverURL string) *geminiClient {
	return &geminiClient{
		apiKey:     "test-key",
		model:      "gemini-2.5-flash",
		baseURL:    serverURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func candidateBody(text string) string {
	body, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	})
	return string(body)
}

func TestGeminiClientGenerateContent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotPath string
		var gotReq generateContentRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			w.Write([]byte(candidateBody(`{"title": "Go Quiz"}`)))
		}))
		defer server.Close()

		client := newTestGeminiClient(server.URL)
		text, err := client.GenerateContent(context.Background(), "make a quiz")
		require.NoError(t, err)
		assert.Equal(t, `{"title": "Go Quiz"}`, text)
		assert.Equal(t, "/v1/models/gemini-2.5-flash:generateContent", gotPath)
		require.Len(t, gotReq.Contents, 1)
		assert.Equal(t, "make a quiz", gotReq.Contents[0].Parts[0].Text)
		assert.Equal(t, 0.7, gotReq.GenerationConfig.Temperature)
		assert.Equal(t, 2000, gotReq.GenerationConfig.MaxOutputTokens)
	})

	t.Run("BadRequestCarriesUpstreamMessage", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": {"message": "Invalid model name"}}`))
		}))
		defer server.Close()

		_, err := newTestGeminiClient(server.URL).GenerateContent(context.Background(), "p")
		var gerr *GenerationError
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, http.StatusBadRequest, gerr.Status)
		assert.Equal(t, "Bad request to Gemini API", gerr.Message)
		assert.Equal(t, "Invalid model name", gerr.Details)
	})

	t.Run("ForbiddenMapsToQuotaError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		_, err := newTestGeminiClient(server.URL).GenerateContent(context.Background(), "p")
		var gerr *GenerationError
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, http.StatusForbidden, gerr.Status)
		assert.Equal(t, "API key invalid or quota exceeded", gerr.Message)
	})

	t.Run("UnexpectedStatusIsGenericFailure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("upstream down"))
		}))
		defer server.Close()

		_, err := newTestGeminiClient(server.URL).GenerateContent(context.Background(), "p")
		var gerr *GenerationError
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, http.StatusInternalServerError, gerr.Status)
		assert.Equal(t, "AI generation failed", gerr.Message)
		assert.Contains(t, gerr.Details, "503")
	})

	t.Run("NoCandidates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates": []}`))
		}))
		defer server.Close()

		_, err := newTestGeminiClient(server.URL).GenerateContent(context.Background(), "p")
		var gerr *GenerationError
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "No content generated", gerr.Message)
	})

	t.Run("NetworkError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := newTestGeminiClient(server.URL).GenerateContent(context.Background(), "p")
		var gerr *GenerationError
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "Network error connecting to Gemini API", gerr.Message)
	})
}

func TestGeminiClientConfigured(t *testing.T) {
	assert.True(t, newTestGeminiClient("http://localhost").Configured())
	assert.False(t, (&geminiClient{}).Configured())
}
