package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/htranq/quizforge/config"
	"github.com/rs/zerolog/log"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// GeminiClient wraps the generateContent REST endpoint. The raw HTTP call is
// kept here so status codes and response bodies stay visible to the error
// taxonomy; the SDK hides both.
type GeminiClient interface {
	Configured() bool
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type geminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiClient(cfg *config.Config) GeminiClient {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Quiz generation will return a configuration error.")
	}
	return &geminiClient{
		apiKey:  cfg.GeminiApiKey,
		model:   cfg.GeminiModel,
		baseURL: defaultGeminiBaseURL,
		// Generation can take tens of seconds on large prompts.
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type generateContentRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *geminiClient) Configured() bool {
	return c.apiKey != ""
}

func (c *geminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/v1/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	body := generateContentRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			MaxOutputTokens: 2000,
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode Gemini request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build Gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("Network error calling Gemini API")
		return "", &GenerationError{
			Status:  http.StatusInternalServerError,
			Message: "Network error connecting to Gemini API",
			Details: err.Error(),
		}
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return "", fmt.Errorf("failed to read Gemini response: %w", err)
	}
	raw := buf.Bytes()

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		var parsed generateContentResponse
		details := string(raw)
		if json.Unmarshal(raw, &parsed) == nil && parsed.Error.Message != "" {
			details = parsed.Error.Message
		}
		return "", &GenerationError{
			Status:  http.StatusBadRequest,
			Message: "Bad request to Gemini API",
			Details: details,
		}
	case resp.StatusCode == http.StatusForbidden:
		return "", &GenerationError{
			Status:  http.StatusForbidden,
			Message: "API key invalid or quota exceeded",
			Details: "Check your GEMINI_API_KEY and usage limits",
		}
	case resp.StatusCode != http.StatusOK:
		log.Error().Int("status", resp.StatusCode).Str("body", string(raw)).Msg("Gemini API returned unexpected status")
		return "", &GenerationError{
			Status:  http.StatusInternalServerError,
			Message: "AI generation failed",
			Details: fmt.Sprintf("status %d: %s", resp.StatusCode, string(raw)),
		}
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &GenerationError{
			Status:  http.StatusInternalServerError,
			Message: "Failed to parse AI response",
			Details: err.Error(),
		}
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", &GenerationError{
			Status:  http.StatusInternalServerError,
			Message: "No content generated",
			Details: string(raw),
		}
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
