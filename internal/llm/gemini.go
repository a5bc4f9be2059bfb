package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type GeminiClient struct {
	apiKey string
	model  string

	// BaseURL is overridable for tests.
	BaseURL string

	httpClient *http.Client
}

func NewGeminiClient() *GeminiClient {
	return &GeminiClient{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		model:   os.Getenv("GEMINI_MODEL"),
		BaseURL: "https://generativelanguage.googleapis.com",
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Complete sends one prompt to Gemini and returns the first candidate's
// text as-is. Callers that need JSON do their own extraction.
func (g *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("missing GEMINI_API_KEY")
	}
	if g.model == "" {
		return "", errors.New("missing GEMINI_MODEL")
	}
	if prompt == "" {
		return "", errors.New("empty prompt")
	}

	url := fmt.Sprintf(
		"%s/v1beta/models/%s:generateContent?key=%s",
		g.BaseURL,
		g.model,
		g.apiKey,
	)

	payload := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]any{
			"temperature":     0.2,
			"maxOutputTokens": 2048,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		url,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini api error: %s", string(raw))
	}

	// Gemini response shape
	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if len(result.Candidates) == 0 ||
		len(result.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty gemini response")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
