// Package generation holds the client for the external text-generation
// endpoint. All transport detail stays here; callers only see the Generator
// port.
package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const (
	// DefaultURL is the hosted inference endpoint used when none is configured.
	DefaultURL = "https://api-inference.huggingface.co/models/microsoft/DialoGPT-large"

	// PlaceholderAPIKey is the scaffold value treated as "not configured".
	PlaceholderAPIKey = "your-api-key-here"

	requestTimeout = 10 * time.Second
	minRoastLength = 10
)

var promptEcho = regexp.MustCompile(`(?i)^.*?Generate.*?for:\s*`)

// ErrEmptyResponse reports an upstream response with no usable text.
var ErrEmptyResponse = &generationError{"empty or too-short generation response"}

type generationError struct{ msg string }

func (e *generationError) Error() string { return e.msg }

// Enabled reports whether an API key is usable for real generation.
func Enabled(apiKey string) bool {
	return apiKey != "" && apiKey != PlaceholderAPIKey
}

// HuggingFaceClient calls the hosted inference API. Requests are bounded by a
// 10s client timeout so a slow upstream cannot hang a user request; the
// caller falls back to samples on any error, including timeout.
type HuggingFaceClient struct {
	url    string
	apiKey string
	client *http.Client
}

func NewHuggingFaceClient(url, apiKey string) *HuggingFaceClient {
	if url == "" {
		url = DefaultURL
	}
	return &HuggingFaceClient{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: requestTimeout},
	}
}

type generationRequest struct {
	Inputs     string               `json:"inputs"`
	Parameters generationParameters `json:"parameters"`
}

type generationParameters struct {
	MaxLength         int     `json:"max_length"`
	Temperature       float64 `json:"temperature"`
	DoSample          bool    `json:"do_sample"`
	RepetitionPenalty float64 `json:"repetition_penalty"`
	TopP              float64 `json:"top_p"`
	TopK              int     `json:"top_k"`
}

type generationResult struct {
	GeneratedText string `json:"generated_text"`
}

// Generate issues one conditioned generation request and post-processes the
// output: the echoed prompt prefix is stripped and only the first line kept.
func (c *HuggingFaceClient) Generate(ctx context.Context, input, style, language string) (string, error) {
	body, err := json.Marshal(generationRequest{
		Inputs: fmt.Sprintf("Generate a %s roast in %s language for: %s", style, language, input),
		Parameters: generationParameters{
			MaxLength:         150,
			Temperature:       0.9,
			DoSample:          true,
			RepetitionPenalty: 1.3,
			TopP:              0.9,
			TopK:              50,
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generation endpoint returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read generation response: %w", err)
	}

	// The API returns either a one-element array or a bare object.
	var generated string
	var results []generationResult
	if err := json.Unmarshal(raw, &results); err == nil && len(results) > 0 {
		generated = results[0].GeneratedText
	} else {
		var single generationResult
		if err := json.Unmarshal(raw, &single); err != nil {
			return "", fmt.Errorf("decode generation response: %w", err)
		}
		generated = single.GeneratedText
	}

	roast := cleanResponse(generated)
	if len(roast) <= minRoastLength {
		return "", ErrEmptyResponse
	}
	return roast, nil
}

func cleanResponse(text string) string {
	text = promptEcho.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = strings.TrimSpace(text[:i])
	}
	return text
}
