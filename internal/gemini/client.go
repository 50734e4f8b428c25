// Package gemini wraps the generative-language HTTP endpoint behind a single
// text-in/text-out call. One attempt per call: no retries, no backoff, and no
// timeout policy beyond the injected http.Client and caller context.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the generative-language API root.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-2.5-flash"
)

// Client defines the interface for the language-model boundary.
type Client interface {
	// GenerateContent sends a prompt and returns the model's text response
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// HTTPClient implements Client against the generateContent REST endpoint.
type HTTPClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Options configures an HTTPClient.
type Options struct {
	// APIKey authenticates requests. An empty key is not rejected here:
	// the first call fails instead.
	APIKey string

	// BaseURL overrides the API root (used by tests)
	BaseURL string

	// Model is the model identifier in the request path
	Model string

	// HTTPClient overrides the transport (nil uses a 60s-timeout default)
	HTTPClient *http.Client
}

// NewHTTPClient creates an HTTPClient with defaults applied.
func NewHTTPClient(opts Options) *HTTPClient {
	c := &HTTPClient{
		apiKey:     opts.APIKey,
		baseURL:    opts.BaseURL,
		model:      opts.Model,
		httpClient: opts.HTTPClient,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.model == "" {
		c.model = DefaultModel
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return c
}

// GenerateContent POSTs the prompt and returns candidates[0].content.parts[0].text.
func (c *HTTPClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", ErrEmptyPrompt
	}
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	reqBody := GenerateRequest{
		Contents: []Content{
			{Role: "user", Parts: []Part{{Text: prompt}}},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	slog.Debug("gemini request", "model", c.model, "prompt_len", len(prompt))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		slog.Error("gemini request failed", "status", resp.StatusCode)
		return "", &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	var genResp GenerateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", &ParseError{Err: err}
	}

	if genResp.Error != nil {
		return "", &StatusError{Code: genResp.Error.Code, Body: genResp.Error.Message}
	}

	if len(genResp.Candidates) == 0 ||
		len(genResp.Candidates[0].Content.Parts) == 0 ||
		genResp.Candidates[0].Content.Parts[0].Text == "" {
		return "", ErrNoContent
	}

	text := genResp.Candidates[0].Content.Parts[0].Text
	slog.Debug("gemini response", "model", c.model, "response_len", len(text))
	return text, nil
}

// MockClient is a test implementation of Client.
type MockClient struct {
	// GenerateFunc is called when GenerateContent is invoked
	GenerateFunc func(ctx context.Context, prompt string) (string, error)
}

// GenerateContent delegates to the GenerateFunc.
func (m *MockClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	return "", nil
}
