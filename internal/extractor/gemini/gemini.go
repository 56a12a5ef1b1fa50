// Package gemini implements port.Generator against Google's Gemini
// generateContent REST endpoint.
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"forkful/internal/config"
	"forkful/internal/domain"
)

const apiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Client calls the Gemini API in JSON mode.
type Client struct {
	apiKey          string
	model           string
	endpoint        string
	temperature     float64
	maxOutputTokens int
	client          *http.Client
}

// NewClient creates a Gemini client from config.
func NewClient(cfg *config.GeminiConfig) *Client {
	return newClient(cfg, "")
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint
// (for testing).
func NewClientWithEndpoint(cfg *config.GeminiConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.GeminiConfig, endpoint string) *Client {
	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	maxTokens := cfg.MaxOutputTokens
	if maxTokens == 0 {
		maxTokens = 8192
	}
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, model)
	}
	return &Client{
		apiKey:          cfg.APIKey,
		model:           model,
		endpoint:        endpoint,
		temperature:     cfg.Temperature,
		maxOutputTokens: maxTokens,
		client:          &http.Client{Timeout: timeout},
	}
}

// GenerateText sends a text-only prompt and returns the model's JSON reply.
func (c *Client) GenerateText(ctx context.Context, prompt string) ([]byte, error) {
	parts := []map[string]any{
		{"text": prompt},
	}
	return c.generate(ctx, parts)
}

// GenerateVision sends a prompt plus inline image bytes and returns the
// model's JSON reply.
func (c *Client) GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string) ([]byte, error) {
	if err := validateImageMime(mimeType); err != nil {
		return nil, err
	}
	parts := []map[string]any{
		{
			"inline_data": map[string]any{
				"mime_type": mimeType,
				"data":      base64.StdEncoding.EncodeToString(image),
			},
		},
		{"text": prompt},
	}
	return c.generate(ctx, parts)
}

func (c *Client) generate(ctx context.Context, parts []map[string]any) ([]byte, error) {
	if c.apiKey == "" {
		// An operator problem, not worth a network round trip.
		return nil, domain.NewExtractionError(domain.ErrConfigurationError,
			"gemini API key is not configured")
	}

	reqBody := map[string]any{
		"contents": []map[string]any{
			{"role": "user", "parts": parts},
		},
		"generationConfig": map[string]any{
			"temperature":      c.temperature,
			"responseMimeType": "application/json",
			"maxOutputTokens":  c.maxOutputTokens,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, domain.NewExtractionError(domain.ErrTimeout,
				"gemini call exceeded its deadline")
		}
		return nil, domain.NewExtractionError(domain.ErrFetchFailed,
			"calling gemini API: "+err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewExtractionError(domain.ErrExtractionFailed,
			"reading gemini response: "+err.Error())
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, domain.NewExtractionError(domain.ErrQuotaExceeded,
			"gemini API rate limit hit, retry later")
	case resp.StatusCode != http.StatusOK:
		return nil, domain.NewExtractionError(domain.ErrExtractionFailed,
			fmt.Sprintf("gemini API error (status %d): %s", resp.StatusCode, truncate(respBody, 500)))
	}

	return unwrapReply(respBody)
}

// geminiResponse models the nested generateContent reply shape.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

// unwrapReply digs the JSON text out of candidates[0].content.parts[0]. An
// absent or empty text part is an extraction failure, not a default.
func unwrapReply(body []byte) ([]byte, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, domain.NewExtractionError(domain.ErrExtractionFailed,
			"unmarshaling gemini response: "+err.Error())
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, domain.NewExtractionError(domain.ErrExtractionFailed,
			"empty response from gemini: no candidates")
	}
	text := resp.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return nil, domain.NewExtractionError(domain.ErrExtractionFailed,
			"empty response from gemini: blank text part")
	}
	return []byte(text), nil
}

func validateImageMime(mimeType string) error {
	switch mimeType {
	case "image/jpeg", "image/png", "image/webp", "image/heic":
		return nil
	default:
		return domain.NewExtractionError(domain.ErrExtractionFailed,
			"unsupported image type: "+mimeType)
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var uerr *url.Error
	return errors.As(err, &uerr) && uerr.Timeout()
}

func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
