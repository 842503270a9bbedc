// Package gemini implements port.ChatModel against Google's Gemini API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"folio/internal/config"
	"folio/internal/domain"
	"folio/internal/llm"
)

const apiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Client implements port.ChatModel using Gemini's generateContent endpoint.
type Client struct {
	apiKey      string
	model       string
	endpoint    string
	temperature float64
	client      *http.Client
}

// NewClient creates a Gemini-backed chat model.
func NewClient(cfg *config.ModelConfig) *Client {
	return newClient(cfg, "")
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint (for testing).
func NewClientWithEndpoint(cfg *config.ModelConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.ModelConfig, endpoint string) *Client {
	model := cfg.DefaultModel
	if model == "" {
		model = "gemini-2.0-flash"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, model)
	}
	return &Client{
		apiKey:      cfg.APIKey,
		model:       model,
		endpoint:    endpoint,
		temperature: cfg.Temperature,
		client:      &http.Client{Timeout: timeout},
	}
}

// Invoke sends the payload to Gemini with a single attempt and no retry.
// With images the system and user instructions collapse into one text part
// followed by one inline_data part per image, preserving extraction order;
// text-only payloads use a proper system_instruction instead.
func (c *Client) Invoke(ctx context.Context, payload domain.PromptPayload) (*domain.RawModelResponse, error) {
	if c.apiKey == "" {
		return nil, domain.ErrModelUnavailable
	}

	reqBody := c.buildRequest(payload)
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
		return nil, &llm.ModelCallError{Provider: "gemini", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &llm.ModelCallError{Provider: "gemini", Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &llm.ModelCallError{
			Provider: "gemini",
			Err:      fmt.Errorf("API error (status %d): %s", resp.StatusCode, truncate(string(respBody), 500)),
		}
	}

	return parseResponse(respBody)
}

func (c *Client) buildRequest(payload domain.PromptPayload) map[string]interface{} {
	genConfig := map[string]interface{}{
		"temperature":     c.temperature,
		"maxOutputTokens": 8192,
	}

	if len(payload.Images) == 0 {
		return map[string]interface{}{
			"system_instruction": map[string]interface{}{
				"parts": []map[string]interface{}{{"text": payload.System}},
			},
			"contents": []map[string]interface{}{
				{
					"role":  "user",
					"parts": []map[string]interface{}{{"text": payload.User}},
				},
			},
			"generationConfig": genConfig,
		}
	}

	parts := make([]map[string]interface{}, 0, len(payload.Images)+1)
	parts = append(parts, map[string]interface{}{
		"text": payload.System + "\n\n" + payload.User,
	})
	for _, img := range payload.Images {
		mimeType, data, ok := splitDataURL(img)
		if !ok {
			// No data URL header; nothing sensible to send.
			continue
		}
		parts = append(parts, map[string]interface{}{
			"inline_data": map[string]interface{}{
				"mime_type": mimeType,
				"data":      data,
			},
		})
	}

	return map[string]interface{}{
		"contents": []map[string]interface{}{
			{"role": "user", "parts": parts},
		},
		"generationConfig": genConfig,
	}
}

// splitDataURL splits "data:image/png;base64,AAAA" into its mime type and
// base64 payload.
func splitDataURL(s string) (mimeType, data string, ok bool) {
	header, payload, found := strings.Cut(s, ",")
	if !found {
		return "", "", false
	}
	header = strings.TrimPrefix(header, "data:")
	header = strings.TrimSuffix(header, ";base64")
	if header == "" {
		header = "image/png"
	}
	return header, payload, true
}

// geminiResponse models the generateContent response.
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

// parseResponse keeps the provider's content-shape union intact: one text
// part collapses to a plain string, several parts stay an ordered list for
// structured.NormalizeToText to flatten.
func parseResponse(body []byte) (*domain.RawModelResponse, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &llm.ModelCallError{Provider: "gemini", Err: fmt.Errorf("unmarshaling response: %w", err)}
	}

	if len(resp.Candidates) == 0 {
		return nil, &llm.ModelCallError{Provider: "gemini", Err: fmt.Errorf("empty response from API: no candidates")}
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return nil, &llm.ModelCallError{Provider: "gemini", Err: fmt.Errorf("empty response from API: no parts")}
	}

	if len(parts) == 1 {
		return &domain.RawModelResponse{Content: parts[0].Text}, nil
	}

	content := make([]any, 0, len(parts))
	for _, p := range parts {
		content = append(content, map[string]any{"type": "text", "text": p.Text})
	}
	return &domain.RawModelResponse{Content: content}, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
