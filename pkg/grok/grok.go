package grok

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

func newGrokImpl(cfg Config) *grokImpl {
	return &grokImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a request to the chat-completions endpoint
func (g *grokImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body := *req
	if body.Model == "" {
		body.Model = g.model
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("grok: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("grok: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("grok: API call failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("grok: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err != nil || errResp.Error.Message == "" {
			return nil, fmt.Errorf("grok: API error %d: %s", resp.StatusCode, string(respBody))
		}
		return nil, fmt.Errorf("grok: API error %d: %s", resp.StatusCode, errResp.Error.Message)
	}

	var result Response
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("grok: failed to parse response: %w", err)
	}
	return &result, nil
}

// Model returns the model being used
func (g *grokImpl) Model() string {
	return g.model
}
