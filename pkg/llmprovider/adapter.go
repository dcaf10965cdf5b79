package llmprovider

import (
	"context"
	"fmt"

	"holistic-daily/pkg/gemini"
	"holistic-daily/pkg/grok"
)

// GrokAdapter adapts pkg/grok to llmprovider.Provider interface
type GrokAdapter struct {
	client grok.IGrok
}

// NewGrokAdapter creates a new Grok adapter
func NewGrokAdapter(client grok.IGrok) *GrokAdapter {
	return &GrokAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GrokAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	grokReq := &grok.Request{
		Messages:    make([]grok.Message, 0, len(req.Messages)+1),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	// System instruction goes first as its own message
	if req.SystemInstruction != "" {
		grokReq.Messages = append(grokReq.Messages, grok.Message{Role: "system", Content: req.SystemInstruction})
	}
	for _, m := range req.Messages {
		grokReq.Messages = append(grokReq.Messages, grok.Message{Role: m.Role, Content: m.Text})
	}
	if req.JSONMode {
		grokReq.ResponseFormat = &grok.ResponseFormat{Type: "json_object"}
	}

	resp, err := a.client.GenerateContent(ctx, grokReq)
	if err != nil {
		return nil, fmt.Errorf("grok: %w", err)
	}

	model := resp.Model
	if model == "" {
		model = a.client.Model()
	}
	return &Response{
		Text:         resp.Text(),
		ProviderName: a.Name(),
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *GrokAdapter) Name() string {
	return "grok"
}

// Model returns the model name
func (a *GrokAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Messages:          make([]gemini.Message, len(req.Messages)),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		JSON:              req.JSONMode,
	}
	for i, m := range req.Messages {
		geminiReq.Messages[i] = gemini.Message{Role: m.Role, Text: m.Text}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}
