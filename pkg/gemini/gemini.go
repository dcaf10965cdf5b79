package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

func newGeminiImpl(ctx context.Context, cfg Config) (*geminiImpl, error) {
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.APIURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.APIURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}
	return &geminiImpl{client: client, model: cfg.Model}, nil
}

// GenerateContent sends a generation request to Gemini
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		contents = append(contents, genai.NewContentFromText(m.Text, role(m.Role)))
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, g.config(req))
	if err != nil {
		return nil, fmt.Errorf("gemini: generate failed: %w", err)
	}
	return transformResponse(result), nil
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}

func (g *geminiImpl) config(req *Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.Temperature > 0 {
		cfg.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.JSON {
		cfg.ResponseMIMEType = "application/json"
	}
	return cfg
}

func role(r string) genai.Role {
	if r == "assistant" || r == "model" {
		return genai.RoleModel
	}
	return genai.RoleUser
}

func transformResponse(resp *genai.GenerateContentResponse) *Response {
	out := &Response{Text: resp.Text()}
	if u := resp.UsageMetadata; u != nil {
		out.Usage = Usage{
			InputTokens:  int(u.PromptTokenCount),
			OutputTokens: int(u.CandidatesTokenCount),
			TotalTokens:  int(u.TotalTokenCount),
		}
	}
	return out
}
