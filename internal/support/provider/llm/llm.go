// Package llm answers support questions with a language model.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"holistic-daily/internal/model"
	"holistic-daily/internal/support"
	"holistic-daily/pkg/llmprovider"
)

const systemPrompt = `You are the Holistic Daily assistant. You help people with nutrition, fitness and mental wellness.
Answer in two to four friendly sentences. Do not give medical diagnoses.
Reply with a JSON object only, no markdown:
{"text": "<your answer>", "sources": [{"title": "<source title>", "url": "<https url>"}]}
Use an empty sources array when you have no reliable source.`

const maxTokens = 500

var errEmptyReply = errors.New("model returned an empty reply")

// Generator is satisfied by *llmprovider.Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type provider struct {
	gen Generator
}

func New(gen Generator) support.Provider {
	return &provider{gen: gen}
}

func (p *provider) Name() string { return "llm" }

func (p *provider) Answer(ctx context.Context, question string) (support.Answer, error) {
	resp, err := p.gen.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: systemPrompt,
		Messages:          []llmprovider.Message{{Role: "user", Text: question}},
		MaxTokens:         maxTokens,
		JSONMode:          true,
	})
	if err != nil {
		return support.Answer{}, err
	}
	return parseReply(resp.Text)
}

type reply struct {
	Text    string `json:"text"`
	Sources []struct {
		Title string `json:"title"`
		URL   string `json:"url"`
	} `json:"sources"`
}

// parseReply decodes the JSON reply. Anything that is not the expected object is used as plain text.
func parseReply(raw string) (support.Answer, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return support.Answer{}, errEmptyReply
	}

	var r reply
	if err := json.Unmarshal([]byte(stripFence(raw)), &r); err != nil || strings.TrimSpace(r.Text) == "" {
		return support.Answer{Text: raw}, nil
	}

	a := support.Answer{Text: strings.TrimSpace(r.Text)}
	for _, s := range r.Sources {
		if s.Title == "" || s.URL == "" {
			continue
		}
		a.Sources = append(a.Sources, model.Source{Title: s.Title, URL: s.URL})
	}
	return a, nil
}

func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
