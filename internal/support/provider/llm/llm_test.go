package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"holistic-daily/internal/model"
	"holistic-daily/internal/support"
	"holistic-daily/pkg/llmprovider"
)

type mockGenerator struct {
	text string
	err  error
	last *llmprovider.Request
}

func (m *mockGenerator) GenerateContent(_ context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.last = req
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.text}, nil
}

func TestAnswer(t *testing.T) {
	tests := []struct {
		name string
		text string
		want support.Answer
	}{
		{
			name: "json reply",
			text: `{"text":"Drink water.","sources":[{"title":"Hydration","url":"https://example.com/water"}]}`,
			want: support.Answer{Text: "Drink water.", Sources: []model.Source{{Title: "Hydration", URL: "https://example.com/water"}}},
		},
		{
			name: "fenced json",
			text: "```json\n{\"text\":\"Walk daily.\",\"sources\":[]}\n```",
			want: support.Answer{Text: "Walk daily."},
		},
		{
			name: "incomplete sources dropped",
			text: `{"text":"Breathe.","sources":[{"title":"No url"}]}`,
			want: support.Answer{Text: "Breathe."},
		},
		{
			name: "plain text",
			text: "Just rest today.",
			want: support.Answer{Text: "Just rest today."},
		},
		{
			name: "json without text",
			text: `{"answer":"x"}`,
			want: support.Answer{Text: `{"answer":"x"}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &mockGenerator{text: tt.text}
			got, err := New(gen).Answer(context.Background(), "how do I stay healthy?")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("answer mismatch (-want +got):\n%s", diff)
			}
			if !gen.last.JSONMode || gen.last.SystemInstruction == "" {
				t.Errorf("request should ask for JSON with a system prompt: %+v", gen.last)
			}
		})
	}
}

func TestAnswer_Errors(t *testing.T) {
	if _, err := New(&mockGenerator{err: errors.New("all providers failed")}).Answer(context.Background(), "q"); err == nil {
		t.Error("expected generator error to propagate")
	}
	if _, err := New(&mockGenerator{text: "   "}).Answer(context.Background(), "q"); !errors.Is(err, errEmptyReply) {
		t.Errorf("expected errEmptyReply, got %v", err)
	}
}
