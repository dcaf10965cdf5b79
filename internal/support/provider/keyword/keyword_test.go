package keyword

import (
	"context"
	"testing"

	"holistic-daily/internal/catalog"
	"holistic-daily/internal/model"
)

func TestAnswer(t *testing.T) {
	p := New(nil)

	tests := []struct {
		name       string
		question   string
		wantSource string
	}{
		{name: "nutrition", question: "What should I EAT for breakfast?", wantSource: "Nutrition Basics"},
		{name: "fitness", question: "best workout for beginners", wantSource: "Fitness Guidelines"},
		{name: "meditation", question: "How do I handle stress?", wantSource: "Meditation Guide"},
		{name: "nutrition wins over stress", question: "food for stress", wantSource: "Nutrition Basics"},
		{name: "substring match", question: "I love great healthy meals", wantSource: "Nutrition Basics"},
		{name: "default", question: "hello", wantSource: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := p.Answer(context.Background(), tt.question)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantSource == "" {
				if a.Text != DefaultText || len(a.Sources) != 0 {
					t.Errorf("expected default answer, got %+v", a)
				}
				return
			}
			if len(a.Sources) != 1 || a.Sources[0].Title != tt.wantSource {
				t.Errorf("sources = %+v, want %s", a.Sources, tt.wantSource)
			}
		})
	}
}

func TestAnswer_CustomTopics(t *testing.T) {
	p := New([]catalog.Topic{{
		Keywords: []string{"Sleep"},
		Text:     "Keep a regular bedtime.",
		Sources:  []model.Source{{Title: "Sleep", URL: "https://example.com/sleep"}},
	}})

	a, _ := p.Answer(context.Background(), "tips for better sleep")
	if a.Text != "Keep a regular bedtime." {
		t.Errorf("custom topic not used: %+v", a)
	}

	a, _ = p.Answer(context.Background(), "what should I eat")
	if a.Text != DefaultText {
		t.Errorf("custom table replaces the default one, got %+v", a)
	}
}
