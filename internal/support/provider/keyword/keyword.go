// Package keyword answers support questions from a fixed keyword table.
package keyword

import (
	"context"
	"strings"

	"holistic-daily/internal/catalog"
	"holistic-daily/internal/model"
	"holistic-daily/internal/support"
)

const DefaultText = "I'm here to help you with your holistic wellness journey. What would you like to know about nutrition, fitness, or mental stimulation?"

// DefaultTopics is the built-in table, checked in order.
func DefaultTopics() []catalog.Topic {
	return []catalog.Topic{
		{
			Keywords: []string{"nutrition", "food", "eat"},
			Text:     "Nutrition is a key component of holistic wellness. Focus on whole foods, plenty of vegetables, lean proteins, and healthy fats. Stay hydrated and be mindful of portion sizes.",
			Sources:  []model.Source{{Title: "Nutrition Basics", URL: "https://example.com/nutrition"}},
		},
		{
			Keywords: []string{"workout", "exercise", "fitness"},
			Text:     "Regular physical activity is essential for overall health. Aim for a mix of cardio, strength training, and flexibility exercises. Even short workouts can be beneficial if done consistently.",
			Sources:  []model.Source{{Title: "Fitness Guidelines", URL: "https://example.com/fitness"}},
		},
		{
			Keywords: []string{"meditation", "mindfulness", "stress"},
			Text:     "Meditation can help reduce stress, improve focus, and promote emotional well-being. Start with just 5 minutes a day and gradually increase the duration as you become more comfortable with the practice.",
			Sources:  []model.Source{{Title: "Meditation Guide", URL: "https://example.com/meditation"}},
		},
	}
}

type provider struct {
	topics []catalog.Topic
}

// New returns a keyword provider. An empty topic list uses DefaultTopics.
func New(topics []catalog.Topic) support.Provider {
	if len(topics) == 0 {
		topics = DefaultTopics()
	}
	return &provider{topics: topics}
}

func (p *provider) Name() string { return "keyword" }

// Answer picks the first topic with a keyword that occurs anywhere in the lower-cased question.
func (p *provider) Answer(_ context.Context, question string) (support.Answer, error) {
	q := strings.ToLower(question)
	for _, t := range p.topics {
		for _, kw := range t.Keywords {
			if strings.Contains(q, strings.ToLower(kw)) {
				return support.Answer{Text: t.Text, Sources: append([]model.Source(nil), t.Sources...)}, nil
			}
		}
	}
	return support.Answer{Text: DefaultText}, nil
}
