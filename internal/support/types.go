package support

import "holistic-daily/internal/model"

const (
	// Apology is returned whenever answering fails.
	Apology = "I'm sorry, I encountered an error processing your request. Please try again later."

	// Greeting opens every transcript.
	Greeting = "Hi there! I'm your Holistic Daily assistant powered by Grok. How can I help you with your wellness journey today?"
)

type Answer struct {
	Text    string
	Sources []model.Source
}

// Message returns the answer as an assistant transcript line.
func (a Answer) Message() model.ChatMessage {
	return model.ChatMessage{Role: model.ChatRoleAssistant, Content: a.Text, Sources: a.Sources}
}

type AskInput struct {
	Question string
}

type AskOutput struct {
	Answer     Answer
	Transcript []model.ChatMessage
}
