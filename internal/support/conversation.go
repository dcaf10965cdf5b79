package support

import (
	"sync"

	"holistic-daily/internal/model"
)

// MaxMessages bounds a conversation. The greeting is kept, the oldest exchanges are dropped.
const MaxMessages = 100

// Conversation is one session's chat transcript. It is safe for concurrent use.
type Conversation struct {
	mu       sync.Mutex
	messages []model.ChatMessage
}

// NewConversation starts a transcript with the assistant greeting.
func NewConversation() *Conversation {
	return &Conversation{
		messages: []model.ChatMessage{{Role: model.ChatRoleAssistant, Content: Greeting}},
	}
}

func (c *Conversation) Append(msgs ...model.ChatMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages = append(c.messages, msgs...)
	if over := len(c.messages) - MaxMessages; over > 0 {
		c.messages = append(c.messages[:1:1], c.messages[1+over:]...)
	}
}

func (c *Conversation) Messages() []model.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.ChatMessage(nil), c.messages...)
}
