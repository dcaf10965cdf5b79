package gemini

import (
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// Config holds Gemini client configuration
type Config struct {
	APIKey     string
	Model      string
	APIURL     string // overrides the SDK base URL, used by tests
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("gemini: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	return nil
}

type geminiImpl struct {
	client *genai.Client
	model  string
}

// Message is one conversation turn. Role is "user" or "model".
type Message struct {
	Role string
	Text string
}

// Request is a text generation request
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
	JSON              bool // ask for application/json output
}

// Response is the generated text with token usage
type Response struct {
	Text  string
	Usage Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
