package grok

import "context"

// IGrok defines the interface for the Grok chat-completions client.
// Implementations are safe for concurrent use.
type IGrok interface {
	// GenerateContent sends a chat-completions request
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Grok client with the given configuration
func New(cfg Config) (IGrok, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGrokImpl(cfg), nil
}
