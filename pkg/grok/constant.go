package grok

import "time"

const (
	// DefaultBaseURL is the xAI OpenAI-compatible endpoint
	DefaultBaseURL = "https://api.x.ai/v1"

	// DefaultModel is the default Grok model
	DefaultModel = "grok-3-mini"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
