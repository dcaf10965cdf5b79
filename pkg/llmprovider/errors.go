package llmprovider

import (
	"errors"
	"fmt"
)

var (
	ErrNoProvidersConfigured = errors.New("no providers configured")
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrEmptyRequest          = errors.New("request has no user message")
	ErrBlankReply            = errors.New("provider returned a blank reply")
)

// ProviderError is the last failure of one provider after its retries ran out.
type ProviderError struct {
	Provider string
	Attempts int
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s after %d attempt(s): %v", e.Provider, e.Attempts, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
