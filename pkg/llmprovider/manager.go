package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"holistic-daily/pkg/log"
)

// Manager sends a request to providers in priority order, retrying each one
// before falling back to the next.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration // grows linearly with the attempt number
	MaxTotalTimeout time.Duration // bounds the whole chain; zero means no bound
}

func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// GenerateContent returns the first non-blank reply. When every provider
// fails, the error wraps ErrAllProvidersFailed and each *ProviderError.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if !hasUserMessage(req) {
		return nil, ErrEmptyRequest
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var failures []error
	for _, p := range m.providers {
		if err := ctx.Err(); err != nil {
			failures = append(failures, err)
			break
		}

		resp, attempts, err := m.generateWithRetry(ctx, p, req)
		if err == nil {
			m.logger.Infof(ctx, "llmprovider.Manager: %s/%s answered after %d attempt(s), tokens in=%d out=%d",
				p.Name(), p.Model(), attempts, resp.Usage.InputTokens, resp.Usage.OutputTokens)
			return resp, nil
		}

		perr := &ProviderError{Provider: p.Name(), Attempts: attempts, Err: err}
		m.logger.Warnf(ctx, "llmprovider.Manager: %v", perr)
		failures = append(failures, perr)

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, errors.Join(failures...))
}

// generateWithRetry calls one provider up to RetryAttempts times. A cancelled
// context stops the loop at once.
func (m *Manager) generateWithRetry(ctx context.Context, p Provider, req *Request) (*Response, int, error) {
	attempts := max(m.config.RetryAttempts, 1)

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(time.Duration(attempt-1) * m.config.RetryDelay):
			case <-ctx.Done():
				return nil, attempt - 1, ctx.Err()
			}
		}

		resp, err := p.GenerateContent(ctx, req)
		if err == nil {
			if resp == nil || strings.TrimSpace(resp.Text) == "" {
				err = ErrBlankReply
			} else {
				if resp.Usage == nil {
					resp.Usage = &Usage{}
				}
				return resp, attempt, nil
			}
		}

		lastErr = err
		if ctx.Err() != nil {
			return nil, attempt, lastErr
		}
	}

	return nil, attempts, lastErr
}

func hasUserMessage(req *Request) bool {
	if req == nil {
		return false
	}
	for _, msg := range req.Messages {
		if msg.Role == "user" && strings.TrimSpace(msg.Text) != "" {
			return true
		}
	}
	return false
}
