package usecase

import (
	"holistic-daily/internal/support"
	pkgLog "holistic-daily/pkg/log"
	"holistic-daily/pkg/session"
)

type implUseCase struct {
	l        pkgLog.Logger
	provider support.Provider
	sessions *session.Store[*support.Conversation]
}

// New creates a new support UseCase instance.
func New(l pkgLog.Logger, provider support.Provider, sessions *session.Store[*support.Conversation]) support.UseCase {
	return &implUseCase{
		l:        l,
		provider: provider,
		sessions: sessions,
	}
}
