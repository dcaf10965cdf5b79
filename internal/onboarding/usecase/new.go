package usecase

import (
	"holistic-daily/internal/onboarding"
	pkgLog "holistic-daily/pkg/log"
	"holistic-daily/pkg/session"
)

type implUseCase struct {
	l         pkgLog.Logger
	submitter onboarding.Submitter
	sessions  *session.Store[*onboarding.Wizard]
}

// New creates a new onboarding UseCase instance.
func New(l pkgLog.Logger, submitter onboarding.Submitter, sessions *session.Store[*onboarding.Wizard]) onboarding.UseCase {
	return &implUseCase{
		l:         l,
		submitter: submitter,
		sessions:  sessions,
	}
}
