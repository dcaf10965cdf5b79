package usecase

import (
	"holistic-daily/internal/board"
	"holistic-daily/internal/dailytask"
	pkgLog "holistic-daily/pkg/log"
	"holistic-daily/pkg/session"
)

// Calendar reports the current calendar day.
type Calendar interface {
	Today() string
}

type implUseCase struct {
	l           pkgLog.Logger
	tasks       dailytask.UseCase
	sessions    *session.Store[*board.Board]
	calendar    Calendar
	shareOrigin string
}

// New creates a new board UseCase instance.
func New(
	l pkgLog.Logger,
	tasks dailytask.UseCase,
	sessions *session.Store[*board.Board],
	calendar Calendar,
	shareOrigin string,
) board.UseCase {
	return &implUseCase{
		l:           l,
		tasks:       tasks,
		sessions:    sessions,
		calendar:    calendar,
		shareOrigin: shareOrigin,
	}
}
