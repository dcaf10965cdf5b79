package usecase

import (
	"holistic-daily/internal/dailytask"
	"holistic-daily/internal/dailytask/repository"
	"holistic-daily/internal/model"
	pkgLog "holistic-daily/pkg/log"
)

// Generator produces the tasks for a user's day.
type Generator interface {
	GenerateFor(userID, date string) []model.Task
}

// Calendar resolves calendar days in the configured timezone.
type Calendar interface {
	Today() string
	Resolve(when string) (string, error)
}

type implUseCase struct {
	l           pkgLog.Logger
	repo        repository.Repository
	generator   Generator
	calendar    Calendar
	shareOrigin string
}

// New creates a new dailytask UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	generator Generator,
	calendar Calendar,
	shareOrigin string,
) dailytask.UseCase {
	return &implUseCase{
		l:           l,
		repo:        repo,
		generator:   generator,
		calendar:    calendar,
		shareOrigin: shareOrigin,
	}
}
