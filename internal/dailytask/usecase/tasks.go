package usecase

import (
	"context"

	"holistic-daily/internal/dailytask"
	"holistic-daily/internal/dailytask/repository"
	"holistic-daily/internal/model"
)

// Today fetches today's tasks and lazily generates the day when none exist yet.
func (uc *implUseCase) Today(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	if !sc.Authenticated() {
		return nil, dailytask.ErrUnauthenticated
	}

	date := uc.calendar.Today()
	tasks, err := uc.repo.FetchTasksForDate(ctx, repository.FetchTasksOptions{UserID: sc.UserID, Date: date})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Today fetch: %v", err)
		return nil, dailytask.ErrLoadTasks
	}
	if len(tasks) > 0 {
		return tasks, nil
	}

	tasks = uc.generator.GenerateFor(sc.UserID, date)
	if err := uc.repo.CreateTasks(ctx, tasks); err != nil {
		uc.l.Errorf(ctx, "uc.Today create: %v", err)
		return nil, dailytask.ErrLoadTasks
	}
	uc.l.Infof(ctx, "uc.Today: generated %d tasks for %s on %s", len(tasks), sc.UserID, date)
	return tasks, nil
}

func (uc *implUseCase) ByDate(ctx context.Context, sc model.Scope, when string) (dailytask.ByDateOutput, error) {
	if !sc.Authenticated() {
		return dailytask.ByDateOutput{}, dailytask.ErrUnauthenticated
	}

	date, err := uc.calendar.Resolve(when)
	if err != nil {
		return dailytask.ByDateOutput{}, dailytask.ErrInvalidDate
	}

	tasks, err := uc.repo.FetchTasksForDate(ctx, repository.FetchTasksOptions{UserID: sc.UserID, Date: date})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ByDate: %v", err)
		return dailytask.ByDateOutput{}, dailytask.ErrLoadTasks
	}
	return dailytask.ByDateOutput{Date: date, Tasks: tasks}, nil
}
