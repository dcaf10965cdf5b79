package usecase

import (
	"context"
	"errors"

	"holistic-daily/internal/dailytask"
	"holistic-daily/internal/dailytask/repository"
	"holistic-daily/internal/model"
)

func (uc *implUseCase) SetCompletion(ctx context.Context, sc model.Scope, input dailytask.SetCompletionInput) error {
	if input.TaskID == "" {
		return dailytask.ErrEmptyTaskID
	}

	err := uc.repo.SetTaskCompletion(ctx, repository.SetCompletionOptions{
		TaskID:    input.TaskID,
		UserID:    sc.UserID,
		Completed: input.Completed,
	})
	return uc.mapUpdateError(ctx, "uc.SetCompletion", err)
}

func (uc *implUseCase) SetFeedback(ctx context.Context, sc model.Scope, input dailytask.SetFeedbackInput) error {
	if input.TaskID == "" {
		return dailytask.ErrEmptyTaskID
	}

	err := uc.repo.SetTaskFeedback(ctx, repository.SetFeedbackOptions{
		TaskID:   input.TaskID,
		UserID:   sc.UserID,
		Feedback: input.Feedback,
	})
	return uc.mapUpdateError(ctx, "uc.SetFeedback", err)
}

func (uc *implUseCase) mapUpdateError(ctx context.Context, op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return dailytask.ErrTaskNotFound
	default:
		uc.l.Errorf(ctx, "%s: %v", op, err)
		return dailytask.ErrUpdateTask
	}
}
