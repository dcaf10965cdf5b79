package usecase

import (
	"context"

	"holistic-daily/internal/dailytask"
	"holistic-daily/internal/model"
	"holistic-daily/internal/share"
)

// Share builds the share payload for one of today's tasks using its current feedback.
func (uc *implUseCase) Share(ctx context.Context, sc model.Scope, taskID string) (dailytask.ShareOutput, error) {
	if taskID == "" {
		return dailytask.ShareOutput{}, dailytask.ErrEmptyTaskID
	}

	tasks, err := uc.Today(ctx, sc)
	if err != nil {
		return dailytask.ShareOutput{}, err
	}

	for _, t := range tasks {
		if t.ID != taskID {
			continue
		}
		p := share.Build(uc.shareOrigin, t.Title, t.Feedback)
		return dailytask.ShareOutput{
			TaskID:    t.ID,
			Text:      p.Text,
			SMSLink:   p.SMSLink,
			EmailLink: p.EmailLink,
			URL:       p.URL,
		}, nil
	}
	return dailytask.ShareOutput{}, dailytask.ErrTaskNotFound
}
