package repository

import (
	"context"

	"holistic-daily/internal/model"
)

// Repository is the task store. Every call is a single round trip with no retries.
type Repository interface {
	// FetchTasksForDate returns an empty slice when the user has no tasks that day.
	FetchTasksForDate(ctx context.Context, opt FetchTasksOptions) ([]model.Task, error)
	// CreateTasks skips tasks whose ID already exists.
	CreateTasks(ctx context.Context, tasks []model.Task) error
	SetTaskCompletion(ctx context.Context, opt SetCompletionOptions) error
	SetTaskFeedback(ctx context.Context, opt SetFeedbackOptions) error

	// FetchPreferences returns the zero value when no record exists.
	FetchPreferences(ctx context.Context, userID string) (model.UserPreferences, error)
	SavePreferences(ctx context.Context, prefs model.UserPreferences) error
}
