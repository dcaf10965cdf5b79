package dailytask

import (
	"context"

	"holistic-daily/internal/model"
)

// UseCase defines the business logic interface for daily tasks.
type UseCase interface {
	// Today returns the caller's tasks for the current day, generating them on first access.
	Today(ctx context.Context, sc model.Scope) ([]model.Task, error)

	// ByDate returns the caller's tasks for a past or future day. It never generates.
	ByDate(ctx context.Context, sc model.Scope, when string) (ByDateOutput, error)

	SetCompletion(ctx context.Context, sc model.Scope, input SetCompletionInput) error
	SetFeedback(ctx context.Context, sc model.Scope, input SetFeedbackInput) error

	// Preferences returns the caller's onboarding selections, or the zero value when none exist.
	Preferences(ctx context.Context, sc model.Scope) (model.UserPreferences, error)

	// Share builds the share payload for one of today's tasks.
	Share(ctx context.Context, sc model.Scope, taskID string) (ShareOutput, error)
}
