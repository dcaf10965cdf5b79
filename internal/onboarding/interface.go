package onboarding

import (
	"context"

	"holistic-daily/internal/model"
)

// UseCase drives onboarding, either step by step through a session wizard or in one call.
type UseCase interface {
	Wizard(ctx context.Context, sc model.Scope) (State, error)
	Select(ctx context.Context, sc model.Scope, input SelectInput) (State, error)
	Next(ctx context.Context, sc model.Scope) (State, error)
	Back(ctx context.Context, sc model.Scope) (State, error)

	// Submit saves all three selections at once.
	Submit(ctx context.Context, sc model.Scope, input SubmitInput) error
}
