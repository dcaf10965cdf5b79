package board

import (
	"context"

	"holistic-daily/internal/model"
)

// UseCase drives the per-user task board kept in session state.
type UseCase interface {
	View(ctx context.Context, sc model.Scope) (View, error)
	Dispatch(ctx context.Context, sc model.Scope, ev Event) (View, error)
}
