package support

import (
	"context"

	"holistic-daily/internal/model"
)

// Provider produces an answer for a wellness question. Errors are handled by the caller.
type Provider interface {
	Answer(ctx context.Context, question string) (Answer, error)
	Name() string
}

// UseCase answers support questions and keeps a per-session transcript.
type UseCase interface {
	// Answer never fails: any provider error or panic becomes the apology answer.
	Answer(ctx context.Context, question string) Answer

	Ask(ctx context.Context, sc model.Scope, input AskInput) (AskOutput, error)
	Transcript(ctx context.Context, sc model.Scope) ([]model.ChatMessage, error)
}
