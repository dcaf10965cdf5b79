package usecase

import (
	"context"
	"fmt"

	"holistic-daily/internal/support"
)

func (uc *implUseCase) Answer(ctx context.Context, question string) (answer support.Answer) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "uc.Answer: %s provider panicked: %v", uc.provider.Name(), r)
			answer = support.Answer{Text: support.Apology}
		}
	}()

	a, err := uc.provider.Answer(ctx, question)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Answer: %v", fmt.Errorf("%s provider: %w", uc.provider.Name(), err))
		return support.Answer{Text: support.Apology}
	}
	if a.Text == "" {
		uc.l.Warnf(ctx, "uc.Answer: %s provider returned empty text", uc.provider.Name())
		return support.Answer{Text: support.Apology}
	}
	return a
}
