package usecase

import (
	"context"

	"holistic-daily/internal/dailytask"
	"holistic-daily/internal/model"
)

func (uc *implUseCase) Preferences(ctx context.Context, sc model.Scope) (model.UserPreferences, error) {
	if !sc.Authenticated() {
		return model.UserPreferences{}, dailytask.ErrUnauthenticated
	}

	prefs, err := uc.repo.FetchPreferences(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Preferences: %v", err)
		return model.UserPreferences{}, dailytask.ErrLoadPrefs
	}
	return prefs, nil
}
