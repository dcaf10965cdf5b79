package usecase

import (
	"context"
	"errors"

	"holistic-daily/internal/model"
	"holistic-daily/internal/onboarding"
)

func (uc *implUseCase) Wizard(ctx context.Context, sc model.Scope) (onboarding.State, error) {
	w, err := uc.wizardFor(sc)
	if err != nil {
		return onboarding.State{}, err
	}
	return w.State(), nil
}

func (uc *implUseCase) Select(ctx context.Context, sc model.Scope, input onboarding.SelectInput) (onboarding.State, error) {
	w, err := uc.wizardFor(sc)
	if err != nil {
		return onboarding.State{}, err
	}

	switch input.Field {
	case onboarding.FieldDietary:
		err = w.ToggleDiet(input.Value)
	case onboarding.FieldFitness:
		err = w.SetFitness(model.FitnessLevel(input.Value))
	case onboarding.FieldInterests:
		err = w.ToggleInterest(input.Value)
	default:
		err = onboarding.ErrUnknownField
	}
	return w.State(), err
}

func (uc *implUseCase) Next(ctx context.Context, sc model.Scope) (onboarding.State, error) {
	w, err := uc.wizardFor(sc)
	if err != nil {
		return onboarding.State{}, err
	}

	if err := w.Next(ctx, sc.UserID, uc.submitter); err != nil {
		return w.State(), uc.mapSubmitError(ctx, "uc.Next", err)
	}

	state := w.State()
	if state.Step == onboarding.StepSubmitted {
		uc.l.Infof(ctx, "uc.Next: onboarding submitted for %s", sc.UserID)
	}
	return state, nil
}

func (uc *implUseCase) Back(ctx context.Context, sc model.Scope) (onboarding.State, error) {
	w, err := uc.wizardFor(sc)
	if err != nil {
		return onboarding.State{}, err
	}
	if err := w.Back(); err != nil {
		return w.State(), err
	}
	return w.State(), nil
}

// wizardFor returns the wizard bound to the caller's session, starting one when absent.
func (uc *implUseCase) wizardFor(sc model.Scope) (*onboarding.Wizard, error) {
	if sc.SessionID == "" {
		return nil, onboarding.ErrNoSession
	}
	return uc.sessions.GetOrCreate(sc.SessionID, func() (*onboarding.Wizard, error) {
		return onboarding.NewWizard(), nil
	})
}

func (uc *implUseCase) mapSubmitError(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, onboarding.ErrUnauthenticated),
		errors.Is(err, onboarding.ErrAlreadySubmitted),
		errors.Is(err, onboarding.ErrInvalidTransition):
		return err
	default:
		uc.l.Errorf(ctx, "%s: %v", op, err)
		return onboarding.ErrSavePreferences
	}
}
