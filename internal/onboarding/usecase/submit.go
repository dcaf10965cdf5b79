package usecase

import (
	"context"
	"fmt"

	"holistic-daily/internal/model"
	"holistic-daily/internal/onboarding"
)

// Submit runs the whole wizard in one call so the one-shot endpoint obeys the same rules.
func (uc *implUseCase) Submit(ctx context.Context, sc model.Scope, input onboarding.SubmitInput) error {
	if !sc.Authenticated() {
		return onboarding.ErrUnauthenticated
	}

	w := onboarding.NewWizard()
	for _, tag := range dedupe(input.DietaryPreferences) {
		if err := w.ToggleDiet(tag); err != nil {
			return err
		}
	}
	if err := w.Next(ctx, sc.UserID, uc.submitter); err != nil {
		return err
	}

	if input.FitnessLevel != "" {
		if err := w.SetFitness(input.FitnessLevel); err != nil {
			return err
		}
	}
	if err := w.Next(ctx, sc.UserID, uc.submitter); err != nil {
		return err
	}

	for _, tag := range dedupe(input.ContentInterests) {
		if err := w.ToggleInterest(tag); err != nil {
			return err
		}
	}
	if err := w.Next(ctx, sc.UserID, uc.submitter); err != nil {
		return uc.mapSubmitError(ctx, "uc.Submit", err)
	}

	if w.State().Step != onboarding.StepSubmitted {
		return fmt.Errorf("%w: submission did not complete", onboarding.ErrInvalidTransition)
	}
	return nil
}

// dedupe keeps the first occurrence of each tag so toggling does not cancel repeats.
func dedupe(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
