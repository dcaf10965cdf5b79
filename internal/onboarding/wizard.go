package onboarding

import (
	"context"
	"fmt"
	"sync"

	"holistic-daily/internal/model"
)

type Step int

const (
	StepDiet Step = iota + 1
	StepFitness
	StepInterests
	StepSubmitted
)

func (s Step) String() string {
	switch s {
	case StepDiet:
		return "diet"
	case StepFitness:
		return "fitness"
	case StepInterests:
		return "interests"
	case StepSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// Submitter stores the collected selections.
type Submitter interface {
	SaveOnboardingPreferences(ctx context.Context, userID string, dietary []string, fitness model.FitnessLevel, interests []string) error
}

// Wizard is the three-step onboarding flow. Selections are only accepted on their own step.
// It is safe for concurrent use.
type Wizard struct {
	mu        sync.Mutex
	step      Step
	dietary   []string
	fitness   model.FitnessLevel
	interests []string
}

func NewWizard() *Wizard {
	return &Wizard{step: StepDiet, fitness: model.FitnessBeginner}
}

// State is a copy of the wizard safe to render.
type State struct {
	Step      Step
	Dietary   []string
	Fitness   model.FitnessLevel
	Interests []string
}

func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return State{
		Step:      w.step,
		Dietary:   append([]string{}, w.dietary...),
		Fitness:   w.fitness,
		Interests: append([]string{}, w.interests...),
	}
}

// ToggleDiet adds a dietary tag, or removes it when already selected.
func (w *Wizard) ToggleDiet(tag string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.expect(StepDiet); err != nil {
		return err
	}
	if !contains(DietaryOptions, tag) {
		return fmt.Errorf("%w: %q", ErrUnknownOption, tag)
	}
	w.dietary = toggle(w.dietary, tag)
	return nil
}

func (w *Wizard) SetFitness(level model.FitnessLevel) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.expect(StepFitness); err != nil {
		return err
	}
	if !level.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownOption, level)
	}
	w.fitness = level
	return nil
}

// ToggleInterest adds a content-interest tag, or removes it when already selected.
func (w *Wizard) ToggleInterest(tag string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.expect(StepInterests); err != nil {
		return err
	}
	if !contains(InterestOptions, tag) {
		return fmt.Errorf("%w: %q", ErrUnknownOption, tag)
	}
	w.interests = toggle(w.interests, tag)
	return nil
}

func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step == StepSubmitted {
		return ErrAlreadySubmitted
	}
	if w.step == StepDiet {
		return fmt.Errorf("%w: already on the first step", ErrInvalidTransition)
	}
	w.step--
	return nil
}

// Next advances one step. On the last step it submits once for userID; an empty
// userID fails with ErrUnauthenticated without calling the submitter.
// A failed submission leaves the wizard on the last step.
func (w *Wizard) Next(ctx context.Context, userID string, s Submitter) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.step {
	case StepSubmitted:
		return ErrAlreadySubmitted
	case StepDiet, StepFitness:
		w.step++
		return nil
	}

	if userID == "" {
		return ErrUnauthenticated
	}
	if err := s.SaveOnboardingPreferences(ctx, userID, nonNil(w.dietary), w.fitness, nonNil(w.interests)); err != nil {
		return err
	}
	w.step = StepSubmitted
	return nil
}

func (w *Wizard) expect(step Step) error {
	if w.step == StepSubmitted {
		return ErrAlreadySubmitted
	}
	if w.step != step {
		return fmt.Errorf("%w: on %s, not %s", ErrInvalidTransition, w.step, step)
	}
	return nil
}

func toggle(tags []string, tag string) []string {
	for i, t := range tags {
		if t == tag {
			return append(tags[:i:i], tags[i+1:]...)
		}
	}
	return append(tags, tag)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return append([]string{}, s...)
}
