package onboarding

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"holistic-daily/internal/model"
)

type submission struct {
	UserID    string
	Dietary   []string
	Fitness   model.FitnessLevel
	Interests []string
}

type mockSubmitter struct {
	calls []submission
	err   error
}

func (m *mockSubmitter) SaveOnboardingPreferences(_ context.Context, userID string, dietary []string, fitness model.FitnessLevel, interests []string) error {
	m.calls = append(m.calls, submission{userID, dietary, fitness, interests})
	return m.err
}

func TestWizard_HappyPath(t *testing.T) {
	ctx := context.Background()
	s := &mockSubmitter{}
	w := NewWizard()

	if w.State().Fitness != model.FitnessBeginner {
		t.Fatalf("fitness should default to beginner")
	}

	mustOK(t, w.ToggleDiet("vegan"))
	mustOK(t, w.Next(ctx, "alice", s))
	mustOK(t, w.Next(ctx, "alice", s))
	mustOK(t, w.ToggleInterest("science"))
	mustOK(t, w.Next(ctx, "alice", s))

	want := []submission{{"alice", []string{"vegan"}, model.FitnessBeginner, []string{"science"}}}
	if diff := cmp.Diff(want, s.calls); diff != "" {
		t.Errorf("submissions mismatch (-want +got):\n%s", diff)
	}
	if w.State().Step != StepSubmitted {
		t.Errorf("step = %s", w.State().Step)
	}

	// A submitted wizard refuses everything.
	for name, err := range map[string]error{
		"next": w.Next(ctx, "alice", s),
		"back": w.Back(),
		"diet": w.ToggleDiet("vegan"),
	} {
		if !errors.Is(err, ErrAlreadySubmitted) {
			t.Errorf("%s after submit: %v", name, err)
		}
	}
	if len(s.calls) != 1 {
		t.Errorf("expected exactly one submission, got %d", len(s.calls))
	}
}

func TestWizard_NoUserNeverSubmits(t *testing.T) {
	ctx := context.Background()
	s := &mockSubmitter{}
	w := NewWizard()
	mustOK(t, w.Next(ctx, "", s))
	mustOK(t, w.Next(ctx, "", s))

	if err := w.Next(ctx, "", s); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if len(s.calls) != 0 {
		t.Error("store must not be called without a user")
	}
	if w.State().Step != StepInterests {
		t.Errorf("step = %s", w.State().Step)
	}
}

func TestWizard_SubmitFailureStaysOnLastStep(t *testing.T) {
	ctx := context.Background()
	s := &mockSubmitter{err: errors.New("db down")}
	w := NewWizard()
	mustOK(t, w.Next(ctx, "alice", s))
	mustOK(t, w.Next(ctx, "alice", s))

	if err := w.Next(ctx, "alice", s); err == nil {
		t.Fatal("expected error")
	}
	if w.State().Step != StepInterests {
		t.Errorf("step = %s", w.State().Step)
	}

	s.err = nil
	mustOK(t, w.Next(ctx, "alice", s))
	if len(s.calls) != 2 {
		t.Errorf("manual retry should submit again, calls = %d", len(s.calls))
	}
}

func TestWizard_ToggleAndBack(t *testing.T) {
	w := NewWizard()

	mustOK(t, w.ToggleDiet("vegan"))
	mustOK(t, w.ToggleDiet("gluten-free"))
	mustOK(t, w.ToggleDiet("vegan"))
	if diff := cmp.Diff([]string{"gluten-free"}, w.State().Dietary); diff != "" {
		t.Errorf("dietary mismatch:\n%s", diff)
	}

	if err := w.ToggleDiet("carnivore"); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("expected ErrUnknownOption, got %v", err)
	}
	if err := w.SetFitness(model.FitnessAdvanced); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("fitness on diet step: %v", err)
	}
	if err := w.Back(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("back on first step: %v", err)
	}

	mustOK(t, w.Next(context.Background(), "", nil))
	mustOK(t, w.SetFitness(model.FitnessAdvanced))
	mustOK(t, w.Back())
	st := w.State()
	if st.Step != StepDiet || st.Fitness != model.FitnessAdvanced {
		t.Errorf("back should keep selections, got %+v", st)
	}
}

func mustOK(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
