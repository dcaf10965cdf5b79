package board

import (
	"context"
	"fmt"
	"sync"

	"holistic-daily/internal/model"
)

// Store persists the outcome of card transitions.
type Store interface {
	SetCompletion(ctx context.Context, taskID string, completed bool) error
	SetFeedback(ctx context.Context, taskID, feedback string) error
}

// Card is one task plus its presentation state.
type Card struct {
	Task  model.Task
	State CardState
}

// Board holds the cards of one user's day. At most one card is expanded.
// It is safe for concurrent use.
type Board struct {
	mu       sync.Mutex
	date     string
	cards    []*Card
	expanded string
}

// New builds a board from stored tasks. Completed tasks start shareable.
func New(date string, tasks []model.Task) *Board {
	b := &Board{date: date, cards: make([]*Card, 0, len(tasks))}
	for _, t := range tasks {
		state := StateIncomplete
		if t.Completed {
			state = StateShareable
		}
		b.cards = append(b.cards, &Card{Task: t, State: state})
	}
	return b
}

// Date returns the calendar day the board was built for.
func (b *Board) Date() string {
	return b.date
}

// Snapshot is a copy of the board safe to render.
type Snapshot struct {
	Date           string
	Cards          []Card
	Expanded       string
	CompletedCount int
}

func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := Snapshot{Date: b.date, Expanded: b.expanded, Cards: make([]Card, 0, len(b.cards))}
	for _, c := range b.cards {
		s.Cards = append(s.Cards, *c)
		if c.State.Completed() {
			s.CompletedCount++
		}
	}
	return s
}

func (b *Board) CompletedCount() int {
	return b.Snapshot().CompletedCount
}

// ToggleExpand expands a card, collapsing whichever was open. Toggling the open card collapses it.
func (b *Board) ToggleExpand(taskID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.card(taskID); err != nil {
		return err
	}
	if b.expanded == taskID {
		b.expanded = ""
	} else {
		b.expanded = taskID
	}
	return nil
}

// ToggleCompletion sets the flag locally, persists it and rolls back once if the store fails.
// Completing opens the feedback prompt. Uncompleting returns the card to incomplete and keeps feedback.
func (b *Board) ToggleCompletion(ctx context.Context, store Store, taskID string, completed bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, err := b.card(taskID)
	if err != nil {
		return err
	}

	prevState, prevFlag := c.State, c.Task.Completed
	c.Task.Completed = completed
	if completed {
		c.State = StateAwaitingFeedback
	} else {
		c.State = StateIncomplete
	}

	if err := store.SetCompletion(ctx, taskID, completed); err != nil {
		c.State, c.Task.Completed = prevState, prevFlag
		return err
	}
	return nil
}

// SubmitFeedback persists the composed feedback and makes the card shareable.
// On failure the prompt stays open.
func (b *Board) SubmitFeedback(ctx context.Context, store Store, taskID, feeling, thoughts string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, err := b.card(taskID)
	if err != nil {
		return err
	}
	if c.State != StateAwaitingFeedback {
		return fmt.Errorf("%w: submit feedback from %s", ErrInvalidTransition, c.State)
	}
	if !validFeeling(feeling) {
		return ErrInvalidFeeling
	}

	text := ComposeFeedback(feeling, thoughts)
	if err := store.SetFeedback(ctx, taskID, text); err != nil {
		return err
	}
	c.Task.Feedback = text
	c.State = StateShareable
	return nil
}

// SkipFeedback closes the prompt without saving anything.
func (b *Board) SkipFeedback(taskID string) error {
	return b.transition(taskID, StateAwaitingFeedback, StateShareable)
}

func (b *Board) OpenShare(taskID string) error {
	return b.transition(taskID, StateShareable, StateSharing)
}

func (b *Board) CloseShare(taskID string) error {
	return b.transition(taskID, StateSharing, StateShareable)
}

func (b *Board) transition(taskID string, from, to CardState) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, err := b.card(taskID)
	if err != nil {
		return err
	}
	if c.State != from {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, c.State, to)
	}
	c.State = to
	return nil
}

func (b *Board) card(taskID string) (*Card, error) {
	for _, c := range b.cards {
		if c.Task.ID == taskID {
			return c, nil
		}
	}
	return nil, ErrCardNotFound
}

// ComposeFeedback joins the chosen feeling and free-text thoughts the way the prompt stores them.
func ComposeFeedback(feeling, thoughts string) string {
	if feeling == "" {
		return thoughts
	}
	if thoughts == "" {
		return "Feeling: " + feeling
	}
	return "Feeling: " + feeling + " - " + thoughts
}
