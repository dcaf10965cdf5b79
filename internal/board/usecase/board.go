package usecase

import (
	"context"

	"holistic-daily/internal/board"
	"holistic-daily/internal/dailytask"
	"holistic-daily/internal/model"
	"holistic-daily/internal/share"
)

func (uc *implUseCase) View(ctx context.Context, sc model.Scope) (board.View, error) {
	b, err := uc.boardFor(ctx, sc)
	if err != nil {
		return board.View{}, err
	}
	return uc.render(b), nil
}

func (uc *implUseCase) Dispatch(ctx context.Context, sc model.Scope, ev board.Event) (board.View, error) {
	b, err := uc.boardFor(ctx, sc)
	if err != nil {
		return board.View{}, err
	}

	store := scopedStore{tasks: uc.tasks, sc: sc}
	switch ev.Type {
	case board.EventToggleExpand:
		err = b.ToggleExpand(ev.TaskID)
	case board.EventComplete:
		err = b.ToggleCompletion(ctx, store, ev.TaskID, true)
	case board.EventUncomplete:
		err = b.ToggleCompletion(ctx, store, ev.TaskID, false)
	case board.EventSubmitFeedback:
		err = b.SubmitFeedback(ctx, store, ev.TaskID, ev.Feeling, ev.Thoughts)
	case board.EventSkipFeedback:
		err = b.SkipFeedback(ev.TaskID)
	case board.EventOpenShare:
		err = b.OpenShare(ev.TaskID)
	case board.EventCloseShare:
		err = b.CloseShare(ev.TaskID)
	default:
		err = board.ErrUnknownEvent
	}
	if err != nil {
		uc.l.Warnf(ctx, "uc.Dispatch %s %s: %v", ev.Type, ev.TaskID, err)
		return uc.render(b), err
	}
	return uc.render(b), nil
}

// boardFor returns the user's board for today, rebuilding it when missing or from a previous day.
func (uc *implUseCase) boardFor(ctx context.Context, sc model.Scope) (*board.Board, error) {
	if !sc.Authenticated() {
		return nil, dailytask.ErrUnauthenticated
	}

	today := uc.calendar.Today()
	if b, ok := uc.sessions.Get(sc.UserID); ok && b.Date() == today {
		return b, nil
	}

	tasks, err := uc.tasks.Today(ctx, sc)
	if err != nil {
		return nil, err
	}
	b := board.New(today, tasks)
	uc.sessions.Put(sc.UserID, b)
	return b, nil
}

func (uc *implUseCase) render(b *board.Board) board.View {
	v := board.View{Snapshot: b.Snapshot()}
	for _, c := range v.Cards {
		if c.State == board.StateSharing {
			v.Share = &board.SharePrompt{
				TaskID:  c.Task.ID,
				Payload: share.Build(uc.shareOrigin, c.Task.Title, c.Task.Feedback),
			}
			break
		}
	}
	return v
}

// scopedStore binds the caller to the task use case so the board stays identity-agnostic.
type scopedStore struct {
	tasks dailytask.UseCase
	sc    model.Scope
}

func (s scopedStore) SetCompletion(ctx context.Context, taskID string, completed bool) error {
	return s.tasks.SetCompletion(ctx, s.sc, dailytask.SetCompletionInput{TaskID: taskID, Completed: completed})
}

func (s scopedStore) SetFeedback(ctx context.Context, taskID, feedback string) error {
	return s.tasks.SetFeedback(ctx, s.sc, dailytask.SetFeedbackInput{TaskID: taskID, Feedback: feedback})
}
