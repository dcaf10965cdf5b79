package supabase

import (
	"context"
	"fmt"
	"sort"

	"github.com/supabase-community/postgrest-go"

	repo "holistic-daily/internal/dailytask/repository"
	"holistic-daily/internal/model"
	pkgLog "holistic-daily/pkg/log"
)

type implRepository struct {
	client *postgrest.Client
	l      pkgLog.Logger
}

// New creates a Supabase-backed task store.
func New(client *postgrest.Client, l pkgLog.Logger) repo.Repository {
	return &implRepository{client: client, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("dailytask/repository/supabase.%s", method)
}

func (r *implRepository) FetchTasksForDate(ctx context.Context, opt repo.FetchTasksOptions) ([]model.Task, error) {
	var rows []taskRow
	err := ctx.Err()
	if err == nil {
		_, err = r.client.From(tableTasks).
			Select("*", "", false).
			Eq("user_id", opt.UserID).
			Eq("date", opt.Date).
			ExecuteTo(&rows)
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FetchTasksForDate"), err)
		return nil, repo.ErrFailedToList
	}

	tasks := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, row.toModel())
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Category.Rank() < tasks[j].Category.Rank()
	})
	return tasks, nil
}

// CreateTasks inserts the day's tasks, skipping any that already exist. A
// conflicting batch is rolled back by Postgres, so it is retried row by row.
func (r *implRepository) CreateTasks(ctx context.Context, tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	rows := make([]taskRow, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, toTaskRow(t))
	}

	err := r.insert(ctx, tableTasks, rows)
	if isUniqueViolation(err) {
		err = nil
		for _, row := range rows {
			if rowErr := r.insert(ctx, tableTasks, []taskRow{row}); rowErr != nil && !isUniqueViolation(rowErr) {
				err = rowErr
				break
			}
		}
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTasks"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

func (r *implRepository) SetTaskCompletion(ctx context.Context, opt repo.SetCompletionOptions) error {
	return r.update(ctx, "SetTaskCompletion", opt.TaskID, opt.UserID, map[string]any{"completed": opt.Completed})
}

func (r *implRepository) SetTaskFeedback(ctx context.Context, opt repo.SetFeedbackOptions) error {
	return r.update(ctx, "SetTaskFeedback", opt.TaskID, opt.UserID, map[string]any{"feedback": opt.Feedback})
}

func (r *implRepository) update(ctx context.Context, method, taskID, userID string, patch map[string]any) error {
	var matched []struct {
		ID string `json:"id"`
	}
	err := ctx.Err()
	if err == nil {
		q := r.client.From(tableTasks).Update(patch, "representation", "").Eq("id", taskID)
		if userID != "" {
			q = q.Eq("user_id", userID)
		}
		_, err = q.ExecuteTo(&matched)
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return repo.ErrFailedToUpdate
	}
	if len(matched) == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *implRepository) insert(ctx context.Context, table string, rows any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, _, err := r.client.From(table).Insert(rows, false, "", "minimal", "").Execute()
	return err
}
