package postgre

import (
	"context"
	"database/sql"
	"time"

	repo "holistic-daily/internal/dailytask/repository"
	"holistic-daily/internal/model"
)

const taskColumns = `id, title, description, category, completed, COALESCE(feedback, ''),
	to_char(date, 'YYYY-MM-DD'), user_id, COALESCE(image_url, ''), COALESCE(link_url, ''), created_at`

// FetchTasksForDate returns the user's tasks for a day in category order.
func (r *implRepository) FetchTasksForDate(ctx context.Context, opt repo.FetchTasksOptions) ([]model.Task, error) {
	const query = `SELECT ` + taskColumns + ` FROM tasks
		WHERE user_id = $1 AND date = $2
		ORDER BY CASE category WHEN 'belly' THEN 0 WHEN 'body' THEN 1 WHEN 'brain' THEN 2 ELSE 3 END`

	rows, err := r.db.QueryContext(ctx, query, opt.UserID, opt.Date)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FetchTasksForDate"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var (
			t   model.Task
			cat string
		)
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &cat, &t.Completed, &t.Feedback,
			&t.Date, &t.UserID, &t.ImageURL, &t.LinkURL, &t.CreatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("FetchTasksForDate"), err)
			return nil, repo.ErrFailedToList
		}
		t.Category = model.Category(cat)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("FetchTasksForDate"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// CreateTasks inserts a generated day. Rows that already exist are left untouched.
func (r *implRepository) CreateTasks(ctx context.Context, tasks []model.Task) error {
	const query = `
		INSERT INTO tasks (id, title, description, category, completed, feedback, date, user_id, image_url, link_url, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, NULLIF($9, ''), NULLIF($10, ''), $11)
		ON CONFLICT DO NOTHING`

	for _, t := range tasks {
		createdAt := t.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		_, err := r.db.ExecContext(ctx, query, t.ID, t.Title, t.Description, string(t.Category), t.Completed,
			t.Feedback, t.Date, t.UserID, t.ImageURL, t.LinkURL, createdAt)
		if err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTasks"), err)
			return repo.ErrFailedToInsert
		}
	}
	return nil
}

func (r *implRepository) SetTaskCompletion(ctx context.Context, opt repo.SetCompletionOptions) error {
	where, args := buildTaskFilter(opt.TaskID, opt.UserID, 2)
	res, err := r.db.ExecContext(ctx, "UPDATE tasks SET completed = $1 WHERE "+where, append([]any{opt.Completed}, args...)...)
	return r.checkUpdate(ctx, "SetTaskCompletion", res, err)
}

func (r *implRepository) SetTaskFeedback(ctx context.Context, opt repo.SetFeedbackOptions) error {
	where, args := buildTaskFilter(opt.TaskID, opt.UserID, 2)
	res, err := r.db.ExecContext(ctx, "UPDATE tasks SET feedback = $1 WHERE "+where, append([]any{opt.Feedback}, args...)...)
	return r.checkUpdate(ctx, "SetTaskFeedback", res, err)
}

func (r *implRepository) checkUpdate(ctx context.Context, method string, res sql.Result, err error) error {
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn(method), err)
		return repo.ErrFailedToUpdate
	}
	if n == 0 {
		return repo.ErrNotFound
	}
	return nil
}
