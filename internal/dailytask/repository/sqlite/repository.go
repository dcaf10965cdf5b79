package sqlite

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	repo "holistic-daily/internal/dailytask/repository"
	"holistic-daily/internal/model"
	pkgLog "holistic-daily/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  pkgLog.Logger
}

// New creates a gorm-backed task store.
func New(db *gorm.DB, l pkgLog.Logger) repo.Repository {
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("dailytask/repository/sqlite.%s", method)
}

func (r *implRepository) FetchTasksForDate(ctx context.Context, opt repo.FetchTasksOptions) ([]model.Task, error) {
	var records []taskRecord
	if err := r.db.WithContext(ctx).Where("user_id = ? AND date = ?", opt.UserID, opt.Date).Find(&records).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FetchTasksForDate"), err)
		return nil, repo.ErrFailedToList
	}

	tasks := make([]model.Task, 0, len(records))
	for _, rec := range records {
		tasks = append(tasks, rec.toModel())
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Category.Rank() < tasks[j].Category.Rank()
	})
	return tasks, nil
}

func (r *implRepository) CreateTasks(ctx context.Context, tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, fromTask(t))
	}

	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&records).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTasks"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

func (r *implRepository) SetTaskCompletion(ctx context.Context, opt repo.SetCompletionOptions) error {
	return r.update(ctx, "SetTaskCompletion", opt.TaskID, opt.UserID, "completed", opt.Completed)
}

func (r *implRepository) SetTaskFeedback(ctx context.Context, opt repo.SetFeedbackOptions) error {
	return r.update(ctx, "SetTaskFeedback", opt.TaskID, opt.UserID, "feedback", opt.Feedback)
}

func (r *implRepository) update(ctx context.Context, method, taskID, userID, column string, value any) error {
	q := r.db.WithContext(ctx).Model(&taskRecord{}).Where("id = ?", taskID)
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}

	res := q.Update(column, value)
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), res.Error)
		return repo.ErrFailedToUpdate
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *implRepository) FetchPreferences(ctx context.Context, userID string) (model.UserPreferences, error) {
	var rec preferencesRecord
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.UserPreferences{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FetchPreferences"), err)
		return model.UserPreferences{}, repo.ErrFailedToGet
	}
	return rec.toModel(), nil
}

func (r *implRepository) SavePreferences(ctx context.Context, prefs model.UserPreferences) error {
	rec := fromPreferences(prefs)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SavePreferences"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}
