package supabase

import (
	"time"

	"holistic-daily/internal/model"
)

const (
	tableTasks       = "tasks"
	tablePreferences = "user_preferences"
)

// taskRow is the tasks table as PostgREST serialises it.
type taskRow struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Completed   bool      `json:"completed"`
	Feedback    *string   `json:"feedback"`
	Date        string    `json:"date"`
	UserID      string    `json:"user_id"`
	ImageURL    *string   `json:"image_url"`
	LinkURL     *string   `json:"link_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type preferencesRow struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	DietaryPreferences []string  `json:"dietary_preferences"`
	FitnessLevel       string    `json:"fitness_level"`
	ContentInterests   []string  `json:"content_interests"`
	CreatedAt          time.Time `json:"created_at"`
}

func toTaskRow(t model.Task) taskRow {
	return taskRow{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    string(t.Category),
		Completed:   t.Completed,
		Feedback:    optional(t.Feedback),
		Date:        t.Date,
		UserID:      t.UserID,
		ImageURL:    optional(t.ImageURL),
		LinkURL:     optional(t.LinkURL),
		CreatedAt:   t.CreatedAt,
	}
}

func (r taskRow) toModel() model.Task {
	return model.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    model.Category(r.Category),
		Completed:   r.Completed,
		Feedback:    deref(r.Feedback),
		Date:        r.Date,
		UserID:      r.UserID,
		ImageURL:    deref(r.ImageURL),
		LinkURL:     deref(r.LinkURL),
		CreatedAt:   r.CreatedAt,
	}
}

func (r preferencesRow) toModel() model.UserPreferences {
	return model.UserPreferences{
		ID:                 r.ID,
		UserID:             r.UserID,
		DietaryPreferences: r.DietaryPreferences,
		FitnessLevel:       model.FitnessLevel(r.FitnessLevel),
		ContentInterests:   r.ContentInterests,
		CreatedAt:          r.CreatedAt,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
