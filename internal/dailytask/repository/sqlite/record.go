package sqlite

import (
	"strings"
	"time"

	"holistic-daily/internal/model"
)

type taskRecord struct {
	ID          string `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Description string
	Category    string `gorm:"not null;uniqueIndex:idx_task_user_date_category"`
	Completed   bool   `gorm:"not null;default:false"`
	Feedback    string
	Date        string `gorm:"not null;uniqueIndex:idx_task_user_date_category"`
	UserID      string `gorm:"not null;uniqueIndex:idx_task_user_date_category"`
	ImageURL    string
	LinkURL     string
	CreatedAt   time.Time
}

func (taskRecord) TableName() string { return "tasks" }

// preferencesRecord stores tag sets as comma-joined text.
type preferencesRecord struct {
	ID                 string `gorm:"primaryKey"`
	UserID             string `gorm:"not null;index"`
	DietaryPreferences string
	FitnessLevel       string `gorm:"not null"`
	ContentInterests   string
	CreatedAt          time.Time
}

func (preferencesRecord) TableName() string { return "user_preferences" }

func fromTask(t model.Task) taskRecord {
	return taskRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    string(t.Category),
		Completed:   t.Completed,
		Feedback:    t.Feedback,
		Date:        t.Date,
		UserID:      t.UserID,
		ImageURL:    t.ImageURL,
		LinkURL:     t.LinkURL,
		CreatedAt:   t.CreatedAt,
	}
}

func (r taskRecord) toModel() model.Task {
	return model.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    model.Category(r.Category),
		Completed:   r.Completed,
		Feedback:    r.Feedback,
		Date:        r.Date,
		UserID:      r.UserID,
		ImageURL:    r.ImageURL,
		LinkURL:     r.LinkURL,
		CreatedAt:   r.CreatedAt,
	}
}

func fromPreferences(p model.UserPreferences) preferencesRecord {
	return preferencesRecord{
		ID:                 p.ID,
		UserID:             p.UserID,
		DietaryPreferences: strings.Join(p.DietaryPreferences, ","),
		FitnessLevel:       string(p.FitnessLevel),
		ContentInterests:   strings.Join(p.ContentInterests, ","),
		CreatedAt:          p.CreatedAt,
	}
}

func (r preferencesRecord) toModel() model.UserPreferences {
	return model.UserPreferences{
		ID:                 r.ID,
		UserID:             r.UserID,
		DietaryPreferences: splitTags(r.DietaryPreferences),
		FitnessLevel:       model.FitnessLevel(r.FitnessLevel),
		ContentInterests:   splitTags(r.ContentInterests),
		CreatedAt:          r.CreatedAt,
	}
}

func splitTags(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
