package http

import (
	"time"

	"holistic-daily/internal/dailytask"
	"holistic-daily/internal/model"
	pkgErrors "holistic-daily/pkg/errors"
)

// --- Request DTOs ---

type byDateReq struct {
	Date string `form:"date"`
}

type setCompletionReq struct {
	ID        string `json:"-"` // populated from URI param
	Completed *bool  `json:"completed" binding:"required"`
}

func (r setCompletionReq) validate() error {
	if r.ID == "" {
		return pkgErrors.NewHTTPError(400, "id is required")
	}
	return nil
}

func (r setCompletionReq) toInput() dailytask.SetCompletionInput {
	return dailytask.SetCompletionInput{TaskID: r.ID, Completed: *r.Completed}
}

type setFeedbackReq struct {
	ID       string `json:"-"`
	Feedback string `json:"feedback" binding:"required,max=2000"`
}

func (r setFeedbackReq) validate() error {
	if r.ID == "" {
		return pkgErrors.NewHTTPError(400, "id is required")
	}
	return nil
}

func (r setFeedbackReq) toInput() dailytask.SetFeedbackInput {
	return dailytask.SetFeedbackInput{TaskID: r.ID, Feedback: r.Feedback}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Label       string `json:"label"`
	Completed   bool   `json:"completed"`
	Feedback    string `json:"feedback,omitempty"`
	Date        string `json:"date"`
	UserID      string `json:"user_id"`
	ImageURL    string `json:"image_url,omitempty"`
	LinkURL     string `json:"link_url,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    string(t.Category),
		Label:       t.Category.Label(),
		Completed:   t.Completed,
		Feedback:    t.Feedback,
		Date:        t.Date,
		UserID:      t.UserID,
		ImageURL:    t.ImageURL,
		LinkURL:     t.LinkURL,
	}
}

type tasksResp struct {
	Date           string     `json:"date,omitempty"`
	Tasks          []taskResp `json:"tasks"`
	CompletedCount int        `json:"completed_count"`
}

func (h *handler) newTasksResp(date string, tasks []model.Task) tasksResp {
	resp := tasksResp{Date: date, Tasks: make([]taskResp, 0, len(tasks))}
	for _, t := range tasks {
		if resp.Date == "" {
			resp.Date = t.Date
		}
		if t.Completed {
			resp.CompletedCount++
		}
		resp.Tasks = append(resp.Tasks, newTaskResp(t))
	}
	return resp
}

type shareResp struct {
	TaskID    string `json:"task_id"`
	Text      string `json:"text"`
	SMSLink   string `json:"sms_link"`
	EmailLink string `json:"email_link"`
	URL       string `json:"url"`
}

func (h *handler) newShareResp(out dailytask.ShareOutput) shareResp {
	return shareResp{
		TaskID:    out.TaskID,
		Text:      out.Text,
		SMSLink:   out.SMSLink,
		EmailLink: out.EmailLink,
		URL:       out.URL,
	}
}

type preferencesItem struct {
	ID                 string    `json:"id"`
	DietaryPreferences []string  `json:"dietary_preferences"`
	FitnessLevel       string    `json:"fitness_level"`
	ContentInterests   []string  `json:"content_interests"`
	CreatedAt          time.Time `json:"created_at"`
}

type preferencesResp struct {
	Preferences *preferencesItem `json:"preferences"`
}

func (h *handler) newPreferencesResp(p model.UserPreferences) preferencesResp {
	if p.ID == "" {
		return preferencesResp{}
	}
	return preferencesResp{Preferences: &preferencesItem{
		ID:                 p.ID,
		DietaryPreferences: p.DietaryPreferences,
		FitnessLevel:       string(p.FitnessLevel),
		ContentInterests:   p.ContentInterests,
		CreatedAt:          p.CreatedAt,
	}}
}
