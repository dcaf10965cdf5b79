package http

import (
	"holistic-daily/internal/board"
)

type eventReq struct {
	Type     string `json:"type"     binding:"required"`
	TaskID   string `json:"task_id"  binding:"required"`
	Feeling  string `json:"feeling"`
	Thoughts string `json:"thoughts" binding:"max=2000"`
}

func (r eventReq) toEvent() board.Event {
	return board.Event{
		Type:     board.EventType(r.Type),
		TaskID:   r.TaskID,
		Feeling:  r.Feeling,
		Thoughts: r.Thoughts,
	}
}

type cardResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Label       string `json:"label"`
	Completed   bool   `json:"completed"`
	Feedback    string `json:"feedback,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	LinkURL     string `json:"link_url,omitempty"`
	State       string `json:"state"`
	Expanded    bool   `json:"expanded"`
}

type shareResp struct {
	TaskID    string `json:"task_id"`
	Text      string `json:"text"`
	SMSLink   string `json:"sms_link"`
	EmailLink string `json:"email_link"`
	URL       string `json:"url"`
}

type viewResp struct {
	Date           string     `json:"date"`
	Cards          []cardResp `json:"cards"`
	Expanded       string     `json:"expanded,omitempty"`
	CompletedCount int        `json:"completed_count"`
	Feelings       []string   `json:"feelings"`
	Share          *shareResp `json:"share,omitempty"`
}

func newViewResp(v board.View) viewResp {
	resp := viewResp{
		Date:           v.Date,
		Cards:          make([]cardResp, 0, len(v.Cards)),
		Expanded:       v.Expanded,
		CompletedCount: v.CompletedCount,
		Feelings:       board.Feelings,
	}
	for _, c := range v.Cards {
		resp.Cards = append(resp.Cards, cardResp{
			ID:          c.Task.ID,
			Title:       c.Task.Title,
			Description: c.Task.Description,
			Category:    string(c.Task.Category),
			Label:       c.Task.Category.Label(),
			Completed:   c.Task.Completed,
			Feedback:    c.Task.Feedback,
			ImageURL:    c.Task.ImageURL,
			LinkURL:     c.Task.LinkURL,
			State:       c.State.String(),
			Expanded:    c.Task.ID == v.Expanded,
		})
	}
	if v.Share != nil {
		resp.Share = &shareResp{
			TaskID:    v.Share.TaskID,
			Text:      v.Share.Text,
			SMSLink:   v.Share.SMSLink,
			EmailLink: v.Share.EmailLink,
			URL:       v.Share.URL,
		}
	}
	return resp
}
