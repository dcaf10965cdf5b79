package dailytask

import "holistic-daily/internal/model"

type SetCompletionInput struct {
	TaskID    string
	Completed bool
}

type SetFeedbackInput struct {
	TaskID   string
	Feedback string
}

type ByDateOutput struct {
	Date  string
	Tasks []model.Task
}

// ShareOutput is the text and deep links a client offers in the share dialog.
type ShareOutput struct {
	TaskID    string
	Text      string
	SMSLink   string
	EmailLink string
	URL       string
}
