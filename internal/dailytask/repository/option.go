package repository

// FetchTasksOptions selects one user's tasks for one calendar day.
type FetchTasksOptions struct {
	UserID string
	Date   string // YYYY-MM-DD
}

// SetCompletionOptions updates a task's completion flag.
// A non-empty UserID restricts the update to that owner.
type SetCompletionOptions struct {
	TaskID    string
	UserID    string
	Completed bool
}

// SetFeedbackOptions attaches feedback text to a task.
// A non-empty UserID restricts the update to that owner.
type SetFeedbackOptions struct {
	TaskID   string
	UserID   string
	Feedback string
}
