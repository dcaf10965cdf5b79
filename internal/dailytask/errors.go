package dailytask

import "errors"

// Domain-specific errors for the dailytask package.
var (
	ErrLoadTasks       = errors.New("failed to load today's tasks")
	ErrTaskNotFound    = errors.New("task not found")
	ErrUpdateTask      = errors.New("failed to update task")
	ErrLoadPrefs       = errors.New("failed to load preferences")
	ErrInvalidDate     = errors.New("invalid date")
	ErrEmptyTaskID     = errors.New("task id is empty")
	ErrUnauthenticated = errors.New("user is not authenticated")
)
