package model

import "time"

// Category is the fixed three-way classification of a daily task.
type Category string

const (
	CategoryBelly Category = "belly" // nourishment
	CategoryBody  Category = "body"  // movement
	CategoryBrain Category = "brain" // mental stimulation
)

// Categories lists every category in display order.
var Categories = []Category{CategoryBelly, CategoryBody, CategoryBrain}

// IsValid reports whether c is one of the three known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryBelly, CategoryBody, CategoryBrain:
		return true
	}
	return false
}

// Rank returns the display position of c, or len(Categories) when unknown.
func (c Category) Rank() int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}
	return len(Categories)
}

// Label returns the user-facing name of c.
func (c Category) Label() string {
	switch c {
	case CategoryBelly:
		return "Nourish your belly"
	case CategoryBody:
		return "Move your body"
	case CategoryBrain:
		return "Stimulate your brain"
	default:
		return "Task"
	}
}

// DateLayout is the calendar-day format used for Task.Date.
const DateLayout = "2006-01-02"

// Task is one of the three daily wellness actions assigned to a user for a date.
type Task struct {
	ID          string
	Title       string
	Description string
	Category    Category
	Completed   bool
	Feedback    string
	Date        string // YYYY-MM-DD
	UserID      string
	ImageURL    string
	LinkURL     string
	CreatedAt   time.Time
}
