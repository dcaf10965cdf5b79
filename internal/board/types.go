package board

import "holistic-daily/internal/share"

type EventType string

const (
	EventToggleExpand   EventType = "toggle_expand"
	EventComplete       EventType = "complete"
	EventUncomplete     EventType = "uncomplete"
	EventSubmitFeedback EventType = "submit_feedback"
	EventSkipFeedback   EventType = "skip_feedback"
	EventOpenShare      EventType = "open_share"
	EventCloseShare     EventType = "close_share"
)

// Event is a user action on one card.
type Event struct {
	Type     EventType
	TaskID   string
	Feeling  string
	Thoughts string
}

// View is the rendered board. Share is set for the card whose share dialog is open.
type View struct {
	Snapshot
	Share *SharePrompt
}

type SharePrompt struct {
	TaskID string
	share.Payload
}
