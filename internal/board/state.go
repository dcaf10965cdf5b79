package board

// CardState is where a task card sits in the complete, feedback, share flow.
type CardState int

const (
	StateIncomplete CardState = iota
	StateAwaitingFeedback
	StateShareable
	StateSharing
)

func (s CardState) String() string {
	switch s {
	case StateIncomplete:
		return "incomplete"
	case StateAwaitingFeedback:
		return "awaiting_feedback"
	case StateShareable:
		return "shareable"
	case StateSharing:
		return "sharing"
	default:
		return "unknown"
	}
}

// Completed reports whether the card shows as done.
func (s CardState) Completed() bool {
	return s != StateIncomplete
}

// Feelings are the choices offered by the feedback prompt.
var Feelings = []string{"Energized", "Accomplished", "Challenged"}

func validFeeling(f string) bool {
	if f == "" {
		return true
	}
	for _, v := range Feelings {
		if v == f {
			return true
		}
	}
	return false
}
