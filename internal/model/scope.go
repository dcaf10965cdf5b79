package model

// Scope carries the identity of the caller through use cases.
type Scope struct {
	UserID    string
	SessionID string
}

// Authenticated reports whether the scope carries a signed-in user.
func (s Scope) Authenticated() bool {
	return s.UserID != ""
}
