package support

import "errors"

var (
	ErrEmptyQuestion = errors.New("question is required")
	ErrNoSession     = errors.New("session id is required")
)
