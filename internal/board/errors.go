package board

import "errors"

var (
	ErrCardNotFound      = errors.New("card not found")
	ErrInvalidTransition = errors.New("invalid card transition")
	ErrInvalidFeeling    = errors.New("invalid feeling")
	ErrUnknownEvent      = errors.New("unknown board event")
)
