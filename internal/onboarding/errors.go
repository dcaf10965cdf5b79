package onboarding

import "errors"

// Domain-specific errors for the onboarding package.
var (
	ErrUnauthenticated   = errors.New("sign in to complete your profile")
	ErrAlreadySubmitted  = errors.New("onboarding already submitted")
	ErrInvalidTransition = errors.New("invalid onboarding step")
	ErrUnknownOption     = errors.New("unknown option")
	ErrUnknownField      = errors.New("unknown selection field")
	ErrSavePreferences   = errors.New("failed to save preferences")
	ErrNoSession         = errors.New("session id is required")
)
