package http

import (
	"holistic-daily/internal/dailytask"
	"holistic-daily/pkg/log"
)

type handler struct {
	l  log.Logger
	uc dailytask.UseCase
}

// New creates a new HTTP handler for the dailytask domain.
func New(l log.Logger, uc dailytask.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
