package http

import (
	"errors"
	"net/http"

	"holistic-daily/internal/board"
	"holistic-daily/internal/dailytask"
	pkgErrors "holistic-daily/pkg/errors"
)

// mapError translates board and task errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, board.ErrCardNotFound), errors.Is(err, dailytask.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, board.ErrInvalidTransition):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, board.ErrInvalidFeeling), errors.Is(err, board.ErrUnknownEvent):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, dailytask.ErrUnauthenticated):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, dailytask.ErrLoadTasks):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to load today's tasks. Please try again.")
	case errors.Is(err, dailytask.ErrUpdateTask):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to update task. Please try again.")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
