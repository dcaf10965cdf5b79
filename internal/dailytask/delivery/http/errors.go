package http

import (
	"net/http"

	"holistic-daily/internal/dailytask"
	pkgErrors "holistic-daily/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case dailytask.ErrLoadTasks:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to load today's tasks. Please try again.")
	case dailytask.ErrUpdateTask:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to update task. Please try again.")
	case dailytask.ErrLoadPrefs:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to load preferences. Please try again.")
	case dailytask.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case dailytask.ErrInvalidDate:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid date")
	case dailytask.ErrEmptyTaskID:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	case dailytask.ErrUnauthenticated:
		return pkgErrors.ErrUnauthorized
	default:
		return pkgErrors.ErrInternalServerError
	}
}
