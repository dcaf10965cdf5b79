package http

import (
	"errors"
	"net/http"

	"holistic-daily/internal/onboarding"
	pkgErrors "holistic-daily/pkg/errors"
)

// LoginPath is where unauthenticated visitors are sent to finish onboarding.
const LoginPath = "/login"

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, onboarding.ErrUnauthenticated):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, err.Error()).
			WithData(map[string]interface{}{"redirect": LoginPath})
	case errors.Is(err, onboarding.ErrAlreadySubmitted), errors.Is(err, onboarding.ErrInvalidTransition):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, onboarding.ErrUnknownOption), errors.Is(err, onboarding.ErrUnknownField),
		errors.Is(err, onboarding.ErrNoSession):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, onboarding.ErrSavePreferences):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to save your preferences. Please try again.")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
