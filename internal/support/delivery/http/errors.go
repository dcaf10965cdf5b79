package http

import (
	"errors"
	"net/http"

	"holistic-daily/internal/support"
	pkgErrors "holistic-daily/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, support.ErrEmptyQuestion), errors.Is(err, support.ErrNoSession):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
