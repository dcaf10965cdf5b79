package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that knows which HTTP status it should be reported with.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
	Data       map[string]interface{}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError whose business code equals the status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: statusCode, Message: message}
}

// WithData attaches extra payload fields to the error response.
func (e *HTTPError) WithData(data map[string]interface{}) *HTTPError {
	cp := *e
	cp.Data = data
	return &cp
}

// AsHTTPError unwraps err into an HTTPError when possible.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)
