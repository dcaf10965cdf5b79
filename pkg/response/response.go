// Package response writes the JSON envelope every API route answers with.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "holistic-daily/pkg/errors"
)

const (
	MessageSuccess = "Success"

	// codeBadRequest is used for errors that carry no HTTP mapping of their own.
	codeBadRequest = 1
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

// OK sends 200 with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{Message: MessageSuccess, Data: data})
}

// Error sends an error response. An HTTPError keeps its own status, code and
// data; anything else is reported as 400. Data is never null so clients can
// read fields such as "redirect" without a nil check.
func Error(c *gin.Context, err error, data map[string]any) {
	status, code, msg := http.StatusBadRequest, codeBadRequest, err.Error()
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		status, code, msg = httpErr.StatusCode, httpErr.Code, httpErr.Message
		if data == nil {
			data = httpErr.Data
		}
	}
	if data == nil {
		data = map[string]any{}
	}
	c.JSON(status, Resp{ErrorCode: code, Message: msg, Data: data})
}

// Unauthorized aborts with 401.
func Unauthorized(c *gin.Context) {
	abort(c, http.StatusUnauthorized, "Unauthorized")
}

// TooManyRequests aborts with 429.
func TooManyRequests(c *gin.Context) {
	abort(c, http.StatusTooManyRequests, "Too many requests")
}

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Resp{ErrorCode: status, Message: msg})
}
