package middleware

import (
	"github.com/gin-gonic/gin"

	"holistic-daily/internal/model"
)

const (
	scopeKey = "scope"

	// SessionHeader carries the per-session key for wizard and chat state.
	SessionHeader = "X-Session-ID"
)

// GetScope returns the caller identity set by Auth, OptionalAuth and Session.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}

// SetScope stores the caller identity on the request.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}
