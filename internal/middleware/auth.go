package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"holistic-daily/pkg/response"
)

// Auth rejects requests without a valid bearer token.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := m.verify(c)
		if !ok {
			response.Unauthorized(c)
			return
		}
		sc := GetScope(c)
		sc.UserID = userID
		SetScope(c, sc)
		c.Next()
	}
}

// OptionalAuth attaches the user when a valid token is present and lets anonymous requests through.
func (m Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := m.verify(c); ok {
			sc := GetScope(c)
			sc.UserID = userID
			SetScope(c, sc)
		}
		c.Next()
	}
}

func (m Middleware) verify(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}

	userID, err := m.jwtManager.Verify(token)
	if err != nil {
		m.l.Debugf(c.Request.Context(), "middleware.verify: %v", err)
		return "", false
	}
	return userID, true
}
