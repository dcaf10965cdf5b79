package middleware

import (
	"github.com/gin-gonic/gin"

	"holistic-daily/pkg/session"
)

// Session reads the X-Session-ID header, issuing a new one when absent,
// and echoes it back so clients can keep it.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			id = session.NewID()
		}
		c.Header(SessionHeader, id)

		sc := GetScope(c)
		sc.SessionID = id
		SetScope(c, sc)
		c.Next()
	}
}
