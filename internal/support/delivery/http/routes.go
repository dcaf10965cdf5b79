package http

import (
	"github.com/gin-gonic/gin"

	"holistic-daily/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	s := rg.Group("/support", mw.RateLimit(), mw.OptionalAuth(), mw.Session())
	{
		s.POST("/ask", h.Ask)
		s.GET("/transcript", h.Transcript)
	}
}
