package http

import (
	"github.com/gin-gonic/gin"

	"holistic-daily/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	b := rg.Group("/board", mw.Auth())
	{
		b.GET("", h.View)
		b.POST("/events", h.Dispatch)
	}
}
