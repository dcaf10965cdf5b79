package http

import (
	"github.com/gin-gonic/gin"

	"holistic-daily/internal/middleware"
)

// RegisterRoutes mounts onboarding. Anonymous visitors may walk the wizard; submitting requires sign-in.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	o := rg.Group("/onboarding", mw.OptionalAuth(), mw.Session())
	{
		o.POST("", h.Submit)
		o.GET("/wizard", h.Wizard)
		o.PUT("/wizard/selection", h.Select)
		o.POST("/wizard/next", h.Next)
		o.POST("/wizard/back", h.Back)
	}
}
