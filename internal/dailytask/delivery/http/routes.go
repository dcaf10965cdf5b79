package http

import (
	"github.com/gin-gonic/gin"

	"holistic-daily/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// All routes require a signed-in user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.GET("/today", h.Today)
		tasks.GET("", h.ByDate)
		tasks.PATCH("/:id/completion", h.SetCompletion)
		tasks.PUT("/:id/feedback", h.SetFeedback)
		tasks.GET("/:id/share", h.Share)
	}

	rg.GET("/preferences", mw.Auth(), h.Preferences)
}
