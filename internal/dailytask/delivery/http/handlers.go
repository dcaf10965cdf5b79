package http

import (
	"github.com/gin-gonic/gin"

	"holistic-daily/internal/middleware"
	"holistic-daily/pkg/response"
)

// Today godoc
// @Summary     Today's tasks
// @Description Returns the caller's three tasks for today, generating them on first access.
// @Tags        Tasks
// @Produce     json
// @Security    Bearer
// @Success     200 {object} tasksResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Failed to load today's tasks"
// @Router      /api/v1/tasks/today [GET]
func (h *handler) Today(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	tasks, err := h.uc.Today(ctx, sc)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTasksResp("", tasks))
}

// ByDate godoc
// @Summary     Tasks for a day
// @Description Returns the caller's tasks for a given day without generating new ones.
// @Tags        Tasks
// @Produce     json
// @Security    Bearer
// @Param       date query string false "today, yesterday, tomorrow, in N days, N days ago or YYYY-MM-DD"
// @Success     200 {object} tasksResp
// @Failure     400 {object} response.Resp "Invalid date"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks [GET]
func (h *handler) ByDate(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req := h.processByDateReq(c)
	out, err := h.uc.ByDate(ctx, sc, req.Date)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTasksResp(out.Date, out.Tasks))
}

// SetCompletion godoc
// @Summary     Mark a task complete or incomplete
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id   path string           true "Task ID"
// @Param       body body setCompletionReq true "Completion flag"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Failed to update task"
// @Router      /api/v1/tasks/{id}/completion [PATCH]
func (h *handler) SetCompletion(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetCompletionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.SetCompletion(ctx, middleware.GetScope(c), req.toInput()); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// SetFeedback godoc
// @Summary     Attach feedback to a task
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id   path string         true "Task ID"
// @Param       body body setFeedbackReq true "Feedback text"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/feedback [PUT]
func (h *handler) SetFeedback(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetFeedbackReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.SetFeedback(ctx, middleware.GetScope(c), req.toInput()); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Share godoc
// @Summary     Share payload for a task
// @Description Returns the share text plus SMS, email and web links.
// @Tags        Tasks
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Task ID"
// @Success     200 {object} shareResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/share [GET]
func (h *handler) Share(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Share(ctx, middleware.GetScope(c), c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newShareResp(out))
}

// Preferences godoc
// @Summary     Onboarding preferences
// @Description Returns the caller's onboarding selections; preferences is null when none were saved.
// @Tags        Preferences
// @Produce     json
// @Security    Bearer
// @Success     200 {object} preferencesResp
// @Router      /api/v1/preferences [GET]
func (h *handler) Preferences(c *gin.Context) {
	ctx := c.Request.Context()

	prefs, err := h.uc.Preferences(ctx, middleware.GetScope(c))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newPreferencesResp(prefs))
}
