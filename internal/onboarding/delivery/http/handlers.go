package http

import (
	"github.com/gin-gonic/gin"

	"holistic-daily/internal/middleware"
	"holistic-daily/pkg/response"
)

// Submit godoc
// @Summary     Submit onboarding
// @Description Saves dietary preferences, fitness level and content interests in one call.
// @Tags        Onboarding
// @Accept      json
// @Produce     json
// @Param       body body submitReq true "Selections"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Unknown option"
// @Failure     401 {object} response.Resp "Sign in required, data.redirect holds the login path"
// @Failure     500 {object} response.Resp "Store failure"
// @Router      /api/v1/onboarding [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Submit(ctx, middleware.GetScope(c), req.toInput()); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, map[string]interface{}{"submitted": true})
}

// Wizard godoc
// @Summary     Onboarding wizard state
// @Tags        Onboarding
// @Produce     json
// @Param       X-Session-ID header string false "Wizard session"
// @Success     200 {object} wizardResp
// @Router      /api/v1/onboarding/wizard [GET]
func (h *handler) Wizard(c *gin.Context) {
	st, err := h.uc.Wizard(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, newWizardResp(st))
}

// Select godoc
// @Summary     Change a selection
// @Description Toggles a dietary or interest tag, or sets the fitness level, on the current step.
// @Tags        Onboarding
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string false "Wizard session"
// @Param       body body selectReq true "Selection"
// @Success     200 {object} wizardResp
// @Failure     400 {object} response.Resp "Unknown option"
// @Failure     409 {object} response.Resp "Wrong step"
// @Router      /api/v1/onboarding/wizard/selection [PUT]
func (h *handler) Select(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSelectReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	st, err := h.uc.Select(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), map[string]interface{}{"wizard": newWizardResp(st)})
		return
	}
	response.OK(c, newWizardResp(st))
}

// Next godoc
// @Summary     Advance the wizard
// @Description Moves to the next step. On the last step the selections are submitted.
// @Tags        Onboarding
// @Produce     json
// @Param       X-Session-ID header string false "Wizard session"
// @Success     200 {object} wizardResp
// @Failure     401 {object} response.Resp "Sign in required, data.redirect holds the login path"
// @Failure     409 {object} response.Resp "Already submitted"
// @Failure     500 {object} response.Resp "Store failure"
// @Router      /api/v1/onboarding/wizard/next [POST]
func (h *handler) Next(c *gin.Context) {
	st, err := h.uc.Next(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, newWizardResp(st))
}

// Back godoc
// @Summary     Go back one step
// @Tags        Onboarding
// @Produce     json
// @Param       X-Session-ID header string false "Wizard session"
// @Success     200 {object} wizardResp
// @Failure     409 {object} response.Resp "Already on the first step"
// @Router      /api/v1/onboarding/wizard/back [POST]
func (h *handler) Back(c *gin.Context) {
	st, err := h.uc.Back(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, newWizardResp(st))
}
