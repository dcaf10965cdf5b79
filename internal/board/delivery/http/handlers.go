package http

import (
	"github.com/gin-gonic/gin"

	"holistic-daily/internal/middleware"
	"holistic-daily/pkg/response"
)

// View godoc
// @Summary     Task board
// @Description Returns today's cards with their presentation state.
// @Tags        Board
// @Produce     json
// @Security    Bearer
// @Success     200 {object} viewResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/board [GET]
func (h *handler) View(c *gin.Context) {
	ctx := c.Request.Context()

	v, err := h.uc.View(ctx, middleware.GetScope(c))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newViewResp(v))
}

// Dispatch godoc
// @Summary     Apply a board event
// @Description Toggles expansion or completion, submits or skips feedback, opens or closes sharing.
// @Description A failed event returns the error together with the rolled-back board.
// @Tags        Board
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body eventReq true "Event"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Invalid transition"
// @Failure     500 {object} response.Resp "Store failure"
// @Router      /api/v1/board/events [POST]
func (h *handler) Dispatch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEventReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	v, err := h.uc.Dispatch(ctx, middleware.GetScope(c), req.toEvent())
	if err != nil {
		var data map[string]interface{}
		if len(v.Cards) > 0 {
			data = map[string]interface{}{"board": newViewResp(v)}
		}
		response.Error(c, h.mapError(err), data)
		return
	}

	response.OK(c, newViewResp(v))
}
