package http

import (
	"github.com/gin-gonic/gin"

	"holistic-daily/internal/middleware"
	"holistic-daily/pkg/response"
)

// Ask godoc
// @Summary     Ask the wellness assistant
// @Description Answers a nutrition, fitness or mental wellness question and appends it to the session transcript.
// @Description Answering never fails; provider errors produce an apology answer.
// @Tags        Support
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string false "Chat session"
// @Param       body body askReq true "Question"
// @Success     200 {object} askResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too many requests"
// @Router      /api/v1/support/ask [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Ask(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newAskResp(out))
}

// Transcript godoc
// @Summary     Chat transcript
// @Description Returns the session's conversation, starting with the greeting.
// @Tags        Support
// @Produce     json
// @Param       X-Session-ID header string false "Chat session"
// @Success     200 {object} transcriptResp
// @Router      /api/v1/support/transcript [GET]
func (h *handler) Transcript(c *gin.Context) {
	msgs, err := h.uc.Transcript(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, transcriptResp{Messages: newMessages(msgs)})
}
