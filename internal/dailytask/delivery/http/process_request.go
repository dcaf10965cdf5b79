package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "holistic-daily/pkg/errors"
)

func (h *handler) processByDateReq(c *gin.Context) byDateReq {
	return byDateReq{Date: c.Query("date")}
}

// processSetCompletionReq binds the completion body + URI param.
func (h *handler) processSetCompletionReq(c *gin.Context) (setCompletionReq, error) {
	var req setCompletionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, "completed is required")
	}
	req.ID = c.Param("id")
	return req, req.validate()
}

// processSetFeedbackReq binds the feedback body + URI param.
func (h *handler) processSetFeedbackReq(c *gin.Context) (setFeedbackReq, error) {
	var req setFeedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, "feedback is required")
	}
	req.ID = c.Param("id")
	return req, req.validate()
}
