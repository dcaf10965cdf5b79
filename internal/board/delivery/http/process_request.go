package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "holistic-daily/pkg/errors"
)

func (h *handler) processEventReq(c *gin.Context) (eventReq, error) {
	var req eventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, "type and task_id are required")
	}
	return req, nil
}
