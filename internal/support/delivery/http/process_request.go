package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "holistic-daily/pkg/errors"
)

func (h *handler) processAskReq(c *gin.Context) (askReq, error) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, "question is required")
	}
	return req, nil
}
