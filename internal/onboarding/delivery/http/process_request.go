package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "holistic-daily/pkg/errors"
)

func (h *handler) processSubmitReq(c *gin.Context) (submitReq, error) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, "invalid onboarding payload")
	}
	return req, nil
}

func (h *handler) processSelectReq(c *gin.Context) (selectReq, error) {
	var req selectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, "field must be dietary, fitness or interests and value is required")
	}
	return req, nil
}
