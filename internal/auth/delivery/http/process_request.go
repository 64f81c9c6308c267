package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "ai-todo-manager/pkg/errors"
)

var errBadBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "요청 형식이 올바르지 않아")

// processSignUpReq binds the signup request body.
func (h *handler) processSignUpReq(c *gin.Context) (signUpReq, error) {
	var req signUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errBadBody
	}
	return req, nil
}

// processSignInReq binds the signin request body.
func (h *handler) processSignInReq(c *gin.Context) (signInReq, error) {
	var req signInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errBadBody
	}
	return req, nil
}
