package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "ai-todo-manager/pkg/errors"
)

var errBadBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "요청 형식이 올바르지 않아")

// processCreateReq binds the create todo request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errBadBody
	}
	return req, nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errBadBody
	}
	return req, nil
}

// processUpdateReq binds the update request body plus the URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errBadBody
	}
	req.ID = c.Param("id")
	return req, nil
}
