package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "ai-todo-manager/pkg/errors"
)

// ErrResp is the standard error body: {"error": "..."}.
type ErrResp struct {
	Error string `json:"error"`
}

// OK sends 200 with the payload as-is.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends an error body. HTTPError values carry their own status;
// anything else is treated as an internal error.
func Error(c *gin.Context, err error) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(httpErr.Status, ErrResp{Error: httpErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrResp{Error: err.Error()})
}

// Unauthorized sends 401.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrResp{Error: "로그인이 필요해"})
}

// TooManyRequests sends 429 with the given message.
func TooManyRequests(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrResp{Error: message})
}
