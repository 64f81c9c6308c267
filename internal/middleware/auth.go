package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"ai-todo-manager/internal/model"
	"ai-todo-manager/pkg/response"
)

const scopeKey = "scope"

// Auth verifies the Bearer token and stores the caller's scope in the
// request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c)
			return
		}

		payload, err := m.jwtManager.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Set(scopeKey, model.Scope{UserID: payload.UserID, Email: payload.Email})
		c.Next()
	}
}

// GetScope returns the caller's scope set by Auth. The second return is
// false on routes that skipped the middleware.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
