package http

import (
	"github.com/gin-gonic/gin"

	"ai-todo-manager/internal/middleware"
)

// RegisterRoutes maps the AI endpoints. Both require a signed-in user
// and are rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	aiGroup := rg.Group("/ai")
	{
		aiGroup.POST("/generate-todo", mw.Auth(), mw.AIRateLimit(), h.GenerateTodo)
		aiGroup.POST("/analyze-todos", mw.Auth(), mw.AIRateLimit(), h.AnalyzeTodos)
	}
}
