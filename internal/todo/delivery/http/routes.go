package http

import (
	"github.com/gin-gonic/gin"

	"ai-todo-manager/internal/middleware"
)

// RegisterRoutes maps the todo CRUD endpoints. Every route requires a
// signed-in user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	todos := rg.Group("/todos")
	{
		todos.POST("", mw.Auth(), h.Create)
		todos.GET("", mw.Auth(), h.List)
		todos.GET("/:id", mw.Auth(), h.Detail)
		todos.PUT("/:id", mw.Auth(), h.Update)
		todos.PATCH("/:id/toggle", mw.Auth(), h.Toggle)
		todos.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
