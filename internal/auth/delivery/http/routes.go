package http

import (
	"github.com/gin-gonic/gin"

	"ai-todo-manager/internal/middleware"
)

// RegisterRoutes maps the auth endpoints. Only /me requires a session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/signup", h.SignUp)
		authGroup.POST("/signin", h.SignIn)
		authGroup.POST("/signout", h.SignOut)
		authGroup.GET("/me", mw.Auth(), h.Me)
		authGroup.GET("/google", h.GoogleRedirect)
		authGroup.GET("/google/callback", h.GoogleCallback)
	}
}
