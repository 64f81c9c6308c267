package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"ai-todo-manager/internal/middleware"
	todoHTTP "ai-todo-manager/internal/todo/delivery/http"
	todoRepo "ai-todo-manager/internal/todo/repository/postgre"
	todoUC "ai-todo-manager/internal/todo/usecase"
)

// setupTodoDomain initializes the todo domain and registers its routes.
func (srv *HTTPServer) setupTodoDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := todoRepo.New(srv.postgresDB, srv.l)
	uc := todoUC.New(repo, srv.l, nil)
	h := todoHTTP.New(srv.l, uc)

	todoHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Todo domain registered")
	return nil
}
