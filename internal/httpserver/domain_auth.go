package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "ai-todo-manager/internal/auth/delivery/http"
	authRepo "ai-todo-manager/internal/auth/repository/postgre"
	authUC "ai-todo-manager/internal/auth/usecase"
	"ai-todo-manager/internal/middleware"
)

// setupAuthDomain initializes the auth domain and registers its routes.
func (srv *HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := authRepo.New(srv.postgresDB, srv.l)
	uc := authUC.New(repo, srv.l, srv.jwtManager, srv.oauth)
	h := authHTTP.New(srv.l, uc)

	authHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Auth domain registered (google sign-in: %v)", srv.oauth != nil)
	return nil
}
