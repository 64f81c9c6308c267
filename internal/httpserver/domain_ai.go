package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	aiHTTP "ai-todo-manager/internal/ai/delivery/http"
	aiUC "ai-todo-manager/internal/ai/usecase"
	"ai-todo-manager/internal/middleware"
)

// setupAIDomain initializes the AI domain and registers its routes.
// The domain is always registered; with no model client configured,
// its endpoints answer with a configuration error.
func (srv *HTTPServer) setupAIDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := aiUC.New(srv.l, srv.llm, nil)
	h := aiHTTP.New(srv.l, uc, srv.aiRequestTimeout)

	aiHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "AI domain registered (model configured: %v)", srv.llm != nil)
	return nil
}
