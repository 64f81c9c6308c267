package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/cors"
)

// Run maps handlers, wraps the router with CORS and serves until the
// context is cancelled, then shuts down gracefully.
func (srv *HTTPServer) Run(ctx context.Context) error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   srv.corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", srv.port),
		Handler:           c.Handler(srv.gin),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on :%d", srv.port)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	srv.l.Info(shutdownCtx, "HTTP server shut down")
	return nil
}
