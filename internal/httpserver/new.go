package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"ai-todo-manager/pkg/gemini"
	"ai-todo-manager/pkg/log"
	"ai-todo-manager/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	postgresDB *sql.DB
	jwtManager scope.Manager

	// llm is nil when no API key is configured; AI endpoints then
	// answer with a configuration error.
	llm   gemini.IGemini
	oauth *oauth2.Config

	corsOrigins       []string
	aiRateLimitPerMin int
	aiRequestTimeout  time.Duration
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	JWTManager scope.Manager

	LLM   gemini.IGemini
	OAuth *oauth2.Config

	CORSOrigins       []string
	AIRateLimitPerMin int
	AIRequestTimeout  time.Duration
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.New(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		postgresDB:        cfg.PostgresDB,
		jwtManager:        cfg.JWTManager,
		llm:               cfg.LLM,
		oauth:             cfg.OAuth,
		corsOrigins:       cfg.CORSOrigins,
		aiRateLimitPerMin: cfg.AIRateLimitPerMin,
		aiRequestTimeout:  cfg.AIRequestTimeout,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	return nil
}
