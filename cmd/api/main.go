package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"ai-todo-manager/config"
	_ "ai-todo-manager/docs" // Swagger docs
	"ai-todo-manager/internal/httpserver"
	"ai-todo-manager/pkg/gemini"
	"ai-todo-manager/pkg/log"
	"ai-todo-manager/pkg/postgres"
	"ai-todo-manager/pkg/scope"
)

// @title       AI Todo Manager API
// @description Personal todo backend with natural-language task extraction and AI analysis powered by Gemini.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AI Todo Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := postgres.Connect(cfg.Postgres.URL)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to postgres: %v", err)
		return
	}
	defer db.Close()

	// 4. Session tokens
	jwtManager := scope.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// 5. Gemini client (optional; AI endpoints degrade without it)
	var llm gemini.IGemini
	if cfg.Gemini.APIKey != "" {
		client := gemini.NewClient(cfg.Gemini.APIKey)
		if cfg.Gemini.Model != "" {
			client.SetModel(cfg.Gemini.Model)
		}
		llm = client
		logger.Infof(ctx, "Gemini client initialized (model: %s)", client.Model())
	} else {
		logger.Warn(ctx, "GOOGLE_API_KEY is missing, AI endpoints will answer with a configuration error")
	}

	// 6. Google sign-in (optional)
	var oauthCfg *oauth2.Config
	if cfg.Auth.GoogleClientID != "" && cfg.Auth.GoogleClientSecret != "" {
		oauthCfg = &oauth2.Config{
			ClientID:     cfg.Auth.GoogleClientID,
			ClientSecret: cfg.Auth.GoogleClientSecret,
			RedirectURL:  cfg.Auth.GoogleRedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		}
	} else {
		logger.Warn(ctx, "Google sign-in not configured, only email/password auth is available")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		PostgresDB:        db,
		JWTManager:        jwtManager,
		LLM:               llm,
		OAuth:             oauthCfg,
		CORSOrigins:       cfg.CORS.AllowedOrigins,
		AIRateLimitPerMin: cfg.AI.RateLimitPerMin,
		AIRequestTimeout:  cfg.AI.RequestTimeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
