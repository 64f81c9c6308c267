package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig
	Postgres    PostgresConfig
	Auth        AuthConfig
	Gemini      GeminiConfig
	CORS        CORSConfig
	AI          AIConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	URL string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration

	// Google sign-in (optional)
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// AIConfig bounds the AI endpoints: per-user request rate and the
// per-request model-call timeout.
type AIConfig struct {
	RateLimitPerMin int
	RequestTimeout  time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Postgres.URL = viper.GetString("postgres.url")
	if pgURL := viper.GetString("database_url"); pgURL != "" {
		cfg.Postgres.URL = pgURL
	}

	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	cfg.Auth.TokenTTL = viper.GetDuration("auth.token_ttl")
	cfg.Auth.GoogleClientID = viper.GetString("auth.google_client_id")
	cfg.Auth.GoogleClientSecret = viper.GetString("auth.google_client_secret")
	cfg.Auth.GoogleRedirectURL = viper.GetString("auth.google_redirect_url")
	if clientID := viper.GetString("google_client_id"); clientID != "" {
		cfg.Auth.GoogleClientID = clientID
	}
	if clientSecret := viper.GetString("google_client_secret"); clientSecret != "" {
		cfg.Auth.GoogleClientSecret = clientSecret
	}

	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	if apiKey := viper.GetString("google_api_key"); apiKey != "" {
		cfg.Gemini.APIKey = apiKey
	}
	cfg.Gemini.Model = viper.GetString("gemini.model")

	// Split allowed origins since viper might not parse array seamlessly from env
	var origins []string
	if rawOrigins := viper.GetString("cors.allowed_origins"); rawOrigins != "" {
		for _, origin := range strings.Split(rawOrigins, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	}
	cfg.CORS.AllowedOrigins = origins

	cfg.AI.RateLimitPerMin = viper.GetInt("ai.rate_limit_per_min")
	cfg.AI.RequestTimeout = viper.GetDuration("ai.request_timeout")

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required")
	}
	if cfg.Postgres.URL == "" {
		return nil, fmt.Errorf("postgres.url is required")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("auth.token_ttl", 30*24*time.Hour)
	viper.SetDefault("gemini.model", "gemini-2.0-flash-exp")
	viper.SetDefault("cors.allowed_origins", "http://localhost:3000")
	viper.SetDefault("ai.rate_limit_per_min", 10)
	viper.SetDefault("ai.request_timeout", 60*time.Second)
}
