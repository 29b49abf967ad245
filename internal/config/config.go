package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultListenAddr    = ":8080"
	defaultDatabaseURL   = "moviweb.db"
	defaultJWTTTL        = "24h"
	defaultJWTSecret     = "change-me-jwt-secret"
	defaultUploadDir     = "./static/images/upload/profile_image"
	defaultPosterPath    = "/static/images/default_movie_poster.jpg"
	defaultOMDbAPIKeyEnv = "OMDB_API_KEY"
)

type Config struct {
	AppEnv        string
	ListenAddr    string
	DatabaseURL   string
	JWTSecret     string
	JWTTTL        time.Duration
	OMDbAPIKey    string
	UploadDir     string
	DefaultPoster string
}

// Load reads configuration from the environment, picking up a local
// .env file when present. Only the OMDb key is strictly required; the
// rest have development defaults.
func Load() (*Config, error) {
	// A missing .env file is fine in production.
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:        strings.ToLower(getEnv("APP_ENV", "dev")),
		ListenAddr:    getEnv("LISTEN_ADDR", defaultListenAddr),
		DatabaseURL:   getEnv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:     strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
		OMDbAPIKey:    strings.TrimSpace(os.Getenv(defaultOMDbAPIKeyEnv)),
		UploadDir:     getEnv("UPLOAD_DIR", defaultUploadDir),
		DefaultPoster: getEnv("DEFAULT_POSTER", defaultPosterPath),
	}

	if cfg.OMDbAPIKey == "" {
		return nil, fmt.Errorf("missing required environment variable: %s", defaultOMDbAPIKeyEnv)
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	if cfg.AppEnv == "production" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
