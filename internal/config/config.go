package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort       = "8080"
	defaultJWTSecret  = "change-me-jwt-secret"
	defaultJWTTTL     = "24h"
	defaultDatabase   = "hotelops.db"
	defaultRevenueTTL = "60s"
)

type Config struct {
	AppEnv          string
	Port            string
	DatabaseURL     string
	RedisAddr       string
	RedisPassword   string
	JWTSecret       string
	JWTTTL          time.Duration
	RevenueCacheTTL time.Duration
}

// Load reads configuration from the environment. A .env file is honored
// when present, real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:        strings.ToLower(getEnv("APP_ENV", "dev")),
		Port:          getEnv("PORT", defaultPort),
		DatabaseURL:   getEnv("DATABASE_URL", defaultDatabase),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     getEnv("JWT_SECRET", defaultJWTSecret),
	}

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}
	cfg.RevenueCacheTTL, err = parseDurationEnv("REVENUE_CACHE_TTL", defaultRevenueTTL)
	if err != nil {
		return nil, err
	}

	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in prod")
	}

	return cfg, nil
}

func getEnv(name, def string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(name, def string) (time.Duration, error) {
	raw := getEnv(name, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return d, nil
}
