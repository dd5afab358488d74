package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config aggregates the environment-driven settings. A missing store
// DSN is not an error: the server starts and store-backed routes answer
// 503 until one is provided.
type Config struct {
	HTTP     HTTPConfig
	Postgres PostgresConfig
	Auth     AuthConfig
}

type HTTPConfig struct {
	Port int
}

type PostgresConfig struct {
	DSN string
}

type AuthConfig struct {
	JWTSecret     string
	ResetTokenTTL time.Duration
}

const (
	defaultPort          = 8080
	defaultResetTokenTTL = 15 * time.Minute
)

func Load() (Config, error) {
	cfg := Config{
		Postgres: PostgresConfig{DSN: os.Getenv("POSTGRES_URL")},
		Auth: AuthConfig{
			JWTSecret:     os.Getenv("JWT_SECRET"),
			ResetTokenTTL: defaultResetTokenTTL,
		},
	}

	port, err := parsePort("PORT", defaultPort)
	if err != nil {
		return Config{}, err
	}
	cfg.HTTP.Port = port

	if v := os.Getenv("RESET_TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RESET_TOKEN_TTL: %w", err)
		}
		cfg.Auth.ResetTokenTTL = d
	}

	return cfg, nil
}

// StoreConfigured reports whether a database DSN was supplied.
func (c Config) StoreConfigured() bool {
	return c.Postgres.DSN != ""
}

func parsePort(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	port, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	if port <= 0 || port > 65535 {
		return 0, fmt.Errorf("port %d is out of range", port)
	}
	return port, nil
}
