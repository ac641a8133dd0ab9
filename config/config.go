package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ovdenko/credsession/constants"
)

var (
	ErrInvalidBcryptCost    = errors.New("bcrypt cost out of range")
	ErrInvalidSessionSecret = errors.New("SESSION_TOKEN_SECRET must be at least 32 bytes")
	ErrMissingRequiredEnv   = errors.New("missing required environment variable")
)

type Config struct {
	LogDir             string
	LogLevel           string
	DatabaseURL        string
	BcryptCost         int
	SessionTokenSecret string
	SessionTokenTTL    time.Duration
}

// Load reads configuration from the environment. DATABASE_URL and
// SESSION_TOKEN_SECRET are optional here: only the collaborators that
// need them (the postgres repository, the token codec) require them,
// and they validate again at construction.
func Load() (Config, error) {
	cfg := Config{
		LogDir:             getEnv("LOG_DIR", ""),
		LogLevel:           getEnv("LOG_LEVEL", constants.DefaultLogLevel),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		BcryptCost:         getIntEnv("BCRYPT_COST", constants.DefaultBcryptCost),
		SessionTokenSecret: getEnv("SESSION_TOKEN_SECRET", ""),
		SessionTokenTTL:    getDurationEnv("SESSION_TOKEN_TTL", constants.DefaultSessionTokenTTL),
	}

	if cfg.BcryptCost < constants.MinBcryptCost || cfg.BcryptCost > constants.MaxBcryptCost {
		return Config{}, fmt.Errorf("%w: got %d", ErrInvalidBcryptCost, cfg.BcryptCost)
	}

	if cfg.SessionTokenSecret != "" && len(cfg.SessionTokenSecret) < constants.SessionTokenSecretMinLength {
		return Config{}, fmt.Errorf("%w: got %d bytes", ErrInvalidSessionSecret, len(cfg.SessionTokenSecret))
	}

	return cfg, nil
}

// MustDatabaseURL is for callers wiring the postgres collaborator.
func (c Config) MustDatabaseURL() (string, error) {
	if c.DatabaseURL == "" {
		return "", fmt.Errorf("%w: DATABASE_URL", ErrMissingRequiredEnv)
	}
	return c.DatabaseURL, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
