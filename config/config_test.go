package config

import (
	"errors"
	"testing"
	"time"

	"github.com/ovdenko/credsession/constants"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"LOG_DIR", "LOG_LEVEL", "DATABASE_URL", "BCRYPT_COST", "SESSION_TOKEN_SECRET", "SESSION_TOKEN_TTL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.BcryptCost != constants.DefaultBcryptCost {
		t.Errorf("expected default cost %d, got %d", constants.DefaultBcryptCost, cfg.BcryptCost)
	}
	if cfg.LogLevel != constants.DefaultLogLevel {
		t.Errorf("expected default log level, got %q", cfg.LogLevel)
	}
	if cfg.SessionTokenTTL != constants.DefaultSessionTokenTTL {
		t.Errorf("expected default ttl, got %v", cfg.SessionTokenTTL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("SESSION_TOKEN_TTL", "30m")
	t.Setenv("SESSION_TOKEN_SECRET", "0123456789abcdef0123456789abcdef")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.BcryptCost != 10 {
		t.Errorf("expected cost 10, got %d", cfg.BcryptCost)
	}
	if cfg.LogLevel != "DEBUG" {
		t.Errorf("expected DEBUG, got %q", cfg.LogLevel)
	}
	if cfg.SessionTokenTTL != 30*time.Minute {
		t.Errorf("expected 30m, got %v", cfg.SessionTokenTTL)
	}
}

func TestLoad_InvalidBcryptCost(t *testing.T) {
	t.Setenv("BCRYPT_COST", "99")

	if _, err := Load(); !errors.Is(err, ErrInvalidBcryptCost) {
		t.Fatalf("expected ErrInvalidBcryptCost, got %v", err)
	}
}

func TestLoad_ShortSessionSecret(t *testing.T) {
	t.Setenv("SESSION_TOKEN_SECRET", "short")

	if _, err := Load(); !errors.Is(err, ErrInvalidSessionSecret) {
		t.Fatalf("expected ErrInvalidSessionSecret, got %v", err)
	}
}

func TestConfig_MustDatabaseURL(t *testing.T) {
	cfg := Config{}
	if _, err := cfg.MustDatabaseURL(); !errors.Is(err, ErrMissingRequiredEnv) {
		t.Fatalf("expected ErrMissingRequiredEnv, got %v", err)
	}

	cfg.DatabaseURL = "postgres://localhost/credsession"
	url, err := cfg.MustDatabaseURL()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if url != "postgres://localhost/credsession" {
		t.Errorf("unexpected url %q", url)
	}
}
