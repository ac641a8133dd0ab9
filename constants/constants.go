package constants

import "time"

const (
	// Bcrypt limits: cost below MinBcryptCost is rejected outright, a
	// password longer than 72 bytes is silently truncated by bcrypt, so
	// the store refuses to accept a cost outside these bounds.
	DefaultBcryptCost = 12
	MinBcryptCost     = 4
	MaxBcryptCost     = 31

	SessionTokenSecretMinLength = 32
	DefaultSessionTokenTTL      = 24 * time.Hour

	DBPoolMaxOpenConns    = 25
	DBPoolMinOpenConns    = 5
	DBPoolConnMaxLifetime = time.Hour
	DBPoolConnMaxIdleTime = 30 * time.Minute
	DBPoolHealthCheck     = time.Minute
	DBPoolConnectTimeout  = 5 * time.Second
	DBPoolMaxAttempts     = 10
	DBPoolRetryDelay      = time.Second
	DBPoolMetricsInterval = 30 * time.Second

	DefaultLogLevel = "INFO"
)
