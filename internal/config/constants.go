package config

import "time"

// DefaultDrawCooldown is the production window between reward draws.
const DefaultDrawCooldown = 24 * time.Hour

// Database pool defaults.
const (
	DefaultDBMaxConns    = 10
	DefaultDBMaxIdleTime = 30 * time.Minute
	DefaultDBMaxLifetime = time.Hour
)
