package config

import "time"

// Default values for optional environment variables
const (
	DefaultPort         = 8080
	DefaultDBMaxConns   = 16
	DefaultDBMaxIdle    = 5 * time.Minute
	DefaultDBMaxLife    = 30 * time.Minute
	DefaultScoreWorkers = 8
)
