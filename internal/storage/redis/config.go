package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Namespace separates several players sharing one server
	Namespace string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// SaveTTL expires an abandoned saved game; zero keeps it forever.
	// Scores never expire.
	SaveTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		Namespace:    "default",
		PoolSize:     4,
		MinIdleConns: 1,
		SaveTTL:      30 * 24 * time.Hour,
	}
}
