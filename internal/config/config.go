// Package config loads watch-server configuration from environment
// variables.
package config

import (
	"os"
	"strconv"
)

// Config holds the watch/play server settings.
type Config struct {
	Addr      string
	Columns   int
	Rows      int
	Players   int
	MoveLimit int
	Seed      int64
}

// Load reads configuration from environment variables with sensible
// defaults: a localhost bind and a 3x3 two-player board.
func Load() *Config {
	return &Config{
		Addr:      envOrDefault("HEXFRAY_ADDR", "127.0.0.1:8017"),
		Columns:   envIntOrDefault("HEXFRAY_COLUMNS", 3),
		Rows:      envIntOrDefault("HEXFRAY_ROWS", 3),
		Players:   envIntOrDefault("HEXFRAY_PLAYERS", 2),
		MoveLimit: envIntOrDefault("HEXFRAY_MOVE_LIMIT", 6),
		Seed:      int64(envIntOrDefault("HEXFRAY_SEED", 0)),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
