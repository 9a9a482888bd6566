package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the service configuration.
type Config struct {
	Port           string
	GapThreshold   time.Duration // minimum recording gap reported by default
	SplitPolicy    string        // "simple" or "gap-aware"
	MaxUploadBytes int64         // largest accepted FIT upload
	RateLimit      int           // analyze requests per client per minute
}

// Load reads configuration from the environment, with defaults.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	split := os.Getenv("SPLIT_POLICY")
	if split == "" {
		split = "gap-aware"
	}

	return &Config{
		Port:           port,
		GapThreshold:   time.Duration(envInt64("GAP_THRESHOLD_MS", 300000)) * time.Millisecond,
		SplitPolicy:    split,
		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 25<<20),
		RateLimit:      int(envInt64("RATE_LIMIT", 30)),
	}
}

func envInt64(key string, fallback int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
