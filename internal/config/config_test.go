package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GAP_THRESHOLD_MS", "")
	t.Setenv("SPLIT_POLICY", "")
	t.Setenv("MAX_UPLOAD_BYTES", "")
	t.Setenv("RATE_LIMIT", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.GapThreshold)
	assert.Equal(t, "gap-aware", cfg.SplitPolicy)
	assert.Equal(t, int64(25<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 30, cfg.RateLimit)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("GAP_THRESHOLD_MS", "120000")
	t.Setenv("SPLIT_POLICY", "simple")
	t.Setenv("RATE_LIMIT", "5")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Port)
	assert.Equal(t, 2*time.Minute, cfg.GapThreshold)
	assert.Equal(t, "simple", cfg.SplitPolicy)
	assert.Equal(t, 5, cfg.RateLimit)
}

func TestLoadIgnoresBadNumbers(t *testing.T) {
	t.Setenv("GAP_THRESHOLD_MS", "five minutes")
	t.Setenv("RATE_LIMIT", "-3")

	cfg := Load()

	assert.Equal(t, 5*time.Minute, cfg.GapThreshold)
	assert.Equal(t, 30, cfg.RateLimit)
}
