package module

import (
	"time"

	"octoview/internal/platform/config"
)

// Options controls the upstream GitHub client for the users module
type Options struct {
	TokensCSV  string
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
	RetryBase  time.Duration
	RPS        float64
	Burst      int
}

// FromConfig reads UPSTREAM_GITHUB_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	gc := cfg.Prefix("UPSTREAM_GITHUB_")
	return Options{
		TokensCSV:  gc.MayString("TOKENS", ""),
		BaseURL:    gc.MayString("BASE_URL", ""),
		UserAgent:  gc.MayString("UA", "octoview-api"),
		Timeout:    gc.MayDuration("TIMEOUT", 10*time.Second),
		MaxRetries: gc.MayInt("MAX_RETRIES", 4),
		RetryBase:  gc.MayDuration("RETRY_BASE", 500*time.Millisecond),
		RPS:        gc.MayFloat64("RPS", 8),
		Burst:      gc.MayInt("BURST", 16),
	}
}
