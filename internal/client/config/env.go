package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// envFile is loaded when present; a missing file is not an error.
var envFile = ".env"

// parseEnv overlays cfg with POLLHUB_* variables. godotenv.Load never
// overrides variables already set in the process environment.
func parseEnv(cfg *Config) error {
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if v := os.Getenv("POLLHUB_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("POLLHUB_STORAGE"); v != "" {
		cfg.StoragePath = v
	}
	if v := os.Getenv("POLLHUB_VOTE_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("POLLHUB_VOTE_DELAY: %w", err)
		}
		cfg.VoteDelay = d
	}
	if v := os.Getenv("POLLHUB_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("POLLHUB_LOG_BACKEND"); v != "" {
		cfg.LogBackend = v
	}
	return nil
}
