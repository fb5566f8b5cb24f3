package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the pollhub client.
//
// Fields:
//   - APIBaseURL: base of the remote API, including the /api prefix.
//   - StoragePath: SQLite file backing durable session storage.
//   - VoteDelay: pacing pause before a vote is submitted.
//   - LogLevel, LogBackend: see logging.New.
type Config struct {
	APIBaseURL  string
	StoragePath string
	VoteDelay   time.Duration
	LogLevel    string
	LogBackend  string
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.StoragePath = "pollhub.db"
	c.VoteDelay = 600 * time.Millisecond
	c.LogLevel = "info"
	c.LogBackend = "slog"
}

// LoadConfig builds a Config from defaults, then the environment (a .env file
// is read first if present), then a JSON file, then command-line flags. Later
// sources take precedence.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg, os.Args[1:]); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, os.Args[1:]); err != nil {
		return nil, err
	}
	return cfg, nil
}
