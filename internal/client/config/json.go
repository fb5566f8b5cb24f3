package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/RitishHUB/polling-frountend/internal/flagx"
)

// jsonConfig is the on-disk shape. Empty fields leave the current value
// untouched.
type jsonConfig struct {
	APIBaseURL  string `json:"api_base_url"`
	StoragePath string `json:"storage_path"`
	VoteDelay   string `json:"vote_delay"`
	LogLevel    string `json:"log_level"`
	LogBackend  string `json:"log_backend"`
}

// parseJSON overlays cfg with the file named by -c/-config in args, if any.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.StoragePath != "" {
		cfg.StoragePath = jc.StoragePath
	}
	if jc.VoteDelay != "" {
		d, err := time.ParseDuration(jc.VoteDelay)
		if err != nil {
			return fmt.Errorf("vote_delay: %w", err)
		}
		cfg.VoteDelay = d
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogBackend != "" {
		cfg.LogBackend = jc.LogBackend
	}
	return nil
}
