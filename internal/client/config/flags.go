package config

import (
	"flag"
	"io"
	"time"

	"github.com/RitishHUB/polling-frountend/internal/flagx"
)

// parseFlags overlays cfg with the flags it knows about; anything else in
// args is filtered out first so other layers can define their own flags.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-s", "-d", "-l", "-b"})

	fs := flag.NewFlagSet("pollhub", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "session storage file")
	delay := fs.Int("d", int(cfg.VoteDelay.Milliseconds()), "vote pacing delay (ms)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogBackend, "b", cfg.LogBackend, "log backend (slog|zap)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.VoteDelay = time.Duration(*delay) * time.Millisecond
	return nil
}
