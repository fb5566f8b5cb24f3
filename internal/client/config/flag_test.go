package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    *Config
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://api:5000/api", "-s", "s.db", "-d", "100", "-l", "debug", "-b", "zap"},
			want: &Config{APIBaseURL: "http://api:5000/api", StoragePath: "s.db", VoteDelay: 100 * time.Millisecond, LogLevel: "debug", LogBackend: "zap"},
		},
		{
			name: "foreign flags ignored",
			args: []string{"-c", "cfg.json", "-d", "0"},
			want: &Config{APIBaseURL: "http://localhost:5000/api", StoragePath: "pollhub.db", VoteDelay: 0, LogLevel: "info", LogBackend: "slog"},
		},
		{
			name:    "bad delay",
			args:    []string{"-d", "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.want, cfg))
		})
	}
}
