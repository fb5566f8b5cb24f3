package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withEnvFile(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	orig := envFile
	envFile = path
	t.Cleanup(func() { envFile = orig })
}

func TestParseEnv_ProcessVariables(t *testing.T) {
	withEnvFile(t, "")
	t.Setenv("POLLHUB_API_URL", "https://polls.campus.edu/api")
	t.Setenv("POLLHUB_VOTE_DELAY", "250ms")
	t.Setenv("POLLHUB_LOG_BACKEND", "zap")

	cfg := defaults()
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "https://polls.campus.edu/api", cfg.APIBaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.VoteDelay)
	assert.Equal(t, "zap", cfg.LogBackend)
	assert.Equal(t, "pollhub.db", cfg.StoragePath)
}

func TestParseEnv_DotEnvFile(t *testing.T) {
	withEnvFile(t, "POLLHUB_STORAGE=/tmp/dotenv.db\n")
	t.Setenv("POLLHUB_STORAGE", "")
	require.NoError(t, os.Unsetenv("POLLHUB_STORAGE"))

	cfg := defaults()
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "/tmp/dotenv.db", cfg.StoragePath)
}

func TestParseEnv_BadDelay(t *testing.T) {
	withEnvFile(t, "")
	t.Setenv("POLLHUB_VOTE_DELAY", "soon")

	cfg := defaults()
	require.Error(t, parseEnv(cfg))
}
