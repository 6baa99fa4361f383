package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, TransportChi, cfg.Server.Transport)
	assert.Equal(t, "/dealer", cfg.Server.BasePath)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "dealerdash", cfg.Session.Name)
	assert.Equal(t, "westeros", cfg.Charts.Theme)
	assert.Equal(t, 5*time.Minute, cfg.Charts.CacheTTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dealerdash.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
model: reports/north.yaml
server:
  addr: ":9090"
  transport: fiber
charts:
  cache_ttl: 30s
log:
  level: debug
  format: json
`), 0o600))

	t.Setenv("DEALERDASH_SERVER_ADDR", ":7070")
	t.Setenv("DEALERDASH_SERVER_BASE_PATH", "/reports")
	t.Setenv("DEALERDASH_LOG_MAX_SIZE_MB", "50")
	t.Setenv("DEALERDASH_LOCALE", "de")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "reports/north.yaml", cfg.Model)
	assert.Equal(t, ":7070", cfg.Server.Addr, "env wins over file")
	assert.Equal(t, TransportFiber, cfg.Server.Transport)
	assert.Equal(t, "/reports", cfg.Server.BasePath)
	assert.Equal(t, 30*time.Second, cfg.Charts.CacheTTL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 50, cfg.Log.MaxSizeMB)
	assert.Equal(t, "de", cfg.Locale)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	t.Setenv("DEALERDASH_SERVER_TRANSPORT", "grpc")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.transport")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server.base_path", envKey("DEALERDASH_SERVER_BASE_PATH"))
	assert.Equal(t, "log.level", envKey("DEALERDASH_LOG_LEVEL"))
	assert.Equal(t, "model", envKey("DEALERDASH_MODEL"))
	assert.Equal(t, "unknown_key", envKey("DEALERDASH_UNKNOWN_KEY"))
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLevel("loud")
	require.Error(t, err)
}
