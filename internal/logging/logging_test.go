package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-dealer-dashboard/internal/config"
)

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "json", slog.LevelInfo)
	logger.Debug("hidden")
	logger.Info("dashboard.build", "sections", 5)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "dashboard.build", entry["msg"])
	assert.Equal(t, float64(5), entry["sections"])
}

func TestNewWithWriterText(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf, "text", slog.LevelDebug).Debug("visible", "session", "s1")
	assert.Contains(t, buf.String(), "msg=visible")
	assert.Contains(t, buf.String(), "session=s1")
}

func TestNewRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dealerdash.log")
	result, err := New(config.LogConfig{Level: "info", Format: "text", File: path, MaxSizeMB: 1})
	require.NoError(t, err)

	result.Logger.Info("written to file")
	require.NoError(t, result.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "chatty"})
	require.Error(t, err)

	result, err := New(config.LogConfig{Level: "warn"})
	require.NoError(t, err)
	assert.Nil(t, result.File)
	assert.NoError(t, result.Close())
}
