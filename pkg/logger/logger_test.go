package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")

	log.Info("hidden %d", 1)
	log.Warn("shown %d", 2)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown 2", entry["message"])
	assert.NotEmpty(t, entry["time"])
}

func TestLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "verbose")

	log.Debug("debug")
	log.Info("info")

	assert.NotContains(t, buf.String(), `"debug"`)
	assert.Contains(t, buf.String(), `"message":"info"`)
}

func TestLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := New(path, "info")
	require.NoError(t, err)
	log.Error("boom: %v", "disk")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "boom: disk")
}
