package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_DefaultsAndEnvExpansion(t *testing.T) {
	t.Setenv("SHAREIT_DB_PASSWORD", "secret")

	path := writeFile(t, `
[server]
http_port = 9090

[database]
host = "localhost"
user = "shareit"
password = "${SHAREIT_DB_PASSWORD}"
dbname = "shareit"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, BackendPostgres, cfg.Storage.Backend)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "shareit.bookings", cfg.Events.Exchange)
	assert.Equal(t,
		"host=localhost port=5432 user=shareit password=secret dbname=shareit sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_MemoryBackendNeedsNoDatabase(t *testing.T) {
	cfg, err := Load(writeFile(t, `
[storage]
backend = "memory"
`))
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "postgres without host", content: "[storage]\nbackend = \"postgres\"\n"},
		{name: "unknown backend", content: "[storage]\nbackend = \"mongo\"\n"},
		{name: "bad port", content: "[server]\nhttp_port = 70000\n[storage]\nbackend = \"memory\"\n"},
		{name: "events without url", content: "[storage]\nbackend = \"memory\"\n[events]\nenabled = true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadGateway(t *testing.T) {
	cfg, err := LoadGateway(writeFile(t, `
[upstream]
url = "http://localhost:8080"

[rate_limit]
enabled = true
backend = "redis"
redis_addr = "localhost:6379"
rps = 5
window = 2
`))
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Upstream.Timeout)
	assert.Equal(t, 20, cfg.RateLimit.Limit())
	assert.Equal(t, 10000, cfg.RateLimit.MaxKeys)
	assert.Equal(t, "shareit-gateway", cfg.Metrics.ServiceName)
}

func TestLoadGateway_Invalid(t *testing.T) {
	_, err := LoadGateway(writeFile(t, "[server]\nhttp_port = 8081\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadGateway(writeFile(t, `
[upstream]
url = "http://localhost:8080"
[rate_limit]
enabled = true
backend = "redis"
`))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
