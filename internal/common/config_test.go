package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, 8080, config.Server.Port)
	assert.NotEmpty(t, config.Data.BaseURL)
	assert.Equal(t, "0 22 * * 1-5", config.Data.RefreshSchedule)
	assert.Equal(t, 30*time.Second, config.Data.GetTimeout())
	assert.False(t, config.IsProduction())
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "richelieu.toml")
	content := `
environment = "production"

[server]
host = "127.0.0.1"
port = 9090

[data]
base_url = "https://example.test/data"
timeout = "10s"
rate_limit = 5

[logging]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "production", config.Environment)
	assert.True(t, config.IsProduction())
	assert.Equal(t, "127.0.0.1", config.Server.Host)
	assert.Equal(t, 9090, config.Server.Port)
	assert.Equal(t, "https://example.test/data", config.Data.BaseURL)
	assert.Equal(t, 10*time.Second, config.Data.GetTimeout())
	assert.Equal(t, 5, config.Data.RateLimit)
	assert.Equal(t, "debug", config.Logging.Level)

	// Unset fields keep their defaults.
	assert.Equal(t, "0 22 * * 1-5", config.Data.RefreshSchedule)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, config.Server.Port)
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("not == toml"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("RICHELIEU_ENV", "production")
	t.Setenv("RICHELIEU_PORT", "7070")
	t.Setenv("RICHELIEU_LOG_LEVEL", "warn")
	t.Setenv("RICHELIEU_DATA_URL", "https://override.test/data")
	t.Setenv("RICHELIEU_REFRESH_SCHEDULE", "0 6 * * *")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", config.Environment)
	assert.Equal(t, 7070, config.Server.Port)
	assert.Equal(t, "warn", config.Logging.Level)
	assert.Equal(t, "https://override.test/data", config.Data.BaseURL)
	assert.Equal(t, "0 6 * * *", config.Data.RefreshSchedule)
}

func TestEnvOverrideInvalidPortIgnored(t *testing.T) {
	t.Setenv("RICHELIEU_PORT", "not-a-port")

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, config.Server.Port)
}

func TestGetTimeoutFallback(t *testing.T) {
	dc := DataConfig{Timeout: "garbage"}
	assert.Equal(t, 30*time.Second, dc.GetTimeout())
}
