package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api", cfg.APIURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DRAMAHUB_API_URL", "https://api.dramahub.example/api")
	t.Setenv("DRAMAHUB_TIMEOUT", "30s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.dramahub.example/api", cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigBadDuration(t *testing.T) {
	t.Setenv("DRAMAHUB_TIMEOUT", "soon")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/console.env"
	require.NoError(t, os.WriteFile(path, []byte("DRAMAHUB_API_URL=https://staging.dramahub.example/api\n"), 0o600))
	// godotenv sets process env; undo so later tests see the defaults again
	t.Cleanup(func() { os.Unsetenv("DRAMAHUB_API_URL") })

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://staging.dramahub.example/api", cfg.APIURL)
}

func TestValidateRejectsRelativeURL(t *testing.T) {
	cfg := &Config{APIURL: "/api", Timeout: time.Second, LogLevel: "info", LogFormat: "text"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DRAMAHUB_API_URL")
}

func TestValidateRejectsUnknownLogLevel(t *testing.T) {
	cfg := &Config{APIURL: "http://localhost:8080", Timeout: time.Second, LogLevel: "loud", LogFormat: "text"}
	assert.Error(t, cfg.Validate())
}
