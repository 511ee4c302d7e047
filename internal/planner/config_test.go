package planner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "http://localhost:8000", cfg.Endpoint)
	assert.Equal(t, 120000, cfg.PlanTimeoutMs)
	assert.Equal(t, 60000, cfg.ChatTimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
	assert.False(t, cfg.LogCalls)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "endpoint: http://planner.internal:9000\nchat_timeout_ms: 15000\nlog_calls: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("ITINERO_CONFIG", path)

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "http://planner.internal:9000", cfg.Endpoint)
	assert.Equal(t, 15000, cfg.ChatTimeoutMs)
	assert.True(t, cfg.LogCalls)
	// untouched keys keep defaults
	assert.Equal(t, 120000, cfg.PlanTimeoutMs)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint: http://from-file:9000\n"), 0o644))
	t.Setenv("ITINERO_CONFIG", path)
	t.Setenv("ITINERO_ENDPOINT", "http://from-env:7000")
	t.Setenv("ITINERO_MAX_RETRIES", "3")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "http://from-env:7000", cfg.Endpoint)
	assert.Equal(t, 3, cfg.MaxRetries)
}

func TestLoadConfig_MissingFileIsFine(t *testing.T) {
	t.Setenv("ITINERO_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Endpoint, cfg.Endpoint)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint: [unclosed\n"), 0o644))
	t.Setenv("ITINERO_CONFIG", path)

	_, err := LoadConfig()

	assert.Error(t, err)
}

func TestApplyEnv_IgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("ITINERO_PLAN_TIMEOUT_MS", "not-a-number")
	t.Setenv("ITINERO_CHAT_TIMEOUT_MS", "-5")

	cfg := DefaultConfig()
	applyEnv(&cfg)

	assert.Equal(t, 120000, cfg.PlanTimeoutMs)
	assert.Equal(t, 60000, cfg.ChatTimeoutMs)
}
