// ABOUTME: Tests for configuration loading and validation.
// ABOUTME: Verifies env parsing, defaults, and the required-credential check.

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears a variable for the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	_ = os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SPORTRADAR_API_KEY", "test-key")
	unsetEnv(t, "SPORTRADAR_BASE_URL")
	unsetEnv(t, "SPORTRADAR_TIMEOUT")
	unsetEnv(t, "MLB_LOG_LEVEL")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "https://api.sportradar.com/mlb/trial/v8", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SPORTRADAR_API_KEY", "test-key")
	t.Setenv("SPORTRADAR_BASE_URL", "http://localhost:9090/mlb")
	t.Setenv("SPORTRADAR_TIMEOUT", "5s")
	unsetEnv(t, "MLB_LOG_LEVEL")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9090/mlb", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadBadTimeout(t *testing.T) {
	t.Setenv("SPORTRADAR_API_KEY", "test-key")
	t.Setenv("SPORTRADAR_TIMEOUT", "not-a-duration")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateMissingKey(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestValidateWithKey(t *testing.T) {
	cfg := &Config{APIKey: "abc123"}
	assert.NoError(t, cfg.Validate())
}
