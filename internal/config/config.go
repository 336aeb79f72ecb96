// ABOUTME: Runtime configuration loaded from the environment.
// ABOUTME: Handles the SportRadar credential, base URL, and timeout.

package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// ErrMissingAPIKey is returned by Validate when no credential is configured.
var ErrMissingAPIKey = errors.New("SPORTRADAR_API_KEY environment variable is required")

// Config stores the settings for talking to the SportRadar MLB API.
type Config struct {
	// APIKey is the SportRadar credential, attached to every request as an
	// api_key query parameter. Required.
	APIKey string `env:"SPORTRADAR_API_KEY"`

	// BaseURL points at the MLB v8 API root.
	BaseURL string `env:"SPORTRADAR_BASE_URL" envDefault:"https://api.sportradar.com/mlb/trial/v8"`

	// Timeout is the per-request budget for upstream calls.
	Timeout time.Duration `env:"SPORTRADAR_TIMEOUT" envDefault:"30s"`

	// LogLevel controls logger verbosity ("debug", "info", "warn", "error").
	LogLevel string `env:"MLB_LOG_LEVEL" envDefault:"debug"`
}

// Load reads configuration from the environment, first applying a local
// .env file when one exists. A missing .env is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the startup preconditions. The only hard requirement is
// a non-empty credential.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
