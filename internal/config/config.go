// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the CLI configuration. Values come from a config file,
// JOBBOARD_* environment variables, or CLI flags, in ascending precedence.
// All fields are optional; missing values use defaults.
type Config struct {
	// API
	BaseURL     string `mapstructure:"base_url"`    // Backend base URL (without /api)
	Environment string `mapstructure:"environment"` // "development" or "production"

	// Credentials
	APIKey      string `mapstructure:"api_key"`      // Gemini API key for assist features
	DatabaseURL string `mapstructure:"database_url"` // PostgreSQL URL for the draft store

	// Behavior
	UseBrowser     bool `mapstructure:"use_browser"`     // Use headless browser for SPA job boards
	Verbose        bool `mapstructure:"verbose"`         // Print detailed debug information
	TimeoutSeconds int  `mapstructure:"timeout_seconds"` // HTTP request timeout
}

// Load reads configuration from the given file (optional) and the
// environment. An empty path skips the file and uses env vars and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	// Every key needs a default registered or AutomaticEnv will not surface
	// it through Unmarshal.
	v.SetDefault("base_url", "http://localhost:8000")
	v.SetDefault("environment", "production")
	v.SetDefault("timeout_seconds", 30)
	v.SetDefault("api_key", "")
	v.SetDefault("database_url", "")
	v.SetDefault("use_browser", false)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix("JOBBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: this doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Environment != "" && c.Environment != "development" && c.Environment != "production" {
		return fmt.Errorf("config error: 'environment' must be 'development' or 'production'")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.BaseURL != "" && !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("config error: 'base_url' must start with http:// or https://")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.Environment == "" {
		result.Environment = defaults.Environment
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
