// Package config loads fipctl configuration from an optional YAML file
// with environment variable fallbacks.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default API endpoint and environment variable names. The variable
// names match what the cloudscale.ch tooling ecosystem already uses so
// existing credentials keep working.
const (
	DefaultAPIURL = "https://api.cloudscale.ch/v1"

	EnvAPIToken = "CLOUDSCALE_API_TOKEN"
	EnvAPIURL   = "CLOUDSCALE_API_URL"
)

// Config holds the settings needed to talk to the cloudscale.ch API.
type Config struct {
	// APIToken authenticates all API requests. Required.
	APIToken string `yaml:"api_token"`

	// APIURL is the API base URL, without a trailing slash.
	APIURL string `yaml:"api_url"`
}

// Load builds the configuration from an optional YAML file at path,
// then fills unset fields from the environment and defaults. An empty
// path skips the file entirely.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		// #nosec G304
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	}

	if cfg.APIToken == "" {
		cfg.APIToken = os.Getenv(EnvAPIToken)
	}
	if cfg.APIURL == "" {
		cfg.APIURL = os.Getenv(EnvAPIURL)
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.APIToken == "" {
		return fmt.Errorf("no API token configured: set %s or api_token in the config file", EnvAPIToken)
	}
	if c.APIURL == "" {
		return fmt.Errorf("no API URL configured")
	}
	return nil
}
