package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds all configurable timeout values.
// These values can be customized via environment variables.
type Timeouts struct {
	Request           time.Duration // Timeout for a single API request
	RetryMaxAttempts  int           // Maximum number of retry attempts for retryable API failures
	RetryInitialDelay time.Duration // Initial delay between retries
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is
// used. The 45s request default matches the API timeout the upstream
// cloudscale.ch tooling ships with.
//
// Environment Variables:
//   - CLOUDSCALE_API_TIMEOUT (default: 45s)
//   - CLOUDSCALE_RETRY_MAX_ATTEMPTS (default: 3)
//   - CLOUDSCALE_RETRY_INITIAL_DELAY (default: 1s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		Request:           parseDuration("CLOUDSCALE_API_TIMEOUT", 45*time.Second),
		RetryMaxAttempts:  parseInt("CLOUDSCALE_RETRY_MAX_ATTEMPTS", 3),
		RetryInitialDelay: parseDuration("CLOUDSCALE_RETRY_INITIAL_DELAY", 1*time.Second),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}
