package entx

import (
	"fmt"
	"os"
)

// Environment variables read by LoadConfigFromEnvironment.
const (
	EnvIDAttribute   = "ENTX_ID_ATTRIBUTE"
	EnvIDSuffix      = "ENTX_ID_SUFFIX"
	EnvPathSeparator = "ENTX_PATH_SEPARATOR"
)

// LoadConfigFromEnvironment loads configuration from environment variables.
//
// Every variable is optional; unset variables keep their defaults:
//   - ENTX_ID_ATTRIBUTE (default: id)
//   - ENTX_ID_SUFFIX (default: _id)
//   - ENTX_PATH_SEPARATOR (default: .)
//
// Returns an error if the resulting configuration fails validation.
func LoadConfigFromEnvironment() (Config, error) {
	cfg := Config{
		IDAttribute:   getEnvOrDefault(EnvIDAttribute, DefaultIDAttribute),
		IDSuffix:      getEnvOrDefault(EnvIDSuffix, DefaultIDSuffix),
		PathSeparator: getEnvOrDefault(EnvPathSeparator, DefaultPathSeparator),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// getEnvOrDefault returns the value of an environment variable, or defaultValue
// if it is unset or empty.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
