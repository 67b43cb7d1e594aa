package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hengadev/entx/internal/codegen"
)

const (
	// DefaultConfigPath is used when neither -config nor ENTX_GEN_CONFIG is set.
	DefaultConfigPath = "entx.yaml"
	// EnvConfigPath names the environment variable overriding the config path.
	EnvConfigPath = "ENTX_GEN_CONFIG"
)

// Config represents the configuration for the code generator
type Config struct {
	Version    string                   `yaml:"version"`
	Generation GenerationConfig         `yaml:"generation"`
	Packages   map[string]PackageConfig `yaml:"packages"`
}

// GenerationConfig holds general generation settings
type GenerationConfig struct {
	OutputSuffix string `yaml:"output_suffix"`
	ImportPath   string `yaml:"import_path"`
	Receiver     string `yaml:"receiver"`
}

// PackageConfig holds per-package overrides
type PackageConfig struct {
	OutputDir string `yaml:"output_dir"`
	Skip      bool   `yaml:"skip"`
}

// configPath returns the config path from the environment, or the default.
func configPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	return DefaultConfigPath
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with empty config, not defaults
	config := &Config{
		Packages: make(map[string]PackageConfig),
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// LoadConfigOrDefault loads path when it exists and falls back to the default
// configuration otherwise. A file that exists but fails to parse or validate
// is an error.
func LoadConfigOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	config, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Generation: GenerationConfig{
			OutputSuffix: "_entx",
			ImportPath:   codegen.DefaultImportPath,
			Receiver:     "e",
		},
		Packages: make(map[string]PackageConfig),
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Version is optional - default to "1" if not set
	if c.Version == "" {
		c.Version = "1"
	}

	if c.Generation.OutputSuffix == "" {
		return fmt.Errorf("output_suffix cannot be empty")
	}

	if !isValidOutputSuffix(c.Generation.OutputSuffix) {
		return fmt.Errorf("output_suffix must start with underscore or letter")
	}

	if c.Generation.ImportPath == "" {
		c.Generation.ImportPath = codegen.DefaultImportPath
	}

	if strings.ContainsAny(c.Generation.ImportPath, " \t\"") {
		return fmt.Errorf("import_path must not contain whitespace or quotes")
	}

	if c.Generation.Receiver == "" {
		c.Generation.Receiver = "e"
	}

	if !isValidGoIdentifier(c.Generation.Receiver) {
		return fmt.Errorf("receiver must be a valid Go identifier")
	}

	if c.Generation.Receiver == "entx" {
		return fmt.Errorf("receiver cannot shadow the entx import")
	}

	for pkg, pkgConfig := range c.Packages {
		if pkgConfig.OutputDir != "" && strings.TrimSpace(pkgConfig.OutputDir) == "" {
			return fmt.Errorf("output_dir for package %s cannot be blank", pkg)
		}
	}

	return nil
}

// isValidGoIdentifier checks if a string is a valid Go identifier
func isValidGoIdentifier(s string) bool {
	if s == "" {
		return false
	}

	// Must start with letter or underscore
	first := rune(s[0])
	if !((first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z') || first == '_') {
		return false
	}

	// Rest can be letters, digits, or underscores
	for _, r := range s[1:] {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_') {
			return false
		}
	}

	return true
}

// isValidOutputSuffix checks if output suffix is valid
func isValidOutputSuffix(s string) bool {
	if s == "" {
		return false
	}

	// Must start with underscore or letter
	first := rune(s[0])
	return (first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z') || first == '_'
}

// ToCodegenConfig converts the YAML config to the codegen GenerationConfig
func (gc GenerationConfig) ToCodegenConfig(version string) codegen.GenerationConfig {
	return codegen.GenerationConfig{
		ImportPath:       gc.ImportPath,
		Receiver:         gc.Receiver,
		GeneratorVersion: version,
	}
}
