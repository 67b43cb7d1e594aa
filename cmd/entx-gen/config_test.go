package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigValidFile(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "entx.yaml")

	configContent := `
generation:
  output_suffix: "_table"
  import_path: "example.com/fork/entx"
  receiver: "m"

packages:
  "./internal":
    skip: false
    output_dir: "./gen"
  "./test":
    skip: true
`

	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0644))

	config, err := LoadConfig(configFile)
	require.NoError(t, err)

	assert.Equal(t, "_table", config.Generation.OutputSuffix)
	assert.Equal(t, "example.com/fork/entx", config.Generation.ImportPath)
	assert.Equal(t, "m", config.Generation.Receiver)

	assert.Len(t, config.Packages, 2)
	assert.False(t, config.Packages["./internal"].Skip)
	assert.Equal(t, "./gen", config.Packages["./internal"].OutputDir)
	assert.True(t, config.Packages["./test"].Skip)
}

func TestLoadConfigNonExistentFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "invalid.yaml")

	err := os.WriteFile(configFile, []byte(`
invalid: yaml: content:
  - missing
    proper: indentation
`), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(configFile)
	assert.Error(t, err)
}

func TestLoadConfigEmptyFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(""), 0644))

	config, err := LoadConfig(configFile)
	require.NoError(t, err)

	assert.NotNil(t, config)
	assert.Empty(t, config.Generation.OutputSuffix)
	assert.Empty(t, config.Generation.ImportPath)
	assert.Empty(t, config.Packages)
}

func TestLoadConfigOrDefault(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		config, err := LoadConfigOrDefault(filepath.Join(t.TempDir(), "entx.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), config)
	})

	t.Run("invalid file is an error", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "entx.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("generation:\n  output_suffix: \"9x\"\n"), 0644))

		_, err := LoadConfigOrDefault(configFile)
		assert.ErrorContains(t, err, "output_suffix must start with underscore or letter")
	})

	t.Run("partial file gets defaults applied", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "entx.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("generation:\n  output_suffix: \"_gen\"\n"), 0644))

		config, err := LoadConfigOrDefault(configFile)
		require.NoError(t, err)
		assert.Equal(t, "_gen", config.Generation.OutputSuffix)
		assert.Equal(t, "github.com/hengadev/entx", config.Generation.ImportPath)
		assert.Equal(t, "e", config.Generation.Receiver)
		assert.Equal(t, "1", config.Version)
	})
}

func TestConfigPathFromEnvironment(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	assert.Equal(t, DefaultConfigPath, configPath())

	t.Setenv(EnvConfigPath, "/etc/entx/gen.yaml")
	assert.Equal(t, "/etc/entx/gen.yaml", configPath())
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "_entx", config.Generation.OutputSuffix)
	assert.Equal(t, "github.com/hengadev/entx", config.Generation.ImportPath)
	assert.Equal(t, "e", config.Generation.Receiver)
	assert.Empty(t, config.Packages)
	assert.NoError(t, config.Validate())
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
		errorMsg    string
	}{
		{
			name: "Valid config",
			config: Config{
				Generation: GenerationConfig{OutputSuffix: "_entx", Receiver: "u"},
			},
		},
		{
			name:        "Empty output suffix",
			config:      Config{},
			expectError: true,
			errorMsg:    "output_suffix cannot be empty",
		},
		{
			name: "Output suffix starting with digit",
			config: Config{
				Generation: GenerationConfig{OutputSuffix: "1gen"},
			},
			expectError: true,
			errorMsg:    "output_suffix must start with underscore or letter",
		},
		{
			name: "Receiver is not an identifier",
			config: Config{
				Generation: GenerationConfig{OutputSuffix: "_entx", Receiver: "my-recv"},
			},
			expectError: true,
			errorMsg:    "receiver must be a valid Go identifier",
		},
		{
			name: "Receiver shadows import",
			config: Config{
				Generation: GenerationConfig{OutputSuffix: "_entx", Receiver: "entx"},
			},
			expectError: true,
			errorMsg:    "receiver cannot shadow the entx import",
		},
		{
			name: "Import path with spaces",
			config: Config{
				Generation: GenerationConfig{OutputSuffix: "_entx", ImportPath: "not a path"},
			},
			expectError: true,
			errorMsg:    "import_path must not contain whitespace or quotes",
		},
		{
			name: "Blank package output dir",
			config: Config{
				Generation: GenerationConfig{OutputSuffix: "_entx"},
				Packages:   map[string]PackageConfig{"./models": {OutputDir: "   "}},
			},
			expectError: true,
			errorMsg:    "output_dir for package ./models cannot be blank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSaveConfig(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "entx.yaml")

	config := DefaultConfig()
	config.Packages["./models"] = PackageConfig{OutputDir: "./gen"}

	require.NoError(t, SaveConfig(config, configFile))

	loaded, err := LoadConfig(configFile)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestToCodegenConfig(t *testing.T) {
	gc := GenerationConfig{OutputSuffix: "_entx", ImportPath: "example.com/entx", Receiver: "m"}

	cfg := gc.ToCodegenConfig("2.0.0")
	assert.Equal(t, "example.com/entx", cfg.ImportPath)
	assert.Equal(t, "m", cfg.Receiver)
	assert.Equal(t, "2.0.0", cfg.GeneratorVersion)
}
