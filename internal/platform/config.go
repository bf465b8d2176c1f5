package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the optional on-disk configuration consumed by the CLI.
type Config struct {
	// Dir is the storage location (directory for the file adapter,
	// database file for sqlite).
	Dir string `yaml:"dir"`

	// Adapter names the storage backend. Empty means "file".
	Adapter string `yaml:"adapter"`
}

// DefaultDataDir resolves where notes live when the user does not say:
// the "quill" subdirectory of the platform config dir.
func DefaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(base, "quill"), nil
}

// DefaultConfigPath is where LoadConfig looks when given an empty path.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LoadConfig reads the YAML config at path ("" selects the default
// location). A missing file is not an error: it yields a zero Config.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return Config{}, err
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
