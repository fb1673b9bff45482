// Package config loads client configuration from an optional YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// envPrefix namespaces the override variables (SCRIPTCRAFT_API_BASEURL, ...).
const envPrefix = "SCRIPTCRAFT"

// Config is the full client configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// APIConfig describes the backend endpoint and the per-request bound.
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// StorageConfig selects the durable state backend.
type StorageConfig struct {
	// Backend is one of "file", "redis", "memory".
	Backend  string `yaml:"backend"`
	FilePath string `yaml:"file_path"`
	RedisURL string `yaml:"redis_url"`
}

// LogConfig controls the zerolog setup.
type LogConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	Output     string `yaml:"output"`
	TimeFormat string `yaml:"time_format"`
	FilePath   string `yaml:"file_path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL:        "http://localhost:8080/api",
			TimeoutSeconds: 60,
		},
		Storage: StorageConfig{
			Backend:  "file",
			FilePath: ".scriptcraft/state.json",
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "console",
			Output:     "stderr",
			TimeFormat: "rfc3339",
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (a
// missing file is fine), then environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("error parsing YAML: %w", err)
			}
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("error processing environment configuration: %w", err)
	}

	if cfg.API.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("api timeout must be positive, got %d", cfg.API.TimeoutSeconds)
	}
	return &cfg, nil
}
