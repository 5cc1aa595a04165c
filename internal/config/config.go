// Package config loads gencoder settings from defaults, rc files, the
// environment and command-line flags.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/HarshitR2004/GenCoder/internal/catalog"
)

// Config represents the gencoder configuration
type Config struct {
	Root            string  `mapstructure:"root" json:"root"`
	Format          string  `mapstructure:"format" json:"format"`
	Output          string  `mapstructure:"output" json:"output,omitempty"`
	FailOn          string  `mapstructure:"failOn" json:"failOn"`
	Quiet           bool    `mapstructure:"quiet" json:"quiet"`
	Verbose         bool    `mapstructure:"verbose" json:"verbose"`
	Concurrency     int     `mapstructure:"concurrency" json:"concurrency"`
	MaxSnippetBytes int64   `mapstructure:"maxSnippetBytes" json:"maxSnippetBytes"`
	FallbackType    string  `mapstructure:"fallbackType" json:"fallbackType"`
	MinScore        float64 `mapstructure:"minScore" json:"minScore"`
	LogLevel        string  `mapstructure:"logLevel" json:"logLevel"`
}

// ConfigFiles are tried in order; the first readable one wins.
var ConfigFiles = []string{".gencoderrc.json", ".gencoderrc.yaml", ".gencoderrc.yml"}

// EnvPrefix prefixes environment overrides (GENCODER_FORMAT, ...).
const EnvPrefix = "GENCODER"

// SetDefaults registers default values on the global viper instance.
func SetDefaults() {
	viper.SetDefault("root", ".")
	viper.SetDefault("format", "console")
	viper.SetDefault("failOn", "error")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("concurrency", 8)
	viper.SetDefault("maxSnippetBytes", 64*1024)
	viper.SetDefault("fallbackType", string(catalog.DefaultFallback))
	viper.SetDefault("minScore", 0)
	viper.SetDefault("logLevel", "warn")
}

// LoadConfig loads configuration from various sources
func LoadConfig(rootPath string) (*Config, error) {
	SetDefaults()

	for _, path := range ConfigFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
		break
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if rootPath != "" {
		config.Root = rootPath
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	switch config.Format {
	case "console", "json", "markdown":
	default:
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	switch config.FailOn {
	case "error", "warning", "info":
	default:
		return fmt.Errorf("invalid fail-on level: %s. Must be 'error', 'warning', or 'info'", config.FailOn)
	}

	if config.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}
	if config.MaxSnippetBytes < 1 {
		return fmt.Errorf("maxSnippetBytes must be at least 1")
	}
	if config.MinScore < 0 || config.MinScore > 100 {
		return fmt.Errorf("minScore must be between 0 and 100, got %v", config.MinScore)
	}
	if _, err := catalog.Parse(config.FallbackType); err != nil {
		return fmt.Errorf("invalid fallback type: %w", err)
	}

	switch config.LogLevel {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		return fmt.Errorf("invalid log level: %s", config.LogLevel)
	}
	return nil
}

// Fallback returns the parsed fallback problem type.
func (c *Config) Fallback() catalog.ProblemType {
	pt, err := catalog.Parse(c.FallbackType)
	if err != nil {
		return catalog.DefaultFallback
	}
	return pt
}

// SaveConfig saves the current configuration to a file
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0o644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}
