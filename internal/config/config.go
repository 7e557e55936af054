// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/taxdoc-finalizer/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Input  string `json:"input,omitempty"`  // Directory scanned recursively for *.json records
	Output string `json:"output,omitempty"` // Directory the finalized catalog is written to

	// Behavior
	DefaultType string `json:"default_type,omitempty" validate:"omitempty,oneof=paystub w2 1120"` // Kind assigned when classification finds no signal
	Workers     int    `json:"workers,omitempty" validate:"min=0"`                                // Record-processing worker count
	Verbose     bool   `json:"verbose,omitempty"`                                                 // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"`                                            // PostgreSQL connection URL for run persistence
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are checked after CLI flag merging, not here.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input directory not found: %s", c.Input)
		}
	}

	return nil
}

// DefaultKind resolves the configured default document kind, falling back to
// the classifier's zero value when unset.
func (c *Config) DefaultKind() types.DocumentKind {
	return types.DocumentKind(c.DefaultType)
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.DefaultType == "" {
		result.DefaultType = defaults.DefaultType
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
