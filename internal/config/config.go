// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Input
	Quiz   string `json:"quiz,omitempty"`   // Path to quiz answers JSON file
	Output string `json:"output,omitempty"` // Path to write the roadmap JSON to

	// Behavior
	APIKey          string `json:"api_key,omitempty"`          // Gemini API key
	DatabaseURL     string `json:"database_url,omitempty"`     // PostgreSQL connection URL
	Verbose         bool   `json:"verbose,omitempty"`          // Print detailed debug information
	EnrichCitations bool   `json:"enrich_citations,omitempty"` // Fetch cited pages to resolve titles
	RenderJS        bool   `json:"render_js,omitempty"`        // Render citation pages in a headless browser

	// Server
	Port int `json:"port,omitempty"` // HTTP server port

	// Batch
	Concurrency int `json:"concurrency,omitempty"` // Concurrent plans in batch mode
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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
// Required fields are not checked here; CLI flag validation handles
// those after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}

	if c.Quiz != "" {
		if _, err := os.Stat(c.Quiz); os.IsNotExist(err) {
			return fmt.Errorf("config error: quiz file not found: %s", c.Quiz)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Quiz == "" {
		result.Quiz = defaults.Quiz
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	if !result.EnrichCitations {
		result.EnrichCitations = defaults.EnrichCitations
	}
	if !result.RenderJS {
		result.RenderJS = defaults.RenderJS
	}

	return result
}
