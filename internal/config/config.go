// Package config provides configuration loading and validation for the service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the service configuration. It can be loaded from a
// JSON file, overridden by environment variables, and defaulted field by
// field; all fields are optional.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Oracle
	APIKey        string `json:"api_key,omitempty"`        // Gemini API key
	LiteModel     string `json:"lite_model,omitempty"`     // model for extraction tasks
	StandardModel string `json:"standard_model,omitempty"` // model for judgment tasks

	// Logging
	LogJSON bool `json:"log_json,omitempty"` // JSON log encoding instead of console
	Verbose bool `json:"verbose,omitempty"`  // debug-level logging

	// Rate limiting
	RateLimitPerMinute int `json:"rate_limit_per_minute,omitempty"` // requests per client per minute
	RateLimitBurst     int `json:"rate_limit_burst,omitempty"`      // burst capacity
}

// Defaults returns the built-in configuration defaults.
func Defaults() Config {
	return Config{
		Port:               8080,
		RateLimitPerMinute: 60,
		RateLimitBurst:     10,
	}
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

// ApplyEnv overlays environment variables onto the config. Environment
// values win over file values; empty environment variables are ignored.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("LOG_JSON"); v != "" {
		c.LogJSON = v == "1" || v == "true"
	}
	if v := os.Getenv("VERBOSE"); v != "" {
		c.Verbose = v == "1" || v == "true"
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("config error: 'rate_limit_per_minute' must be non-negative")
	}
	if c.RateLimitBurst < 0 {
		return fmt.Errorf("config error: 'rate_limit_burst' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled
// from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.LiteModel == "" {
		result.LiteModel = defaults.LiteModel
	}
	if result.StandardModel == "" {
		result.StandardModel = defaults.StandardModel
	}
	if result.RateLimitPerMinute == 0 {
		result.RateLimitPerMinute = defaults.RateLimitPerMinute
	}
	if result.RateLimitBurst == 0 {
		result.RateLimitBurst = defaults.RateLimitBurst
	}

	return result
}
