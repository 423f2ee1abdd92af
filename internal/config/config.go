// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gridcalc/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// System contains default system base quantities
	System SystemConfig `json:"system"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (text, json, markdown)
	DefaultFormat string `json:"default_format"`

	// NoColor disables ANSI colors in text output
	NoColor bool `json:"no_color"`
}

// SystemConfig contains default per-unit system bases
type SystemConfig struct {
	// BaseMVA is the default system apparent-power base
	BaseMVA float64 `json:"base_mva"`

	// BaseKV is the default system voltage base (line-line)
	BaseKV float64 `json:"base_kv"`

	// Frequency is the nominal system frequency in Hz
	Frequency float64 `json:"frequency_hz"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			DefaultFormat: "text",
			NoColor:       false,
		},
		System: SystemConfig{
			BaseMVA:   100,
			BaseKV:    132,
			Frequency: 50,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".gridcalc.json")
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
