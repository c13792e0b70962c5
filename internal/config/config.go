// Package config loads the optional YAML configuration for the bigo CLI and
// server. Missing files are not an error: defaults apply.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full configuration tree.
type Config struct {
	Server ServerConfig `yaml:"server" json:"server"`
	Output OutputConfig `yaml:"output" json:"output"`
	Enrich EnrichConfig `yaml:"enrich" json:"enrich"`
	Watch  WatchConfig  `yaml:"watch" json:"watch"`
}

type ServerConfig struct {
	// Port the HTTP transport listens on.
	Port int `yaml:"port" json:"port"`

	// HistoryDB is the SQLite path for the analysis history. Empty disables
	// history entirely.
	HistoryDB string `yaml:"history_db,omitempty" json:"history_db,omitempty"`
}

type OutputConfig struct {
	// Format is the default CLI output format: json or text.
	Format string `yaml:"format" json:"format"`

	// Colors enables colorized text reports.
	Colors bool `yaml:"colors" json:"colors"`
}

type EnrichConfig struct {
	// Script is a Risor script evaluated over each summary document.
	Script string `yaml:"script,omitempty" json:"script,omitempty"`
}

type WatchConfig struct {
	// DebounceMS collapses bursts of file events into one re-analysis.
	DebounceMS int `yaml:"debounce_ms" json:"debounce_ms"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 7001},
		Output: OutputConfig{Format: "json", Colors: true},
		Watch:  WatchConfig{DebounceMS: 500},
	}
}

// LoadConfig loads configuration from configPath, or from the first config
// file found in the usual locations, or returns the defaults.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", configPath, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", configPath, err)
	}
	return cfg, nil
}

// findConfigFile looks for config files in common locations.
func findConfigFile() string {
	possiblePaths := []string{
		".bigo.yml",
		".bigo.yaml",
		"bigo.yml",
		"bigo.yaml",
	}
	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Output.Format != "json" && c.Output.Format != "text" {
		return fmt.Errorf("invalid output format %q (valid: json, text)", c.Output.Format)
	}
	if c.Watch.DebounceMS < 0 {
		return fmt.Errorf("debounce_ms must not be negative")
	}
	return nil
}
