// Package config loads the rpcbind CLI configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Language string         `yaml:"language"` // "en" or "ja"
	Dispatch DispatchConfig `yaml:"dispatch"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// LoggingConfig configures zerolog output.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or console
}

// DispatchConfig configures message routing.
type DispatchConfig struct {
	AllowInvalid        bool `yaml:"allow_invalid"`
	RejectDuplicateKeys bool `yaml:"reject_duplicate_keys"`
}

// MetricsConfig configures counter collection.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"` // Report routing counters after a run
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return finish(&cfg)
}

// LoadWithFallback loads path when it is set, and otherwise builds the
// configuration from defaults and RPCBIND_* environment variables.
//
// Environment variables:
//
//	RPCBIND_LOG_LEVEL      - debug, info, warn, error (default: info)
//	RPCBIND_LOG_FORMAT     - json or console (default: console)
//	RPCBIND_LANG           - issue message language: en or ja (default: en)
//	RPCBIND_ALLOW_INVALID  - deliver messages that fail validation
//	RPCBIND_REJECT_DUPLICATE_KEYS - fail payloads with repeated object keys
//	RPCBIND_METRICS        - report routing counters after a run
func LoadWithFallback(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	return finish(&Config{})
}

func finish(cfg *Config) (*Config, error) {
	applyEnvOverrides(cfg)
	setDefaults(cfg)
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies RPCBIND_* environment variables. They always
// override file-based configuration.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RPCBIND_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("RPCBIND_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("RPCBIND_LANG"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("RPCBIND_ALLOW_INVALID"); v != "" {
		cfg.Dispatch.AllowInvalid = parseBool(v)
	}
	if v := os.Getenv("RPCBIND_REJECT_DUPLICATE_KEYS"); v != "" {
		cfg.Dispatch.RejectDuplicateKeys = parseBool(v)
	}
	if v := os.Getenv("RPCBIND_METRICS"); v != "" {
		cfg.Metrics.Enabled = parseBool(v)
	}
}

func parseBool(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "true" || v == "1" || v == "yes" || v == "on"
}

func setDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.Language == "" {
		cfg.Language = "en"
	}
}

func validate(cfg *Config) error {
	if _, err := zerolog.ParseLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if cfg.Logging.Format != "json" && cfg.Logging.Format != "console" {
		return fmt.Errorf("logging.format must be 'json' or 'console', got %q", cfg.Logging.Format)
	}
	if cfg.Language != "en" && cfg.Language != "ja" {
		return fmt.Errorf("language must be 'en' or 'ja', got %q", cfg.Language)
	}
	return nil
}

// Level returns the parsed log level. Load has already validated it.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Logging.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
