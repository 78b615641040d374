// Copyright 2026 The Labreserve Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the labreserve
// client.
//
// Configuration is loaded from a single YAML file specified by:
//   - LABRESERVE_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. Individual values can
// be overridden by command-line flags, which take precedence over the
// file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// defaultTimeoutSeconds is the per-request deadline used when the
// config file does not set one.
const defaultTimeoutSeconds = 15

// Config is the client configuration.
type Config struct {
	// Service configures the reservation backend endpoint.
	Service ServiceConfig `yaml:"service"`

	// Log configures background logging.
	Log LogConfig `yaml:"log"`
}

// ServiceConfig configures the reservation backend endpoint.
type ServiceConfig struct {
	// BaseURL is the origin of the reservation backend. Required.
	// Must use HTTPS.
	BaseURL string `yaml:"base_url"`

	// TimeoutSeconds is the fixed per-request deadline.
	// Default: 15.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// LogConfig configures background logging.
type LogConfig struct {
	// Output is a file path receiving JSON log records. Empty disables
	// background logging (the TUI cannot log to stderr without
	// corrupting the display).
	Output string `yaml:"output"`
}

// Timeout returns the per-request deadline as a duration.
func (c ServiceConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Default returns the configuration used when no config file is given.
// The base URL has no default and must come from the file or a flag.
func Default() Config {
	return Config{
		Service: ServiceConfig{TimeoutSeconds: defaultTimeoutSeconds},
	}
}

// Load reads and validates a config file. Missing optional fields are
// filled with defaults; a missing base URL is left empty for a flag to
// supply and is validated later by Validate.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	loaded := Default()
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&loaded); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if loaded.Service.TimeoutSeconds <= 0 {
		loaded.Service.TimeoutSeconds = defaultTimeoutSeconds
	}

	return loaded, nil
}

// Validate checks that the configuration is complete enough to build a
// transport client.
func (c Config) Validate() error {
	if c.Service.BaseURL == "" {
		return fmt.Errorf("config: service base URL is required (set service.base_url or pass --base-url)")
	}
	if !strings.HasPrefix(c.Service.BaseURL, "https://") {
		return fmt.Errorf("config: service base URL must use HTTPS (got %q)", c.Service.BaseURL)
	}
	return nil
}
