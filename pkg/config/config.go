// Copyright 2026 Author(s) of MCP Any
// SPDX-License-Identifier: Apache-2.0

// Package config holds the process configuration for the uploader server.
package config

import (
	"net/url"
	"time"

	"github.com/spf13/viper"
)

// DefaultBaseURL is the production endpoint of the uploads API.
const DefaultBaseURL = "https://api.uploads.dev"

// DefaultTimeout bounds a single uploads-API request.
const DefaultTimeout = 120 * time.Second

// Config carries every value the server needs at startup. It is constructed
// once, validated once, and passed by reference into the application; it is
// never mutated afterwards.
type Config struct {
	// APIKey is the pre-issued uploads-API access token. Required.
	APIKey string
	// BaseURL is the uploads-API endpoint.
	BaseURL string
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string
	// LogFormat is "text" or "json".
	LogFormat string
	// Timeout bounds a single uploads-API HTTP request.
	Timeout time.Duration
}

// Load builds a Config from the current viper state. Flags are expected to
// be bound by the command layer; environment variables resolve through the
// UPLOADER_ prefix (e.g. UPLOADER_API_KEY).
//
// Returns:
//   - *Config: The resolved configuration. Call Validate before use.
func Load() *Config {
	cfg := &Config{
		APIKey:    viper.GetString("api-key"),
		BaseURL:   viper.GetString("base-url"),
		LogLevel:  viper.GetString("log-level"),
		LogFormat: viper.GetString("log-format"),
		Timeout:   viper.GetDuration("timeout"),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return cfg
}

// Validate checks the invariants the rest of the process relies on. It is
// called exactly once at startup, before any tool is registered; tool
// handlers never re-validate the credential.
//
// Returns:
//   - error: A *ConfigurationError describing the first violated invariant,
//     or nil.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return &ConfigurationError{
			Field:      "api-key",
			Reason:     "uploads-API access token is missing",
			Suggestion: "set UPLOADER_API_KEY or pass --api-key",
		}
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return &ConfigurationError{
			Field:      "base-url",
			Reason:     "not an absolute URL",
			Suggestion: "use a value like " + DefaultBaseURL,
		}
	}
	return nil
}
