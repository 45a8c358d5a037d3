// Copyright 2026 Author(s) of MCP Any
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg := Load()
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Empty(t, cfg.APIKey)
}

func TestLoadFromViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("api-key", "sk_live_123")
	viper.Set("base-url", "https://uploads.internal:8443")
	viper.Set("log-level", "debug")
	viper.Set("timeout", "30s")

	cfg := Load()
	assert.Equal(t, "sk_live_123", cfg.APIKey)
	assert.Equal(t, "https://uploads.internal:8443", cfg.BaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestValidateMissingAPIKey(t *testing.T) {
	cfg := &Config{BaseURL: DefaultBaseURL}

	err := cfg.Validate()
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "api-key", cfgErr.Field)
	assert.Contains(t, err.Error(), "UPLOADER_API_KEY")
}

func TestValidateBadBaseURL(t *testing.T) {
	for _, badURL := range []string{"not a url", "/relative/path", "http://"} {
		cfg := &Config{APIKey: "k", BaseURL: badURL}

		err := cfg.Validate()
		require.Error(t, err, "base URL %q should be rejected", badURL)

		var cfgErr *ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "base-url", cfgErr.Field)
	}
}

func TestValidateOK(t *testing.T) {
	cfg := &Config{APIKey: "k", BaseURL: DefaultBaseURL}
	require.NoError(t, cfg.Validate())
}
