// Copyright 2026 Author(s) of MCP Any
// SPDX-License-Identifier: Apache-2.0

package config

import "fmt"

// ConfigurationError reports a configuration value that prevents the server
// from starting. It includes a suggestion for fixing the issue.
type ConfigurationError struct {
	Field      string
	Reason     string
	Suggestion string
}

// Error implements the error interface.
//
// Returns the error message including the suggestion.
func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
	if e.Suggestion != "" {
		msg += fmt.Sprintf("\n\t-> Fix: %s", e.Suggestion)
	}
	return msg
}
