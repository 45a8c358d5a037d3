// Copyright 2026 Author(s) of MCP Any
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitJSONFormat(t *testing.T) {
	ForTestsOnlyResetLogger()
	t.Cleanup(ForTestsOnlyResetLogger)

	var buf bytes.Buffer
	Init(slog.LevelInfo, &buf, "json")

	GetLogger().Info("hello", "key", "value")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
}

func TestInitRespectsLevel(t *testing.T) {
	ForTestsOnlyResetLogger()
	t.Cleanup(ForTestsOnlyResetLogger)

	var buf bytes.Buffer
	Init(slog.LevelWarn, &buf)

	GetLogger().Info("dropped")
	assert.Empty(t, buf.String())

	GetLogger().Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestInitOnlyOnce(t *testing.T) {
	ForTestsOnlyResetLogger()
	t.Cleanup(ForTestsOnlyResetLogger)

	var first, second bytes.Buffer
	Init(slog.LevelInfo, &first)
	Init(slog.LevelInfo, &second)

	GetLogger().Info("routed")
	assert.Contains(t, first.String(), "routed")
	assert.Empty(t, second.String())
}

func TestGetLoggerDefault(t *testing.T) {
	ForTestsOnlyResetLogger()
	t.Cleanup(ForTestsOnlyResetLogger)

	assert.NotNil(t, GetLogger())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARNING"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}
