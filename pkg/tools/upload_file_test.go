// Copyright 2026 Author(s) of MCP Any
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcpany/uploader/pkg/uploadapi"
)

func TestUploadFileSuccess(t *testing.T) {
	svc, _, fs := newTestService(t)
	require.NoError(t, afero.WriteFile(fs, "/tmp/a.txt", []byte("hello"), 0o644))

	res, _, err := svc.UploadFile(context.Background(), nil, UploadFileInput{
		File:     "/tmp/a.txt",
		FileName: "a.txt",
		FileType: "text/plain",
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	text := resultText(t, res)
	assert.Contains(t, text, "successfully")
	assert.Contains(t, text, `"id": "f_1"`)
	assert.Contains(t, text, "https://cdn.uploads.dev/f_1")
}

func TestUploadFileMissingPath(t *testing.T) {
	svc, client, _ := newTestService(t)

	res, _, err := svc.UploadFile(context.Background(), nil, UploadFileInput{
		File:     "/tmp/missing.txt",
		FileName: "missing.txt",
		FileType: "text/plain",
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)

	text := resultText(t, res)
	assert.Contains(t, text, "failed")
	assert.Contains(t, text, "/tmp/missing.txt")
	assert.Contains(t, text, "file does not exist")

	// The read failure must never reach the network.
	assert.Zero(t, client.fileCalls)
}

func TestUploadFileRejectedByService(t *testing.T) {
	svc, client, fs := newTestService(t)
	require.NoError(t, afero.WriteFile(fs, "/tmp/a.txt", []byte("hello"), 0o644))
	client.rejectRefs["a.txt"] = "quota exhausted"

	res, _, err := svc.UploadFile(context.Background(), nil, UploadFileInput{
		File:     "/tmp/a.txt",
		FileName: "a.txt",
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "quota exhausted")
}

func TestUploadFileServiceFault(t *testing.T) {
	svc, client, fs := newTestService(t)
	require.NoError(t, afero.WriteFile(fs, "/tmp/a.txt", []byte("hello"), 0o644))
	client.batchErr = &uploadapi.ServiceError{Status: 503, Msg: "maintenance"}

	res, _, err := svc.UploadFile(context.Background(), nil, UploadFileInput{
		File:     "/tmp/a.txt",
		FileName: "a.txt",
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "maintenance")
}

func TestUploadFileNotIdempotent(t *testing.T) {
	svc, _, fs := newTestService(t)
	require.NoError(t, afero.WriteFile(fs, "/tmp/a.txt", []byte("hello"), 0o644))

	in := UploadFileInput{File: "/tmp/a.txt", FileName: "a.txt", FileType: "text/plain"}

	first, _, err := svc.UploadFile(context.Background(), nil, in)
	require.NoError(t, err)
	second, _, err := svc.UploadFile(context.Background(), nil, in)
	require.NoError(t, err)

	// Each call mints a new provider identifier for identical input.
	assert.NotEqual(t, resultText(t, first), resultText(t, second))
}
