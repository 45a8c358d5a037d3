// Copyright 2026 Author(s) of MCP Any
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/mcpany/uploader/pkg/uploadapi"
)

func TestUploadFilesFromURLsSuccess(t *testing.T) {
	svc, _, _ := newTestService(t)

	urls := []string{
		"https://a.example/one.png",
		"https://b.example/two.pdf",
	}
	res, _, err := svc.UploadFilesFromURLs(context.Background(), nil, UploadFilesFromURLsInput{FilesByURL: urls})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	summary := resultText(t, res)
	uploaded := gjson.Get(summary, "uploaded").Array()
	require.Len(t, uploaded, 2)
	assert.Equal(t, "https://a.example/one.png", uploaded[0].Get("name").String())
	assert.Equal(t, "https://b.example/two.pdf", uploaded[1].Get("name").String())
	assert.Empty(t, gjson.Get(summary, "failed").Array())
}

func TestUploadFilesFromURLsInvalidURLRejectedBeforeNetwork(t *testing.T) {
	svc, client, _ := newTestService(t)

	for _, bad := range []string{"::not-a-url::", "ftp://host/file", "relative/path", "https://"} {
		res, _, err := svc.UploadFilesFromURLs(context.Background(), nil, UploadFilesFromURLsInput{
			FilesByURL: []string{"https://ok.example/file", bad},
		})
		require.NoError(t, err)
		assert.True(t, res.IsError, "URL %q should be rejected", bad)
		assert.Contains(t, resultText(t, res), bad)
		assert.Contains(t, resultText(t, res), "No files were uploaded")
	}

	// Validation failures must never reach the service.
	assert.Zero(t, client.urlCalls)
}

func TestUploadFilesFromURLsPartialFailure(t *testing.T) {
	svc, client, _ := newTestService(t)
	client.rejectRefs["https://b.example/two.pdf"] = "fetch failed: 404"

	res, _, err := svc.UploadFilesFromURLs(context.Background(), nil, UploadFilesFromURLsInput{
		FilesByURL: []string{"https://a.example/one.png", "https://b.example/two.pdf"},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)

	summary := resultText(t, res)
	failed := gjson.Get(summary, "failed").Array()
	require.Len(t, failed, 1)
	assert.Equal(t, "https://b.example/two.pdf", failed[0].Get("name").String())
	assert.Contains(t, failed[0].Get("error").String(), "fetch failed: 404")

	uploaded := gjson.Get(summary, "uploaded").Array()
	require.Len(t, uploaded, 1)
	assert.Equal(t, "https://a.example/one.png", uploaded[0].Get("name").String())
}

func TestUploadFilesFromURLsEmptyInput(t *testing.T) {
	svc, client, _ := newTestService(t)

	res, _, err := svc.UploadFilesFromURLs(context.Background(), nil, UploadFilesFromURLsInput{})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Zero(t, client.urlCalls)
}

func TestUploadFilesFromURLsServiceFault(t *testing.T) {
	svc, client, _ := newTestService(t)
	client.batchErr = &uploadapi.ServiceError{Msg: "connection reset"}

	res, _, err := svc.UploadFilesFromURLs(context.Background(), nil, UploadFilesFromURLsInput{
		FilesByURL: []string{"https://a.example/one.png"},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "connection reset")
}

func TestValidateSourceURL(t *testing.T) {
	assert.NoError(t, validateSourceURL("https://example.com/file.png"))
	assert.NoError(t, validateSourceURL("http://example.com:8080/a"))
	assert.Error(t, validateSourceURL("ftp://example.com/a"))
	assert.Error(t, validateSourceURL("example.com/a"))
	assert.Error(t, validateSourceURL("https://"))
	assert.Error(t, validateSourceURL("::bad::"))
}

// Upload outcomes from the fake are tagged with the uploads-API payload;
// uploadedFromOutcome must prefer the provider-reported name when present.
func TestUploadedFromOutcome(t *testing.T) {
	entry := uploadedFromOutcome(uploadapi.Outcome{
		Ref:  "https://a.example/one.png",
		Data: &uploadapi.UploadData{ID: "f_1", Name: "one.png", URL: "https://cdn/f_1", Size: 9},
	})
	assert.Equal(t, "one.png", entry.Name)
	assert.Equal(t, "f_1", entry.ID)
	assert.Equal(t, int64(9), entry.Size)
}
