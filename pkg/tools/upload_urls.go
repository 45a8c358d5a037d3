// Copyright 2026 Author(s) of MCP Any
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"
	"fmt"
	"net/url"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/samber/lo"

	"github.com/mcpany/uploader/pkg/uploadapi"
)

// UploadFilesFromURLsInput is the input of the upload_files_from_urls tool.
type UploadFilesFromURLsInput struct {
	FilesByURL []string `json:"files_by_url" jsonschema:"absolute http(s) URLs the uploads API should fetch and store"`
}

// UploadFilesFromURLs asks the uploads API to fetch and store each URL as
// one batch. Every URL is syntax-checked at the boundary; an invalid entry
// rejects the whole call before any network traffic.
//
// Parameters:
//   - ctx: The context for the call.
//   - req: The raw MCP request (unused).
//   - in: The validated tool input.
//
// Returns:
//   - *mcp.CallToolResult: A JSON summary of stored and failed URLs; isError
//     is true iff at least one URL failed.
func (s *Service) UploadFilesFromURLs(ctx context.Context, _ *mcp.CallToolRequest, in UploadFilesFromURLsInput) (*mcp.CallToolResult, any, error) {
	for _, raw := range in.FilesByURL {
		if err := validateSourceURL(raw); err != nil {
			return errorResult(fmt.Sprintf("Invalid URL %q: %v. No files were uploaded.", raw, err)), nil, nil
		}
	}

	if len(in.FilesByURL) == 0 {
		return batchSummary{Message: "No URLs to ingest."}.toolResult(), nil, nil
	}

	s.log.InfoContext(ctx, "Uploading URL batch", "count", len(in.FilesByURL))

	outcomes, err := s.client.UploadFilesFromURL(ctx, in.FilesByURL)
	if err != nil {
		return errorResult(fmt.Sprintf("Upload of %d URL(s) failed: %v", len(in.FilesByURL), err)), nil, nil
	}

	failed := lo.FilterMap(outcomes, func(o uploadapi.Outcome, _ int) (failedEntry, bool) {
		if !o.Failed() {
			return failedEntry{}, false
		}
		return failedEntry{Name: o.Ref, Error: o.Err.Error()}, true
	})
	uploaded := lo.FilterMap(outcomes, func(o uploadapi.Outcome, _ int) (uploadedEntry, bool) {
		if o.Failed() {
			return uploadedEntry{}, false
		}
		return uploadedFromOutcome(o), true
	})

	return batchSummary{Uploaded: uploaded, Failed: failed}.toolResult(), nil, nil
}

// validateSourceURL accepts only absolute http(s) URLs with a host.
func validateSourceURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme %q is not http or https", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
