// Copyright 2026 Author(s) of MCP Any
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/samber/lo"

	"github.com/mcpany/uploader/pkg/batch"
	"github.com/mcpany/uploader/pkg/files"
	"github.com/mcpany/uploader/pkg/uploadapi"
)

// FileSpec names one local file inside an upload_files batch.
type FileSpec struct {
	FilePath string `json:"file_path" jsonschema:"path to the local file to upload"`
	FileName string `json:"file_name" jsonschema:"name the uploaded file should carry"`
	FileType string `json:"file_type,omitempty" jsonschema:"MIME type of the file; sniffed from content when omitted"`
}

// UploadFilesInput is the input of the upload_files tool.
type UploadFilesInput struct {
	Files []FileSpec `json:"files" jsonschema:"files to upload; each is processed independently"`
}

// UploadFiles uploads a batch of local files. Every file is read
// concurrently and independently; files that materialize are submitted to
// the uploads API as one batch. Read failures and per-item upload failures
// are merged into one failure list, uploads into one success list, and the
// response always enumerates both.
//
// Parameters:
//   - ctx: The context for the call.
//   - req: The raw MCP request (unused).
//   - in: The validated tool input.
//
// Returns:
//   - *mcp.CallToolResult: A JSON summary of both lists; isError is true iff
//     at least one file failed.
func (s *Service) UploadFiles(ctx context.Context, _ *mcp.CallToolRequest, in UploadFilesInput) (*mcp.CallToolResult, any, error) {
	if len(in.Files) == 0 {
		return batchSummary{Message: "No files to upload."}.toolResult(), nil, nil
	}

	s.log.InfoContext(ctx, "Uploading file batch", "count", len(in.Files))

	requests := lo.Map(in.Files, func(f FileSpec, _ int) files.Request {
		return files.Request{Path: f.FilePath, Name: f.FileName, MIMEType: f.FileType}
	})
	materialized := batch.Run(ctx, requests, s.materializer.Materialize,
		batch.WithConcurrency(s.concurrency))

	type indexedFailure struct {
		index int
		entry failedEntry
	}
	failures := lo.Map(materialized.Failed, func(f batch.Failure[files.Request], _ int) indexedFailure {
		return indexedFailure{
			index: f.Index,
			entry: failedEntry{Name: f.Input.Name, Error: f.Err.Error()},
		}
	})

	var uploaded []uploadedEntry
	if len(materialized.Succeeded) > 0 {
		payload := lo.Map(materialized.Succeeded,
			func(m batch.Success[files.Request, *uploadapi.File], _ int) *uploadapi.File {
				return m.Output
			})

		outcomes, err := s.client.UploadFiles(ctx, payload)
		if err != nil {
			// Batch-fatal: the service returned no per-item results. Report
			// the fault plus any read failures so nothing is swallowed.
			var sb strings.Builder
			fmt.Fprintf(&sb, "Upload of %d file(s) failed: %v", len(payload), err)
			for _, f := range materialized.Failed {
				fmt.Fprintf(&sb, "\nAdditionally, %q could not be read: %v", f.Input.Name, f.Err)
			}
			return errorResult(sb.String()), nil, nil
		}

		// Outcomes align with materialized.Succeeded, which preserves the
		// original input order.
		for i, o := range outcomes {
			if o.Failed() {
				failures = append(failures, indexedFailure{
					index: materialized.Succeeded[i].Index,
					entry: failedEntry{Name: o.Ref, Error: o.Err.Error()},
				})
				continue
			}
			uploaded = append(uploaded, uploadedFromOutcome(o))
		}
	}

	sort.Slice(failures, func(i, j int) bool { return failures[i].index < failures[j].index })

	return batchSummary{
		Uploaded: uploaded,
		Failed: lo.Map(failures, func(f indexedFailure, _ int) failedEntry {
			return f.entry
		}),
	}.toolResult(), nil, nil
}
