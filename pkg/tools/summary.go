// Copyright 2026 Author(s) of MCP Any
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mcpany/uploader/pkg/uploadapi"
)

// uploadedEntry is one successfully stored item in a batch summary.
type uploadedEntry struct {
	Name string `json:"name"`
	ID   string `json:"id,omitempty"`
	URL  string `json:"url,omitempty"`
	Size int64  `json:"size,omitempty"`
}

// failedEntry names one failed item and why it failed. The name is always
// present so large-batch diagnostics stay actionable.
type failedEntry struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// batchSummary is the response body of the batch tools, rendered as a JSON
// document. Both lists are always present: successes are enumerated even
// when failures exist.
type batchSummary struct {
	Message  string          `json:"message,omitempty"`
	Uploaded []uploadedEntry `json:"uploaded"`
	Failed   []failedEntry   `json:"failed"`
}

// toolResult renders the summary into a call result. isError is true iff the
// failure list is non-empty.
func (b batchSummary) toolResult() *mcp.CallToolResult {
	if b.Uploaded == nil {
		b.Uploaded = []uploadedEntry{}
	}
	if b.Failed == nil {
		b.Failed = []failedEntry{}
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("failed to render upload summary: %v", err))
	}
	return &mcp.CallToolResult{
		IsError: len(b.Failed) > 0,
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}
}

// uploadedFromOutcome converts a successful upload outcome into a summary
// entry.
func uploadedFromOutcome(o uploadapi.Outcome) uploadedEntry {
	e := uploadedEntry{Name: o.Ref}
	if o.Data != nil {
		e.ID = o.Data.ID
		e.URL = o.Data.URL
		e.Size = o.Data.Size
		if o.Data.Name != "" {
			e.Name = o.Data.Name
		}
	}
	return e
}

// textResult wraps plain text in a non-error call result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorResult wraps plain text in an error call result.
func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
