// Copyright 2026 Author(s) of MCP Any
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mcpany/uploader/pkg/files"
	"github.com/mcpany/uploader/pkg/uploadapi"
)

// UploadFileInput is the input of the upload_file tool.
type UploadFileInput struct {
	File     string `json:"file" jsonschema:"path to the local file to upload"`
	FileName string `json:"file_name" jsonschema:"name the uploaded file should carry"`
	FileType string `json:"file_type,omitempty" jsonschema:"MIME type of the file; sniffed from content when omitted"`
}

// UploadFile uploads one local file and reports the provider's record for
// it.
//
// Parameters:
//   - ctx: The context for the call.
//   - req: The raw MCP request (unused).
//   - in: The validated tool input.
//
// Returns:
//   - *mcp.CallToolResult: The response; isError is set when the read or the
//     upload failed.
func (s *Service) UploadFile(ctx context.Context, _ *mcp.CallToolRequest, in UploadFileInput) (*mcp.CallToolResult, any, error) {
	s.log.InfoContext(ctx, "Uploading file", "path", in.File, "name", in.FileName)

	f, err := s.materializer.Materialize(ctx, files.Request{
		Path:     in.File,
		Name:     in.FileName,
		MIMEType: in.FileType,
	})
	if err != nil {
		return errorResult(fmt.Sprintf("Upload of %q failed: %v", in.FileName, err)), nil, nil
	}

	outcomes, err := s.client.UploadFiles(ctx, []*uploadapi.File{f})
	if err != nil {
		return errorResult(fmt.Sprintf("Upload of %q failed: %v", in.FileName, err)), nil, nil
	}

	outcome := outcomes[0]
	if outcome.Failed() {
		return errorResult(fmt.Sprintf("Upload of %q failed: %v", in.FileName, outcome.Err)), nil, nil
	}

	payload, err := json.MarshalIndent(outcome.Data, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("Upload of %q failed: render result: %v", in.FileName, err)), nil, nil
	}
	return textResult(fmt.Sprintf("File %q uploaded successfully.\n%s", in.FileName, payload)), nil, nil
}
