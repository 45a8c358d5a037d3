// Copyright 2026 Author(s) of MCP Any
// SPDX-License-Identifier: Apache-2.0

// Package tools implements the MCP tool surface of the uploader server:
// three stateless tools that upload local files or remote URLs to the
// uploads API and report per-item outcomes in a single response.
package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/samber/lo"

	"github.com/mcpany/uploader/pkg/batch"
	"github.com/mcpany/uploader/pkg/files"
	"github.com/mcpany/uploader/pkg/logging"
	"github.com/mcpany/uploader/pkg/uploadapi"
)

// UploadClient is the slice of the uploads-API client the tool surface
// depends on.
type UploadClient interface {
	UploadFiles(ctx context.Context, files []*uploadapi.File) ([]uploadapi.Outcome, error)
	UploadFilesFromURL(ctx context.Context, urls []string) ([]uploadapi.Outcome, error)
}

// Service holds the collaborators shared by all tool handlers. Handlers are
// stateless request/response; nothing on Service is mutated after
// construction.
type Service struct {
	client       UploadClient
	materializer *files.Materializer
	log          *slog.Logger
	concurrency  int
}

// Option configures a Service.
type Option func(*Service)

// WithReadConcurrency bounds how many file reads run at once within a single
// batch tool call.
func WithReadConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// NewService creates the tool surface backed by the given uploads-API client
// and file materializer.
func NewService(client UploadClient, materializer *files.Materializer, opts ...Option) *Service {
	s := &Service{
		client:       client,
		materializer: materializer,
		log:          logging.GetLogger(),
		concurrency:  batch.DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register declares the three upload tools on the MCP server. Input schemas
// are derived from the typed input structs, so malformed calls are rejected
// by the SDK before a handler ever touches the filesystem or the network.
//
// Parameters:
//   - srv: The MCP server to register on.
//
// Returns:
//   - error: An error if schema generation fails.
func (s *Service) Register(srv *mcp.Server) error {
	urlSchema, err := jsonschema.For[UploadFilesFromURLsInput](nil)
	if err != nil {
		return fmt.Errorf("tools: build upload_files_from_urls schema: %w", err)
	}
	if prop, ok := urlSchema.Properties["files_by_url"]; ok && prop.Items != nil {
		prop.Items.Format = "uri"
	}

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "upload_file",
		Description: "Upload a single local file to the uploads API and return its hosted URL.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:   false,
			IdempotentHint: false,
			OpenWorldHint:  lo.ToPtr(true),
		},
	}, s.UploadFile)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "upload_files",
		Description: "Upload a batch of local files. Files are processed independently; the response lists every uploaded file and every failure.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:   false,
			IdempotentHint: false,
			OpenWorldHint:  lo.ToPtr(true),
		},
	}, s.UploadFiles)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "upload_files_from_urls",
		Description: "Ask the uploads API to fetch and store a batch of URLs. URLs are processed independently; the response lists every stored file and every failure.",
		InputSchema: urlSchema,
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:   false,
			IdempotentHint: false,
			OpenWorldHint:  lo.ToPtr(true),
		},
	}, s.UploadFilesFromURLs)

	return nil
}
