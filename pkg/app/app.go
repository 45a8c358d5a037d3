// Copyright 2026 Author(s) of MCP Any
// SPDX-License-Identifier: Apache-2.0

// Package app wires the uploader MCP server together.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/afero"

	"github.com/mcpany/uploader/pkg/appconsts"
	"github.com/mcpany/uploader/pkg/config"
	"github.com/mcpany/uploader/pkg/files"
	"github.com/mcpany/uploader/pkg/logging"
	"github.com/mcpany/uploader/pkg/tools"
	"github.com/mcpany/uploader/pkg/uploadapi"
)

// Application is the assembled server: configuration, uploads-API client,
// tool surface, and the MCP server they are registered on.
type Application struct {
	cfg    *config.Config
	server *mcp.Server
	log    *slog.Logger
}

// Option configures an Application.
type Option func(*options)

type options struct {
	fs     afero.Fs
	client tools.UploadClient
}

// WithFilesystem overrides the filesystem files are read from. Tests pass an
// afero.MemMapFs.
func WithFilesystem(fs afero.Fs) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithUploadClient overrides the uploads-API client.
func WithUploadClient(client tools.UploadClient) Option {
	return func(o *options) {
		o.client = client
	}
}

// New assembles the application from an already-validated configuration.
//
// Parameters:
//   - cfg: The process configuration. Must have passed Validate.
//
// Returns:
//   - *Application: The assembled application.
//   - error: An error if a collaborator cannot be constructed.
func New(cfg *config.Config, opts ...Option) (*Application, error) {
	o := options{fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(&o)
	}

	if o.client == nil {
		client, err := uploadapi.NewClient(cfg.BaseURL, cfg.APIKey, uploadapi.WithTimeout(cfg.Timeout))
		if err != nil {
			return nil, fmt.Errorf("app: build uploads client: %w", err)
		}
		o.client = client
	}

	svc := tools.NewService(o.client, files.NewMaterializer(o.fs))

	server := mcp.NewServer(&mcp.Implementation{
		Name:    appconsts.Name,
		Version: appconsts.Version,
	}, nil)
	if err := svc.Register(server); err != nil {
		return nil, fmt.Errorf("app: register tools: %w", err)
	}

	return &Application{
		cfg:    cfg,
		server: server,
		log:    logging.GetLogger(),
	}, nil
}

// Server returns the underlying MCP server.
func (a *Application) Server() *mcp.Server {
	return a.server
}

// Run serves MCP over standard input/output until the context is canceled
// or the client disconnects. Stdout belongs to the protocol; all logging
// goes to stderr.
func (a *Application) Run(ctx context.Context) error {
	a.log.Info("Starting in stdio mode", "name", appconsts.Name, "version", appconsts.Version)
	return a.server.Run(ctx, &mcp.StdioTransport{})
}
