// Copyright 2026 Author(s) of MCP Any
// SPDX-License-Identifier: Apache-2.0

// Package files reads local files into in-memory upload objects.
package files

import (
	"context"
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"

	"github.com/mcpany/uploader/pkg/uploadapi"
)

// DefaultMaxFileSize is the largest file the materializer will read, matching
// the uploads-API per-file cap.
const DefaultMaxFileSize int64 = 512 << 20

// Request names one local file to materialize.
type Request struct {
	// Path is the local filesystem path to read.
	Path string
	// Name is the name the uploaded file should carry.
	Name string
	// MIMEType is the declared content type. When empty, the type is
	// sniffed from the file content.
	MIMEType string
}

// ReadError reports a failure to read one file. It is always scoped to a
// single file; it never carries batch-level meaning.
type ReadError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ReadError) Unwrap() error {
	return e.Err
}

// Materializer reads files from a filesystem into memory. It never touches
// the network.
type Materializer struct {
	fs      afero.Fs
	maxSize int64
}

// Option configures a Materializer.
type Option func(*Materializer)

// WithMaxFileSize overrides the per-file size cap.
func WithMaxFileSize(n int64) Option {
	return func(m *Materializer) {
		m.maxSize = n
	}
}

// NewMaterializer creates a Materializer backed by the given filesystem.
// Production callers pass afero.NewOsFs(); tests pass an afero.MemMapFs.
func NewMaterializer(fs afero.Fs, opts ...Option) *Materializer {
	m := &Materializer{
		fs:      fs,
		maxSize: DefaultMaxFileSize,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Materialize reads the file named by req fully into memory and returns it
// as an upload object carrying req's name and content type.
//
// Parameters:
//   - ctx: The context; a canceled context fails the read before any I/O.
//   - req: The file to read.
//
// Returns:
//   - *uploadapi.File: The in-memory file.
//   - error: A *ReadError when the path is missing, unreadable, or over the
//     size cap.
func (m *Materializer) Materialize(ctx context.Context, req Request) (*uploadapi.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ReadError{Path: req.Path, Err: err}
	}

	info, err := m.fs.Stat(req.Path)
	if err != nil {
		return nil, &ReadError{Path: req.Path, Err: err}
	}
	if info.IsDir() {
		return nil, &ReadError{Path: req.Path, Err: fmt.Errorf("is a directory")}
	}
	if info.Size() > m.maxSize {
		return nil, &ReadError{
			Path: req.Path,
			Err:  fmt.Errorf("file size %d exceeds limit of %d bytes", info.Size(), m.maxSize),
		}
	}

	content, err := afero.ReadFile(m.fs, req.Path)
	if err != nil {
		return nil, &ReadError{Path: req.Path, Err: err}
	}

	contentType := req.MIMEType
	if contentType == "" {
		contentType = mimetype.Detect(content).String()
	}

	return &uploadapi.File{
		Name:        req.Name,
		ContentType: contentType,
		Content:     content,
	}, nil
}
