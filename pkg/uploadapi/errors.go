// Copyright 2026 Author(s) of MCP Any
// SPDX-License-Identifier: Apache-2.0

package uploadapi

import (
	"errors"
	"fmt"
)

// ErrNoFiles is returned when an upload is requested with an empty file set.
var ErrNoFiles = errors.New("no files to upload")

// ErrNoURLs is returned when a URL ingest is requested with an empty URL set.
var ErrNoURLs = errors.New("no urls to upload")

// ServiceError reports a batch-fatal failure: the uploads API returned no
// per-item results, so nothing in the batch can be considered settled.
// Per-item rejections are NOT ServiceErrors; they surface as Outcome.Err.
type ServiceError struct {
	// Status is the HTTP status code, or 0 for transport-level failures.
	Status int
	Msg    string
	Err    error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("uploads API request failed (status %d): %s", e.Status, e.Msg)
	}
	return fmt.Sprintf("uploads API request failed: %s", e.Msg)
}

// Unwrap returns the underlying transport error, if any.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// RejectionError is the per-item error reported by the uploads API for an
// item it declined inside an otherwise successful batch.
type RejectionError struct {
	Ref     string
	Code    string
	Message string
}

// Error implements the error interface.
func (e *RejectionError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("upload rejected (%s): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("upload rejected: %s", e.Message)
}
