// Copyright 2026 Author(s) of MCP Any
// SPDX-License-Identifier: Apache-2.0

package uploadapi

// File is an in-memory file ready for upload, carrying the name and content
// type the provider should record. It is owned by the upload call that
// consumes it and discarded afterwards.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// UploadData is the provider's durable record for an accepted item.
type UploadData struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type,omitempty"`
}

// Outcome is the per-item result of a batch upload. Exactly one of Data and
// Err is set. Ref identifies the originating input (file name or source
// URL). Outcomes are never mutated after creation.
type Outcome struct {
	Ref  string
	Data *UploadData
	Err  error
}

// Failed reports whether this item was rejected.
func (o Outcome) Failed() bool {
	return o.Err != nil
}
