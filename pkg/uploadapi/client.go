// Copyright 2026 Author(s) of MCP Any
// SPDX-License-Identifier: Apache-2.0

// Package uploadapi wraps the remote uploads API. It submits batches of
// in-memory files or source URLs and reports one outcome per item, in input
// order. A per-item rejection never aborts its siblings; only a failure of
// the HTTP exchange itself is batch-fatal.
package uploadapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mcpany/uploader/pkg/logging"
)

const (
	filesPath   = "/v1/files"
	fromURLPath = "/v1/files/url"

	// maxErrorBodySize caps how much of an error response body is read for
	// diagnostics.
	maxErrorBodySize = 4 << 10
)

// Client is a thin client for the uploads API. It is safe for concurrent
// use; the credential it holds is read-only after construction.
type Client struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client. Useful for tests and
// for callers that need custom transports.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a Client for the uploads API at baseURL, authenticating
// with the given pre-issued token.
//
// Parameters:
//   - baseURL: The API endpoint, e.g. "https://api.uploads.dev".
//   - apiKey: The bearer token. Must be non-empty.
//
// Returns:
//   - *Client: The configured client.
//   - error: An error if baseURL is unparsable or apiKey is empty.
func NewClient(baseURL, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("uploadapi: api key is empty")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("uploadapi: parse base url: %w", err)
	}
	c := &Client{
		baseURL:    u,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 120 * time.Second},
		log:        logging.GetLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// wireError is the per-item error object the API embeds in a result.
type wireError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// wireResult is one entry of the API's results array. Exactly one of Data
// and Error is populated.
type wireResult struct {
	Data  *UploadData `json:"data,omitempty"`
	Error *wireError  `json:"error,omitempty"`
}

type wireResponse struct {
	Results []wireResult `json:"results"`
}

// UploadFiles submits files as one multipart batch and returns one Outcome
// per file, in input order.
//
// Parameters:
//   - ctx: The context for the request.
//   - files: The files to upload. Must be non-empty.
//
// Returns:
//   - []Outcome: One outcome per input file, same order.
//   - error: ErrNoFiles for an empty batch, or a *ServiceError when the
//     exchange itself failed and no per-item results exist.
func (c *Client) UploadFiles(ctx context.Context, files []*File) ([]Outcome, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, f := range files {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="files"; filename="%s"`, escapeQuotes(f.Name)))
		contentType := f.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		hdr.Set("Content-Type", contentType)
		part, err := mw.CreatePart(hdr)
		if err != nil {
			return nil, &ServiceError{Msg: "encode multipart request", Err: err}
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, &ServiceError{Msg: "encode multipart request", Err: err}
		}
	}
	if err := mw.Close(); err != nil {
		return nil, &ServiceError{Msg: "encode multipart request", Err: err}
	}

	refs := make([]string, len(files))
	for i, f := range files {
		refs[i] = f.Name
	}
	return c.post(ctx, filesPath, mw.FormDataContentType(), &body, refs)
}

// UploadFilesFromURL asks the service to fetch and store each URL, as one
// batch, and returns one Outcome per URL, in input order.
//
// Parameters:
//   - ctx: The context for the request.
//   - urls: The source URLs. Must be non-empty.
//
// Returns:
//   - []Outcome: One outcome per input URL, same order.
//   - error: ErrNoURLs for an empty batch, or a *ServiceError when the
//     exchange itself failed.
func (c *Client) UploadFilesFromURL(ctx context.Context, urls []string) ([]Outcome, error) {
	if len(urls) == 0 {
		return nil, ErrNoURLs
	}

	payload, err := json.Marshal(struct {
		URLs []string `json:"urls"`
	}{URLs: urls})
	if err != nil {
		return nil, &ServiceError{Msg: "encode request", Err: err}
	}
	return c.post(ctx, fromURLPath, "application/json", bytes.NewReader(payload), urls)
}

// post performs one uploads-API exchange and maps the response's results
// array onto the given refs. A missing or mis-sized results array is a
// protocol violation and therefore batch-fatal.
func (c *Client) post(ctx context.Context, path, contentType string, body io.Reader, refs []string) ([]Outcome, error) {
	endpoint := c.baseURL.JoinPath(path).String()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, &ServiceError{Msg: "build request", Err: err}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	c.log.DebugContext(ctx, "Calling uploads API",
		"path", path, "items", len(refs), "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ServiceError{Msg: "send request", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &ServiceError{Status: resp.StatusCode, Msg: "authentication rejected"}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, &ServiceError{Status: resp.StatusCode, Msg: strings.TrimSpace(string(snippet))}
	}

	var decoded wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &ServiceError{Status: resp.StatusCode, Msg: "undecodable response body", Err: err}
	}
	if len(decoded.Results) != len(refs) {
		return nil, &ServiceError{
			Status: resp.StatusCode,
			Msg:    fmt.Sprintf("expected %d results, got %d", len(refs), len(decoded.Results)),
		}
	}

	outcomes := make([]Outcome, len(refs))
	for i, r := range decoded.Results {
		outcome := Outcome{Ref: refs[i]}
		switch {
		case r.Error != nil:
			outcome.Err = &RejectionError{Ref: refs[i], Code: r.Error.Code, Message: r.Error.Message}
		case r.Data != nil:
			outcome.Data = r.Data
		default:
			outcome.Err = &RejectionError{Ref: refs[i], Message: "service returned neither data nor error"}
		}
		outcomes[i] = outcome
	}
	return outcomes, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
