// Package api is the client for the remote media-extraction backend. It sends
// exactly one POST per call and never retries.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/ytget/social-downloader/internal/model"
)

const (
	// DownloadPath is appended to the configured base URL
	DownloadPath = "/api/download"

	// MaxResponseSize bounds how much of a response body is read
	MaxResponseSize = 10 * 1024 * 1024

	contentTypeJSON = "application/json"
)

// ClientConfig holds backend client configuration
type ClientConfig struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client implements download.Requester against the HTTP backend
type Client struct {
	client *http.Client

	mu      sync.RWMutex
	baseURL string
}

// NewClient creates a new backend client. A nil HTTPClient means a plain
// http.Client with no timeout of its own.
func NewClient(config ClientConfig) *Client {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		client:  httpClient,
		baseURL: strings.TrimRight(config.BaseURL, "/"),
	}
}

// BaseURL returns the normalized base URL
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// SetBaseURL points subsequent requests at another backend
func (c *Client) SetBaseURL(baseURL string) {
	c.mu.Lock()
	c.baseURL = strings.TrimRight(baseURL, "/")
	c.mu.Unlock()
}

// Endpoint returns the full URL of the download endpoint
func (c *Client) Endpoint() string {
	return c.BaseURL() + DownloadPath
}

// Download posts the request and decodes the response.
//
// A 2xx response is returned as a result even if its status is "error"; the
// caller decides how to render it. Non-2xx responses become *model.ServerError,
// transport and decoding problems become *model.NetworkError.
func (c *Client) Download(ctx context.Context, req *model.DownloadRequest) (*model.DownloadResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, &model.NetworkError{Op: "request", Err: err}
	}
	httpReq.Header.Set("Content-Type", contentTypeJSON)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &model.NetworkError{Op: "request", Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return nil, &model.NetworkError{Op: "read", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &model.ServerError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(data),
		}
	}

	var result model.DownloadResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, &model.NetworkError{Op: "decode", Err: err}
	}
	if result.Items == nil {
		result.Items = []model.MediaItem{}
	}

	return &result, nil
}

// extractMessage pulls the message field from an error body, if it is JSON
func extractMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.Message
}
