// Package transport provides the HTTP client used to call provider APIs.
// It wraps net/http with pluggable authentication and JSON response
// decoding; retry and backoff are deliberately absent.
package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/agentstation/modelprobe/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
const DefaultHTTPTimeout = 30 * time.Second

// Client provides HTTP client functionality with authentication.
type Client struct {
	http *http.Client
	auth Authenticator
}

// New creates a new transport client with the specified authenticator.
func New(auth Authenticator) *Client {
	return NewWithTimeout(auth, DefaultHTTPTimeout)
}

// NewWithTimeout creates a transport client with a custom request timeout.
// A zero or negative timeout falls back to the default.
func NewWithTimeout(auth Authenticator, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}
	if auth == nil {
		auth = &NoAuth{}
	}
	return &Client{
		http: &http.Client{Timeout: timeout},
		auth: auth,
	}
}

// Do performs an HTTP request with authentication applied.
func (c *Client) Do(req *http.Request, apiKey string) (*http.Response, error) {
	if apiKey != "" {
		c.auth.Apply(req, apiKey)
	}

	// Set common headers
	req.Header.Set("Accept", "application/json")
	if req.Method == http.MethodPost || req.Method == http.MethodPut || req.Method == http.MethodPatch {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.http.Do(req)
}

// Get performs a GET request against the given URL.
func (c *Client) Get(ctx context.Context, url, apiKey string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapIO("create", "GET "+url, err)
	}
	return c.Do(req, apiKey)
}
