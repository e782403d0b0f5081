// Package api is the client of the finance REST service.
//
// A [Client] exposes one method per resource operation. All failures, whether
// the service is unreachable, answers with an error status or sends a body
// that cannot be decoded, are reported as a single [*Error] kind whose message
// is ready to be shown to the user.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the address of a locally running service.
const DefaultBaseURL = "http://localhost:8080/api/v1"

// DefaultTimeout bounds every request, including reading the response body.
const DefaultTimeout = 10 * time.Second

// Client calls the finance REST service rooted at a base URL.
type Client struct {
	baseURL string
	http    *http.Client
	header  http.Header
	log     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying http.Client. Its Transport is wrapped
// to log requests, its Timeout is used as is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		cp := *hc
		c.http = &cp
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.header.Add(key, value) }
}

// WithLogger sets the logger used to trace requests.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New returns a Client for the service at baseURL, e.g. "http://localhost:8080/api/v1".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		header:  make(http.Header),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &logTransport{base: base, log: c.log}
	return c
}

// BaseURL returns the service root this client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// URL returns the absolute URL of a service path.
func (c *Client) URL(path string) string { return c.baseURL + path }

// request describes a single call.
type request struct {
	method string
	path   string
	body   io.Reader
	header http.Header // overrides the default headers
}

// open performs r and returns the response of a successful call, whose body
// the caller closes.
func (c *Client) open(ctx context.Context, r request) (*http.Response, error) {
	method := r.method
	if method == "" {
		method = http.MethodGet
	}
	req, err := http.NewRequestWithContext(ctx, method, c.URL(r.path), r.body)
	if err != nil {
		return nil, newError(0, "invalid request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range c.header {
		req.Header[k] = v
	}
	for k, v := range r.header {
		req.Header[k] = v
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, newError(0, "cannot reach the service", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, newError(resp.StatusCode, "cannot read the response", err)
		}
		return nil, statusError(resp, body)
	}
	return resp, nil
}

// send performs r and returns the raw response body of a successful call.
func (c *Client) send(ctx context.Context, r request) (*http.Response, []byte, error) {
	resp, err := c.open(ctx, r)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, newError(resp.StatusCode, "cannot read the response", err)
	}
	return resp, body, nil
}

// do performs r and decodes the JSON response into out.
//
// An empty body is not an error: out is left untouched, and callers get the
// zero value of their result.
func (c *Client) do(ctx context.Context, r request, out any) error {
	resp, body, err := c.send(ctx, r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 || out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return newError(resp.StatusCode, "malformed response", err)
	}
	return nil
}

// get is a shortcut for a GET of path decoded into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, request{path: path}, out)
}

// sendJSON marshals payload and sends it with method to path.
func (c *Client) sendJSON(ctx context.Context, method, path string, payload, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return newError(0, "invalid payload", err)
	}
	return c.do(ctx, request{method: method, path: path, body: bytes.NewReader(data)}, out)
}

// ack is the confirmation message the service sends on update and delete.
type ack struct {
	Message string `json:"message"`
}
