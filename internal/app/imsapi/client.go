// Package imsapi is the typed HTTP client for the remote inventory
// service. It is the only data layer this application has: the service
// owns authentication, persistence, and all aggregation, and every call
// here is a plain request/response fetch whose result replaces view state
// wholesale.
package imsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// userIDHeader carries the session identity on authenticated calls.
const userIDHeader = "User-Id"

// Client talks to the inventory service. All methods are safe for
// concurrent use.
type Client struct {
	base    string
	httpc   *http.Client
	log     *zap.Logger
	timeout time.Duration
}

// New builds a client for the service rooted at baseURL (e.g.
// "http://127.0.0.1:8081/api"). Each call gets its own timeout on top of
// whatever deadline the caller's context carries.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend base URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("backend base URL %q must be http or https", baseURL)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		base:    strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		log:     logger,
		timeout: timeout,
	}, nil
}

// BaseURL returns the configured service root, for display in
// connection-error messages.
func (c *Client) BaseURL() string {
	return c.base
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpc.CloseIdleConnections()
}

// StatusError is a non-2xx response from the service: the service was
// reachable and said no. Message carries the service's own message text
// when the body had one.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("inventory service: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("inventory service: status %d", e.Status)
}

// TransportError wraps a failure to reach or parse the service at all:
// connection refused, timeout, or a garbled body.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "inventory service unreachable: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsTransport reports whether err is a transport failure as opposed to the
// service rejecting the request.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// do issues one request and decodes the JSON response body into out.
// userID is added as the User-Id header when non-empty.
func (c *Client) do(ctx context.Context, method, path, userID string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if userID != "" {
		req.Header.Set(userIDHeader, userID)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug("backend request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Err: fmt.Errorf("decode %s %s: %w", method, path, err)}
	}
	return nil
}

// errorMessage pulls the "message" field out of an error body, if present.
func errorMessage(r io.Reader) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 4096)).Decode(&body); err != nil {
		return ""
	}
	return body.Message
}

// Ping checks that the service is reachable. Any HTTP response counts,
// including 401 from an unauthenticated probe; only transport failures
// report the service as down.
func (c *Client) Ping(ctx context.Context) error {
	err := c.do(ctx, http.MethodGet, "/dashboard/summary", "", nil, nil)
	if err != nil && IsTransport(err) {
		return err
	}
	return nil
}
