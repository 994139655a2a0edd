// Package copyengine is the HTTP client for the remote email-copy generation
// service. The service is opaque: it accepts a Brief and answers with a list
// of Variations.
package copyengine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/copywiz/internal/logger"
	"github.com/rs/xid"
)

const (
	// defaultTimeout bounds a single generate call.
	defaultTimeout = 60 * time.Second

	// maxErrorBody caps how much of a failed response is kept in errors.
	maxErrorBody = 512
)

// ErrStatus is matched by errors.Is for any non-2xx response.
var ErrStatus = errors.New("unexpected status")

// ErrMalformed is matched by errors.Is when a response cannot be decoded.
var ErrMalformed = errors.New("malformed response")

// StatusError carries the status code and service message of a failed call.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("copy engine returned status %d", e.Code)
	}
	return fmt.Sprintf("copy engine returned status %d: %s", e.Code, e.Message)
}

// Is reports ErrStatus as the sentinel for every StatusError.
func (e *StatusError) Is(target error) bool {
	return target == ErrStatus
}

// Client defines the calls the wizard makes against the generation service.
type Client interface {
	// Generate submits a brief and returns the generated variations.
	Generate(ctx context.Context, requestID string, brief Brief) ([]Variation, error)
	// Health checks that the service is reachable.
	Health(ctx context.Context) error
}

// HTTPClient implements Client over JSON/HTTP.
type HTTPClient struct {
	endpoint   string
	httpClient *http.Client
}

// ClientOption configures an HTTPClient.
type ClientOption func(*HTTPClient)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *HTTPClient) {
		c.httpClient = hc
	}
}

// NewHTTPClient creates a client for the service rooted at endpoint,
// e.g. "http://localhost:5001/api".
func NewHTTPClient(endpoint string, opts ...ClientOption) (*HTTPClient, error) {
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		return nil, fmt.Errorf("endpoint cannot be empty")
	}

	c := &HTTPClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the base URL the client talks to.
func (c *HTTPClient) Endpoint() string {
	return c.endpoint
}

// NewRequestID returns a fresh id for the X-Request-ID header.
func NewRequestID() string {
	return xid.New().String()
}

// Generate posts the brief to {endpoint}/generate. Any non-2xx status,
// transport failure or undecodable body is returned as an error.
func (c *HTTPClient) Generate(ctx context.Context, requestID string, brief Brief) ([]Variation, error) {
	reqBytes, err := json.Marshal(brief)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/generate", bytes.NewReader(reqBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	logger.Debug("POST %s/generate request=%s client=%q", c.endpoint, requestID, brief.ClientName)
	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp.StatusCode, body)
	}

	var respData generateResponse
	if err := json.Unmarshal(body, &respData); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if respData.Variations == nil {
		return nil, fmt.Errorf("%w: missing variations", ErrMalformed)
	}

	logger.Info("Generated %d variations in %s (request=%s)", len(*respData.Variations), time.Since(started).Round(time.Millisecond), requestID)
	return *respData.Variations, nil
}

// Health calls GET {endpoint}/health and expects {"status":"ok"}.
func (c *HTTPClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/health", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return statusError(resp.StatusCode, body)
	}

	var health healthResponse
	if err := json.Unmarshal(body, &health); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if health.Status != "ok" {
		return fmt.Errorf("copy engine unhealthy: status %q", health.Status)
	}
	return nil
}

// statusError builds a StatusError, preferring the service's JSON message.
func statusError(code int, body []byte) error {
	var errResp errorResponse
	msg := ""
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		msg = errResp.Error
	} else {
		msg = strings.TrimSpace(string(body))
	}
	if len(msg) > maxErrorBody {
		msg = msg[:maxErrorBody]
	}
	return &StatusError{Code: code, Message: msg}
}
