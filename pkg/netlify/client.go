// Package netlify is a small client for the host platform's REST API: site
// snippets, site/account/user lookups, and the extension configuration store.
package netlify

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/superflow-dev/superflow-extension/pkg/errors"
	"github.com/superflow-dev/superflow-extension/pkg/logging"
)

// DefaultBaseURL is the public API root
const DefaultBaseURL = "https://api.netlify.com/api/v1"

// Client is an HTTP client for the host platform API. It never retries.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client

	logger zerolog.Logger
}

// NewClient creates a client authenticating with a bearer token
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		logger: logging.GetLogger("netlify.client"),
	}
}

// APIError is a non-2xx response. The body is kept verbatim; the API gives
// no guarantee about its structure.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// StatusCode extracts the HTTP status from an error chain, or 0
func StatusCode(err error) int {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// do sends a request and decodes a 2xx JSON response into out (when non-nil).
// Transport failures and non-2xx responses are returned as NETWORK_FAILURE.
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to marshal request")
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("Request failed")
		return errors.Wrap(err, errors.ErrNetworkFailure, "request failed").
			WithDetail("method", method).
			WithDetail("path", path)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, errors.ErrNetworkFailure, "failed to read response").
			WithDetail("path", path)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: string(respBody)}
		event := c.logger.Error()
		if resp.StatusCode == http.StatusNotFound {
			event = c.logger.Debug()
		}
		event.
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("body", string(respBody)).
			Msg("Unexpected response status")
		return errors.Wrap(apiErr, errors.ErrNetworkFailure, "unexpected response status").
			WithDetail("status", resp.StatusCode).
			WithDetail("path", path)
	}

	c.logger.Trace().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("Request completed")

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return errors.Wrap(err, errors.ErrNetworkFailure, "failed to parse response").
			WithDetail("path", path)
	}
	return nil
}
