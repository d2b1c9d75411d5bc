package cloudscale

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-logr/logr"

	"github.com/cloudscale-tools/fipctl/internal/config"
	"github.com/cloudscale-tools/fipctl/internal/util/retry"
)

// RealClient implements FloatingIPAPI against the cloudscale.ch API.
type RealClient struct {
	endpoint   string
	token      string
	timeouts   *config.Timeouts
	httpClient *http.Client
	log        logr.Logger
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithEndpoint sets a custom API base URL (useful for testing).
func WithEndpoint(endpoint string) ClientOption {
	return func(c *RealClient) {
		c.endpoint = strings.TrimSuffix(endpoint, "/")
	}
}

// WithTimeouts sets custom timeouts for the client.
func WithTimeouts(t *config.Timeouts) ClientOption {
	return func(c *RealClient) {
		c.timeouts = t
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *RealClient) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for request tracing.
func WithLogger(log logr.Logger) ClientOption {
	return func(c *RealClient) {
		c.log = log
	}
}

// NewRealClient creates a new RealClient with optional configuration.
func NewRealClient(token string, opts ...ClientOption) *RealClient {
	c := &RealClient{
		endpoint:   config.DefaultAPIURL,
		token:      token,
		timeouts:   config.LoadTimeouts(),
		httpClient: http.DefaultClient,
		log:        logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs a single API request with retry for transient failures.
// Rate limits and server-side errors are retried with exponential
// backoff; every other failure is surfaced immediately. A nil out
// skips response decoding (delete returns no body).
func (c *RealClient) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	url := c.endpoint + "/" + path
	c.log.V(1).Info("API request", "method", method, "url", url)

	return retry.WithExponentialBackoff(ctx, func() error {
		reqCtx, cancel := context.WithTimeout(ctx, c.timeouts.Request)
		defer cancel()

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(reqCtx, method, url, reader)
		if err != nil {
			return retry.Fatal(err)
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			// Transport errors may be transient (connection resets,
			// timeouts); let the backoff decide.
			return err
		}
		defer func() {
			_ = resp.Body.Close()
		}()

		if resp.StatusCode >= 400 {
			apiErr := decodeError(resp)
			c.log.V(1).Info("API error response", "method", method, "url", url, "status", resp.StatusCode)
			if isRetryable(resp.StatusCode) {
				return apiErr
			}
			return retry.Fatal(apiErr)
		}

		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return retry.Fatal(fmt.Errorf("failed to decode response body: %w", err))
		}
		return nil
	},
		retry.WithMaxRetries(c.timeouts.RetryMaxAttempts),
		retry.WithInitialDelay(c.timeouts.RetryInitialDelay))
}

// decodeError builds a ServiceError from a non-2xx response. The API
// reports failures as {"detail": "..."}; anything else is kept as raw
// text.
func decodeError(resp *http.Response) *ServiceError {
	serviceErr := &ServiceError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return serviceErr
	}

	var apiBody struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &apiBody); err == nil && apiBody.Detail != "" {
		serviceErr.Detail = apiBody.Detail
	} else {
		serviceErr.Detail = strings.TrimSpace(string(body))
	}
	return serviceErr
}
