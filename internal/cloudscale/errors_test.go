package cloudscale

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("something went wrong"),
			expected: false,
		},
		{
			name:     "404 service error",
			err:      &ServiceError{StatusCode: 404, Detail: "Not found."},
			expected: true,
		},
		{
			name:     "wrapped 404 service error",
			err:      fmt.Errorf("failed to get floating IP: %w", &ServiceError{StatusCode: 404}),
			expected: true,
		},
		{
			name:     "500 service error",
			err:      &ServiceError{StatusCode: 500},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsNotFound(tt.err)
			if result != tt.expected {
				t.Errorf("IsNotFound(%v) = %v, want %v", tt.err, result, tt.expected)
			}
		})
	}
}

func TestIsRateLimited(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "429 service error",
			err:      &ServiceError{StatusCode: 429, Detail: "Requests were throttled."},
			expected: true,
		},
		{
			name:     "400 service error",
			err:      &ServiceError{StatusCode: 400},
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsRateLimited(tt.err)
			if result != tt.expected {
				t.Errorf("IsRateLimited(%v) = %v, want %v", tt.err, result, tt.expected)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		expected   bool
	}{
		{name: "rate limit", statusCode: 429, expected: true},
		{name: "internal error", statusCode: 500, expected: true},
		{name: "bad gateway", statusCode: 502, expected: true},
		{name: "bad request", statusCode: 400, expected: false},
		{name: "unauthorized", statusCode: 401, expected: false},
		{name: "not found", statusCode: 404, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := isRetryable(tt.statusCode)
			if result != tt.expected {
				t.Errorf("isRetryable(%d) = %v, want %v", tt.statusCode, result, tt.expected)
			}
		})
	}
}

func TestServiceError_Error(t *testing.T) {
	withDetail := &ServiceError{StatusCode: 400, Detail: "ip_version: This field is required."}
	if got, want := withDetail.Error(), "cloudscale API error (status 400): ip_version: This field is required."; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	withoutDetail := &ServiceError{StatusCode: 503}
	if got, want := withoutDetail.Error(), "cloudscale API error (status 503)"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
