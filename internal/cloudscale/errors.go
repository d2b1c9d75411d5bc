package cloudscale

import (
	"errors"
	"fmt"
	"net/http"
)

// ServiceError is an error returned by the cloudscale.ch API. The
// status code and detail message are propagated verbatim; callers
// interpret them only through the predicates below.
type ServiceError struct {
	StatusCode int
	Detail     string
}

func (e *ServiceError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("cloudscale API error (status %d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("cloudscale API error (status %d)", e.StatusCode)
}

// IsNotFound checks if an error indicates a resource was not found.
func IsNotFound(err error) bool {
	return hasStatusCode(err, http.StatusNotFound)
}

// IsRateLimited checks if an error indicates rate limiting.
func IsRateLimited(err error) bool {
	return hasStatusCode(err, http.StatusTooManyRequests)
}

// IsUnauthorized checks if an error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	return hasStatusCode(err, http.StatusUnauthorized)
}

// isRetryable reports whether a failed request may succeed on a later
// attempt. Rate limits and server-side errors qualify; everything else
// is fatal.
func isRetryable(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= 500
}

// hasStatusCode checks if the error is a ServiceError with the given code.
func hasStatusCode(err error, code int) bool {
	if err == nil {
		return false
	}

	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr.StatusCode == code
	}
	return false
}
