// Package retry provides exponential backoff retry logic for transient failures.
//
// [WithExponentialBackoff] retries an operation with configurable max
// attempts, initial delay, and maximum delay. It is used for
// cloudscale.ch API calls that fail transiently (rate limits, server
// errors). Errors wrapped with [Fatal] abort retrying immediately.
package retry
