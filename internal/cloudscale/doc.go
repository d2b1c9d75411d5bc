// Package cloudscale provides a wrapper around the cloudscale.ch API
// for floating IP management.
//
// The package mirrors the REST surface the reconciler consumes: fetch,
// create, update and delete of a single floating IP. Authentication,
// request timeouts and transport-level retry for transient failures
// all live here; callers see either a decoded resource or an error.
package cloudscale
