package fip

import (
	"errors"
	"fmt"
)

// MissingParameterError reports a parameter the caller must supply for
// the selected action. It is raised before any network call is made.
type MissingParameterError struct {
	Parameter string
	Reason    string
}

func (e *MissingParameterError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("missing required parameter %s: %s", e.Parameter, e.Reason)
	}
	return fmt.Sprintf("missing required parameter: %s", e.Parameter)
}

// MalformedResourceError reports a raw API resource this package cannot
// normalize, such as an invalid CIDR in the network field.
type MalformedResourceError struct {
	Field string
	Value string
	Err   error
}

func (e *MalformedResourceError) Error() string {
	return fmt.Sprintf("malformed floating IP resource: field %s has invalid value %q: %v", e.Field, e.Value, e.Err)
}

func (e *MalformedResourceError) Unwrap() error {
	return e.Err
}

// IsMissingParameter checks if an error reports a missing caller
// parameter.
func IsMissingParameter(err error) bool {
	var mpe *MissingParameterError
	return errors.As(err, &mpe)
}

// IsMalformedResource checks if an error reports an unparseable API
// resource.
func IsMalformedResource(err error) bool {
	var mre *MalformedResourceError
	return errors.As(err, &mre)
}
