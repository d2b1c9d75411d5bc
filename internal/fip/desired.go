package fip

import "fmt"

// DesiredState declares the target state of a single floating IP.
//
// Optional fields model absence explicitly rather than through
// sentinels: a zero IPVersion means "not supplied", a nil ReversePtr
// means "leave unchanged", and Tags distinguishes nil ("leave tags
// unchanged") from an empty non-nil map ("clear all tags").
type DesiredState struct {
	State LifecycleState

	// IP identifies an existing floating IP. Required to reassign an
	// address or to release it; mutually exclusive with IPVersion.
	IP string

	// IPVersion (4 or 6) requests acquisition of a new address.
	IPVersion int

	// Server is the UUID of the compute instance the address should
	// route to.
	Server string

	// Creation-only attributes.
	Type         string
	Region       string
	PrefixLength int
	ReversePtr   *string

	// Tags to apply. nil leaves tags unchanged; an empty map clears
	// all tags.
	Tags map[string]string
}

// Validate checks the cross-field constraints of the desired state.
// Exactly one of IP and IPVersion must be supplied, IPVersion and
// PrefixLength are restricted to the values the API accepts, and a
// global floating IP cannot be pinned to a region.
func (d DesiredState) Validate() error {
	if d.IP == "" && d.IPVersion == 0 {
		return &MissingParameterError{Parameter: "ip or ip_version", Reason: "one of the two is required to identify or acquire a floating IP"}
	}
	if d.IP != "" && d.IPVersion != 0 {
		return fmt.Errorf("parameters ip and ip_version are mutually exclusive")
	}
	if d.IPVersion != 0 && d.IPVersion != 4 && d.IPVersion != 6 {
		return fmt.Errorf("invalid ip_version %d: must be 4 or 6", d.IPVersion)
	}
	if d.PrefixLength != 0 && d.PrefixLength != 56 {
		return fmt.Errorf("invalid prefix_length %d: only 56 is supported", d.PrefixLength)
	}
	if d.PrefixLength != 0 && d.IPVersion == 4 {
		return fmt.Errorf("prefix_length is only valid for ip_version 6")
	}
	switch d.State {
	case StatePresent, StateAbsent:
	default:
		return fmt.Errorf("invalid state %q: must be %q or %q", d.State, StatePresent, StateAbsent)
	}
	switch d.Type {
	case "", TypeRegional, TypeGlobal:
	default:
		return fmt.Errorf("invalid type %q: must be %q or %q", d.Type, TypeRegional, TypeGlobal)
	}
	if d.Type == TypeGlobal && d.Region != "" {
		return fmt.Errorf("region must be omitted for global floating IPs")
	}
	return nil
}
