package fip

// LifecycleState describes whether a floating IP exists at the provider.
type LifecycleState string

const (
	// StatePresent means the floating IP exists at cloudscale.ch.
	StatePresent LifecycleState = "present"
	// StateAbsent means the floating IP does not exist.
	StateAbsent LifecycleState = "absent"
)

// Floating IP types as accepted by the cloudscale.ch API.
const (
	TypeRegional = "regional"
	TypeGlobal   = "global"
)

// Record is the canonical, normalized view of a floating IP.
//
// IP is the bare network address (not the CIDR) and serves as the
// idempotency key; it is populated even for absent records when the
// caller queried a concrete address, so results can be correlated.
// A fresh Record is built on every reconciliation; nothing is cached
// between invocations.
type Record struct {
	IP    string         `json:"ip" yaml:"ip"`
	State LifecycleState `json:"state" yaml:"state"`

	// Write-once attributes, set at creation time only.
	IPVersion    int    `json:"ip_version,omitempty" yaml:"ip_version,omitempty"`
	Type         string `json:"type,omitempty" yaml:"type,omitempty"`
	Region       string `json:"region,omitempty" yaml:"region,omitempty"`
	PrefixLength int    `json:"prefix_length,omitempty" yaml:"prefix_length,omitempty"`

	// Mutable attributes.
	Server     string            `json:"server,omitempty" yaml:"server,omitempty"`
	ReversePtr string            `json:"reverse_ptr,omitempty" yaml:"reverse_ptr,omitempty"`
	Tags       map[string]string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Read-only attributes, populated only while the IP exists.
	HRef    string `json:"href,omitempty" yaml:"href,omitempty"`
	Network string `json:"network,omitempty" yaml:"network,omitempty"`
	NextHop string `json:"next_hop,omitempty" yaml:"next_hop,omitempty"`
}

// Exists reports whether the record describes an existing floating IP.
func (r Record) Exists() bool {
	return r.State == StatePresent
}

// AbsentRecord returns a record for a floating IP that does not exist,
// echoing the queried address so callers can correlate the result.
// The ip may be empty when a new acquisition by version was requested
// and no address exists yet.
func AbsentRecord(ip string) Record {
	return Record{IP: ip, State: StateAbsent}
}
