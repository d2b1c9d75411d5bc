package cloudscale

import "context"

// FloatingIPAPI defines the interface for managing floating IPs.
type FloatingIPAPI interface {
	// GetFloatingIP returns the floating IP with the given address, or
	// nil if it does not exist.
	GetFloatingIP(ctx context.Context, ip string) (*FloatingIP, error)
	// CreateFloatingIP requests a new floating IP or network.
	CreateFloatingIP(ctx context.Context, req FloatingIPCreateRequest) (*FloatingIP, error)
	// UpdateFloatingIP reassigns an existing floating IP and replaces
	// its tags. Only mutable attributes can be sent.
	UpdateFloatingIP(ctx context.Context, ip string, req FloatingIPUpdateRequest) (*FloatingIP, error)
	// DeleteFloatingIP releases the floating IP. The API returns no
	// body on success.
	DeleteFloatingIP(ctx context.Context, ip string) error
}
