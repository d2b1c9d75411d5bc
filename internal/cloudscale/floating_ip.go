package cloudscale

import (
	"context"
	"fmt"
	"net/http"
)

// FloatingIP is the raw API representation of a floating IP, as
// returned by the cloudscale.ch v1 API.
type FloatingIP struct {
	HRef       string            `json:"href"`
	Network    string            `json:"network"`
	NextHop    string            `json:"next_hop"`
	IPVersion  int               `json:"ip_version"`
	Type       string            `json:"type"`
	ReversePtr string            `json:"reverse_ptr"`
	Server     *ServerStub       `json:"server"`
	Region     *RegionStub       `json:"region"`
	Tags       map[string]string `json:"tags"`
}

// ServerStub is the nested server reference inside a floating IP
// response.
type ServerStub struct {
	HRef string `json:"href"`
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

// RegionStub is the nested region reference inside a floating IP
// response.
type RegionStub struct {
	Slug string `json:"slug"`
}

// FloatingIPCreateRequest holds all parameters for requesting a new
// floating IP. Zero-valued optional fields are omitted from the wire
// payload so the API applies its own defaults.
type FloatingIPCreateRequest struct {
	IPVersion    int     `json:"ip_version"`
	Server       string  `json:"server,omitempty"`
	PrefixLength int     `json:"prefix_length,omitempty"`
	ReversePtr   *string `json:"reverse_ptr,omitempty"`
	Type         string  `json:"type,omitempty"`
	Region       string  `json:"region,omitempty"`

	// Tags is a pointer so that an explicitly empty map ({}) survives
	// serialization: nil omits the field, a pointer to an empty map
	// clears all tags server-side.
	Tags *map[string]string `json:"tags,omitempty"`
}

// FloatingIPUpdateRequest holds the mutable attributes of an existing
// floating IP. Write-once attributes (version, type, region, prefix
// length) have no place here.
type FloatingIPUpdateRequest struct {
	Server string             `json:"server"`
	Tags   *map[string]string `json:"tags,omitempty"`
}

// GetFloatingIP returns the floating IP with the given address, or nil
// if no such floating IP exists.
func (c *RealClient) GetFloatingIP(ctx context.Context, ip string) (*FloatingIP, error) {
	var fip FloatingIP
	err := c.do(ctx, http.MethodGet, "floating-ips/"+ip, nil, &fip)
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get floating IP %s: %w", ip, err)
	}
	return &fip, nil
}

// CreateFloatingIP requests a new floating IP with the given parameters.
func (c *RealClient) CreateFloatingIP(ctx context.Context, req FloatingIPCreateRequest) (*FloatingIP, error) {
	var fip FloatingIP
	if err := c.do(ctx, http.MethodPost, "floating-ips", req, &fip); err != nil {
		return nil, fmt.Errorf("failed to create floating IP: %w", err)
	}
	return &fip, nil
}

// UpdateFloatingIP reassigns the floating IP and replaces its tags.
// The cloudscale.ch API updates existing floating IPs via POST on the
// resource URL.
func (c *RealClient) UpdateFloatingIP(ctx context.Context, ip string, req FloatingIPUpdateRequest) (*FloatingIP, error) {
	var fip FloatingIP
	if err := c.do(ctx, http.MethodPost, "floating-ips/"+ip, req, &fip); err != nil {
		return nil, fmt.Errorf("failed to update floating IP %s: %w", ip, err)
	}
	return &fip, nil
}

// DeleteFloatingIP releases the floating IP with the given address.
func (c *RealClient) DeleteFloatingIP(ctx context.Context, ip string) error {
	if err := c.do(ctx, http.MethodDelete, "floating-ips/"+ip, nil, nil); err != nil {
		return fmt.Errorf("failed to delete floating IP %s: %w", ip, err)
	}
	return nil
}
