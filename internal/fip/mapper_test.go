package fip

import (
	"testing"

	"github.com/cloudscale-tools/fipctl/internal/cloudscale"
)

func TestNormalize_AbsentResource(t *testing.T) {
	tests := []struct {
		name        string
		requestedIP string
		expectedIP  string
	}{
		{
			name:        "queried address is echoed",
			requestedIP: "192.0.2.123",
			expectedIP:  "192.0.2.123",
		},
		{
			name:        "no address requested yet",
			requestedIP: "",
			expectedIP:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Normalize(nil, tt.requestedIP)
			if err != nil {
				t.Fatalf("Normalize() returned error: %v", err)
			}
			if rec.State != StateAbsent {
				t.Errorf("State = %q, want %q", rec.State, StateAbsent)
			}
			if rec.IP != tt.expectedIP {
				t.Errorf("IP = %q, want %q", rec.IP, tt.expectedIP)
			}
			if rec.Exists() {
				t.Error("Exists() = true for absent record")
			}
		})
	}
}

func TestNormalize_PresentResource(t *testing.T) {
	tests := []struct {
		name     string
		raw      cloudscale.FloatingIP
		expected Record
	}{
		{
			name: "IPv4 single address with server",
			raw: cloudscale.FloatingIP{
				HRef:       "https://api.cloudscale.ch/v1/floating-ips/192.0.2.123",
				Network:    "192.0.2.123/32",
				NextHop:    "198.51.100.1",
				IPVersion:  4,
				Type:       "regional",
				ReversePtr: "vip.example.com",
				Server: &cloudscale.ServerStub{
					HRef: "https://api.cloudscale.ch/v1/servers/47cec963-fcd2-482f-bdb6-24461b2d47b1",
					UUID: "47cec963-fcd2-482f-bdb6-24461b2d47b1",
				},
				Region: &cloudscale.RegionStub{Slug: "lpg"},
				Tags:   map[string]string{"project": "gemini"},
			},
			expected: Record{
				IP:         "192.0.2.123",
				State:      StatePresent,
				IPVersion:  4,
				Type:       "regional",
				Region:     "lpg",
				Server:     "47cec963-fcd2-482f-bdb6-24461b2d47b1",
				ReversePtr: "vip.example.com",
				Tags:       map[string]string{"project": "gemini"},
				HRef:       "https://api.cloudscale.ch/v1/floating-ips/192.0.2.123",
				Network:    "192.0.2.123/32",
				NextHop:    "198.51.100.1",
			},
		},
		{
			name: "IPv6 network carries its prefix length",
			raw: cloudscale.FloatingIP{
				Network:   "2001:db8::/56",
				IPVersion: 6,
				Type:      "regional",
			},
			expected: Record{
				IP:           "2001:db8::",
				State:        StatePresent,
				IPVersion:    6,
				Type:         "regional",
				PrefixLength: 56,
				Network:      "2001:db8::/56",
			},
		},
		{
			name: "IPv6 single address has no prefix length",
			raw: cloudscale.FloatingIP{
				Network:   "2001:db8::cafe/128",
				IPVersion: 6,
				Type:      "global",
			},
			expected: Record{
				IP:        "2001:db8::cafe",
				State:     StatePresent,
				IPVersion: 6,
				Type:      "global",
				Network:   "2001:db8::cafe/128",
			},
		},
		{
			name: "unassigned floating IP leaves server unset",
			raw: cloudscale.FloatingIP{
				Network:   "192.0.2.42/32",
				IPVersion: 4,
				Type:      "regional",
			},
			expected: Record{
				IP:        "192.0.2.42",
				State:     StatePresent,
				IPVersion: 4,
				Type:      "regional",
				Network:   "192.0.2.42/32",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Normalize(&tt.raw, "")
			if err != nil {
				t.Fatalf("Normalize() returned error: %v", err)
			}
			assertRecordEqual(t, rec, tt.expected)
		})
	}
}

func TestNormalize_MalformedNetwork(t *testing.T) {
	tests := []struct {
		name    string
		network string
	}{
		{name: "not a CIDR", network: "192.0.2.123"},
		{name: "garbage", network: "not-an-ip/32"},
		{name: "empty", network: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := &cloudscale.FloatingIP{Network: tt.network, IPVersion: 4}
			_, err := Normalize(raw, "")
			if err == nil {
				t.Fatal("Normalize() returned nil error for malformed network")
			}
			if !IsMalformedResource(err) {
				t.Errorf("IsMalformedResource(%v) = false, want true", err)
			}
		})
	}
}

func assertRecordEqual(t *testing.T, got, want Record) {
	t.Helper()
	if got.IP != want.IP {
		t.Errorf("IP = %q, want %q", got.IP, want.IP)
	}
	if got.State != want.State {
		t.Errorf("State = %q, want %q", got.State, want.State)
	}
	if got.IPVersion != want.IPVersion {
		t.Errorf("IPVersion = %d, want %d", got.IPVersion, want.IPVersion)
	}
	if got.Type != want.Type {
		t.Errorf("Type = %q, want %q", got.Type, want.Type)
	}
	if got.Region != want.Region {
		t.Errorf("Region = %q, want %q", got.Region, want.Region)
	}
	if got.PrefixLength != want.PrefixLength {
		t.Errorf("PrefixLength = %d, want %d", got.PrefixLength, want.PrefixLength)
	}
	if got.Server != want.Server {
		t.Errorf("Server = %q, want %q", got.Server, want.Server)
	}
	if got.ReversePtr != want.ReversePtr {
		t.Errorf("ReversePtr = %q, want %q", got.ReversePtr, want.ReversePtr)
	}
	if len(got.Tags) != len(want.Tags) {
		t.Errorf("Tags = %v, want %v", got.Tags, want.Tags)
	}
	if got.HRef != want.HRef {
		t.Errorf("HRef = %q, want %q", got.HRef, want.HRef)
	}
	if got.Network != want.Network {
		t.Errorf("Network = %q, want %q", got.Network, want.Network)
	}
	if got.NextHop != want.NextHop {
		t.Errorf("NextHop = %q, want %q", got.NextHop, want.NextHop)
	}
}
