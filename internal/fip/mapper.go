package fip

import (
	"net/netip"

	"github.com/cloudscale-tools/fipctl/internal/cloudscale"
)

// Normalize converts a raw API floating IP into a canonical Record.
//
// A nil raw resource yields an absent record carrying the originally
// requested address. For present resources the bare address is
// extracted from the CIDR network field and the nested server and
// region references are flattened to their identifiers. Normalize is a
// pure transformation with no side effects.
func Normalize(raw *cloudscale.FloatingIP, requestedIP string) (Record, error) {
	if raw == nil {
		return AbsentRecord(requestedIP), nil
	}

	prefix, err := netip.ParsePrefix(raw.Network)
	if err != nil {
		return Record{}, &MalformedResourceError{Field: "network", Value: raw.Network, Err: err}
	}

	rec := Record{
		IP:         prefix.Addr().String(),
		State:      StatePresent,
		IPVersion:  raw.IPVersion,
		Type:       raw.Type,
		ReversePtr: raw.ReversePtr,
		Tags:       raw.Tags,
		HRef:       raw.HRef,
		Network:    raw.Network,
		NextHop:    raw.NextHop,
	}

	// The server href is useless downstream; only the UUID survives.
	if raw.Server != nil {
		rec.Server = raw.Server.UUID
	}
	if raw.Region != nil {
		rec.Region = raw.Region.Slug
	}

	// The API encodes the prefix length in the network mask. Only IPv6
	// networks shorter than a single address carry one.
	if raw.IPVersion == 6 && prefix.Bits() < 128 {
		rec.PrefixLength = prefix.Bits()
	}

	return rec, nil
}
