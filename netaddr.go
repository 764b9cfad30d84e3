package sockaddr

import (
	"net"
	"net/netip"

	"github.com/go-faster/errors"
	"inet.af/netaddr"
)

// ToIP represents IPv4 as netaddr.IP.
func (v IPv4) ToIP() netaddr.IP {
	return netaddr.IPFrom4(v.b)
}

// ToIPv4 represents ip as IPv4, unmapping IPv4-mapped IPv6 address.
func ToIPv4(ip netaddr.IP) (IPv4, error) {
	ip = ip.Unmap()
	if !ip.Is4() {
		return IPv4{}, errors.Wrapf(ErrNotIPv4, "%s", ip)
	}
	return IPv4{b: ip.As4()}, nil
}

// Addr represents IPv4 as netip.Addr.
func (v IPv4) Addr() netip.Addr {
	return netip.AddrFrom4(v.b)
}

// FromAddr represents addr as IPv4, unmapping IPv4-mapped IPv6 address.
func FromAddr(addr netip.Addr) (IPv4, error) {
	addr = addr.Unmap()
	if !addr.Is4() {
		return IPv4{}, errors.Wrapf(ErrNotIPv4, "%s", addr)
	}
	return IPv4{b: addr.As4()}, nil
}

// NetIP represents IPv4 as 4-byte net.IP.
func (v IPv4) NetIP() net.IP {
	return net.IPv4(v.b[0], v.b[1], v.b[2], v.b[3]).To4()
}

// FromNetIP represents ip as IPv4. Both 4 and 16 byte forms are accepted.
func FromNetIP(ip net.IP) (IPv4, error) {
	ip4 := ip.To4()
	if ip4 == nil {
		return IPv4{}, errors.Wrapf(ErrNotIPv4, "%s", ip)
	}
	var v IPv4
	copy(v.b[:], ip4)
	return v, nil
}
