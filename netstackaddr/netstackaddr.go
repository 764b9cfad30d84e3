//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

// Package netstackaddr converts between sockaddr values and netstack
// endpoint addresses.
package netstackaddr

import (
	"github.com/go-faster/errors"
	"github.com/google/netstack/tcpip"
	"golang.org/x/sys/unix"

	"github.com/go-faster/sockaddr"
)

// Address returns v as tcpip.Address.
func Address(v sockaddr.IPv4) tcpip.Address {
	b := v.As4()
	return tcpip.Address(b[:])
}

// FromAddress returns addr as IPv4.
func FromAddress(addr tcpip.Address) (sockaddr.IPv4, error) {
	if len(addr) != 4 {
		return sockaddr.IPv4{}, errors.Wrapf(sockaddr.ErrNotIPv4, "address length %d", len(addr))
	}
	return sockaddr.FromOctets(addr[0], addr[1], addr[2], addr[3]), nil
}

// FullAddress returns endpoint address for v and port in host byte order.
func FullAddress(v sockaddr.IPv4, port uint16) tcpip.FullAddress {
	return tcpip.FullAddress{
		Addr: Address(v),
		Port: port,
	}
}

// FromFullAddress returns address and port of fa.
//
// The NIC is ignored.
func FromFullAddress(fa tcpip.FullAddress) (sockaddr.IPv4, uint16, error) {
	v, err := FromAddress(fa.Addr)
	if err != nil {
		return sockaddr.IPv4{}, 0, err
	}
	return v, fa.Port, nil
}

// ToSockaddr returns sockaddr_in for fa.
func ToSockaddr(fa tcpip.FullAddress) (unix.RawSockaddrInet4, error) {
	v, port, err := FromFullAddress(fa)
	if err != nil {
		return unix.RawSockaddrInet4{}, errors.Wrap(err, "full address")
	}
	return v.ToSockaddr(port), nil
}

// FromSockaddr returns endpoint address for sa.
//
// As with sockaddr.FromSockaddr, the family of sa is not checked.
func FromSockaddr(sa unix.RawSockaddrInet4) tcpip.FullAddress {
	return FullAddress(sockaddr.FromSockaddr(sa), sockaddr.SockaddrPort(sa))
}
