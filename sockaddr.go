//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package sockaddr

import (
	"unsafe"

	"github.com/go-faster/errors"
	"golang.org/x/sys/unix"
)

// ToSockaddr returns sockaddr_in for address and port.
//
// The port is in host byte order and is stored in network byte order.
// Address bytes are copied as is, they are already in network byte order.
// Padding is zeroed.
func (v IPv4) ToSockaddr(port uint16) unix.RawSockaddrInet4 {
	sa := unix.RawSockaddrInet4{
		Family: unix.AF_INET,
		Port:   htons(port),
		Addr:   v.b,
	}
	setLen(&sa)
	return sa
}

// Sockaddr is shorthand for ToSockaddr(0).
func (v IPv4) Sockaddr() unix.RawSockaddrInet4 { return v.ToSockaddr(0) }

// FromSockaddr returns address from sockaddr_in address field.
//
// The family is not checked: caller must ensure that sa is AF_INET.
// Use DecodeSockaddr or FromUnixSockaddr for checked conversion.
func FromSockaddr(sa unix.RawSockaddrInet4) IPv4 {
	return IPv4{b: sa.Addr}
}

// SockaddrPort returns port of sa in host byte order.
func SockaddrPort(sa unix.RawSockaddrInet4) uint16 {
	return ntohs(sa.Port)
}

// SockaddrBytes returns memory of sa as byte slice.
//
// The slice aliases sa.
func SockaddrBytes(sa *unix.RawSockaddrInet4) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(sa)), unix.SizeofSockaddrInet4)
}

// DecodeSockaddr copies sockaddr_in from b, e.g. from the name buffer
// filled by recvfrom or getsockname.
//
// Unlike FromSockaddr, the family tag is validated.
func DecodeSockaddr(b []byte) (unix.RawSockaddrInet4, error) {
	var sa unix.RawSockaddrInet4
	if len(b) < unix.SizeofSockaddrInet4 {
		return sa, errors.Wrapf(ErrShortBuffer, "got %d, need %d",
			len(b), unix.SizeofSockaddrInet4,
		)
	}
	copy(SockaddrBytes(&sa), b)
	if sa.Family != unix.AF_INET {
		return unix.RawSockaddrInet4{}, &FamilyError{Family: int(sa.Family)}
	}
	return sa, nil
}

// ToSockaddrInet4 returns address as unix.Sockaddr, suitable for
// unix.Bind, unix.Connect and unix.Sendto.
func (v IPv4) ToSockaddrInet4(port uint16) *unix.SockaddrInet4 {
	return &unix.SockaddrInet4{
		Port: int(port),
		Addr: v.b,
	}
}

// FromSockaddrInet4 returns address and port of sa.
func FromSockaddrInet4(sa *unix.SockaddrInet4) (IPv4, uint16) {
	return IPv4{b: sa.Addr}, uint16(sa.Port)
}

// FromUnixSockaddr returns address and port of sa, as returned by
// unix.Accept, unix.Getpeername or unix.Recvfrom.
func FromUnixSockaddr(sa unix.Sockaddr) (IPv4, uint16, error) {
	switch sa := sa.(type) {
	case *unix.SockaddrInet4:
		if sa == nil {
			return IPv4{}, 0, errors.New("nil sockaddr")
		}
		v, port := FromSockaddrInet4(sa)
		return v, port, nil
	case *unix.SockaddrInet6:
		return IPv4{}, 0, &FamilyError{Family: unix.AF_INET6}
	case *unix.SockaddrUnix:
		return IPv4{}, 0, &FamilyError{Family: unix.AF_UNIX}
	case nil:
		return IPv4{}, 0, errors.New("nil sockaddr")
	default:
		return IPv4{}, 0, errors.Wrapf(&FamilyError{Family: unix.AF_UNSPEC}, "%T", sa)
	}
}
