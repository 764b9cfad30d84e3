//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

// Package ipv4hdr extracts endpoint addresses from decoded IPv4 headers,
// e.g. packets read from raw sockets.
package ipv4hdr

import (
	"net"

	"github.com/go-faster/errors"
	"github.com/google/gopacket/layers"
	"golang.org/x/net/ipv4"
	"golang.org/x/sys/unix"

	"github.com/go-faster/sockaddr"
)

func fromPair(src, dst net.IP) (s, d sockaddr.IPv4, err error) {
	if s, err = sockaddr.FromNetIP(src); err != nil {
		return s, d, errors.Wrap(err, "source")
	}
	if d, err = sockaddr.FromNetIP(dst); err != nil {
		return s, d, errors.Wrap(err, "destination")
	}
	return s, d, nil
}

// FromHeader returns source and destination addresses of h.
func FromHeader(h *ipv4.Header) (src, dst sockaddr.IPv4, err error) {
	if h == nil {
		return src, dst, errors.New("nil header")
	}
	return fromPair(h.Src, h.Dst)
}

// FromLayer returns source and destination addresses of decoded layer.
func FromLayer(l *layers.IPv4) (src, dst sockaddr.IPv4, err error) {
	if l == nil {
		return src, dst, errors.New("nil layer")
	}
	return fromPair(l.SrcIP, l.DstIP)
}

// Flow is a pair of native socket addresses.
type Flow struct {
	Src unix.RawSockaddrInet4
	Dst unix.RawSockaddrInet4
}

// Endpoints returns Flow for addresses and ports in host byte order.
func Endpoints(src, dst sockaddr.IPv4, srcPort, dstPort uint16) Flow {
	return Flow{
		Src: src.ToSockaddr(srcPort),
		Dst: dst.ToSockaddr(dstPort),
	}
}

// Reverse returns flow with swapped source and destination, for replies.
func (f Flow) Reverse() Flow {
	return Flow{Src: f.Dst, Dst: f.Src}
}
