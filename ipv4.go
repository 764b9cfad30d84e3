// Package sockaddr implements IPv4 address value and conversions to
// and from the native socket address structure (sockaddr_in).
package sockaddr

import "encoding/binary"

// IPv4 is an IPv4 address stored as four bytes in network byte order.
//
// Bytes are placed explicitly, so the stored value does not depend on host
// endianness and can be copied into sockaddr_in as is.
//
// Zero value is 0.0.0.0.
type IPv4 struct {
	b [4]byte
}

// FromOctets returns address o0.o1.o2.o3, where o0 is the most significant
// octet.
func FromOctets(o0, o1, o2, o3 uint8) IPv4 {
	return IPv4{b: [4]byte{o0, o1, o2, o3}}
}

// IPv4From4 returns address from octets in reading order.
//
// Also accepts raw address field of sockaddr_in, which has the same layout.
func IPv4From4(b [4]byte) IPv4 {
	return IPv4{b: b}
}

// IPv4FromUint32 returns address from numeric value where the most
// significant byte is the first octet, e.g. 0xC0A80101 is 192.168.1.1.
func IPv4FromUint32(v uint32) IPv4 {
	var a IPv4
	binary.BigEndian.PutUint32(a.b[:], v)
	return a
}

// As4 returns octets in reading order, which are also the bytes in
// network order.
func (v IPv4) As4() [4]byte { return v.b }

// Octets returns the four octets, most significant first.
func (v IPv4) Octets() (o0, o1, o2, o3 uint8) {
	return v.b[0], v.b[1], v.b[2], v.b[3]
}

// Uint32 returns numeric value of address, see IPv4FromUint32.
func (v IPv4) Uint32() uint32 {
	return binary.BigEndian.Uint32(v.b[:])
}

// IsZero reports whether v is 0.0.0.0.
func (v IPv4) IsZero() bool { return v == IPv4{} }

// Compare returns -1, 0 or 1 if v is less, equal or greater than w.
func (v IPv4) Compare(w IPv4) int {
	a, b := v.Uint32(), w.Uint32()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less reports whether v sorts before w.
func (v IPv4) Less(w IPv4) bool { return v.Compare(w) < 0 }
