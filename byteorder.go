package sockaddr

import "encoding/binary"

// htons returns port whose in-memory representation is big-endian.
//
// It is a no-op on big-endian hosts.
func htons(port uint16) uint16 {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], port)
	return binary.NativeEndian.Uint16(b[:])
}

// ntohs is inverse of htons.
func ntohs(v uint16) uint16 {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], v)
	return binary.BigEndian.Uint16(b[:])
}
