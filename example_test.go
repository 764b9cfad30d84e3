//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package sockaddr_test

import (
	"fmt"

	"github.com/go-faster/sockaddr"
)

func ExampleIPv4_ToSockaddr() {
	sa := sockaddr.FromOctets(127, 0, 0, 1).ToSockaddr(8080)
	fmt.Println(sa.Addr, sockaddr.SockaddrPort(sa))

	// Output:
	// [127 0 0 1] 8080
}

func ExampleFromSockaddr() {
	sa := sockaddr.FromOctets(10, 0, 0, 5).Sockaddr()
	fmt.Println(sockaddr.FromSockaddr(sa).Octets())

	// Output:
	// 10 0 0 5
}
