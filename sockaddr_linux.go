package sockaddr

import "golang.org/x/sys/unix"

// Linux sockaddr_in has no length header.
func setLen(*unix.RawSockaddrInet4) {}
