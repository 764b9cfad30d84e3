//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package sockaddr

import "golang.org/x/sys/unix"

func setLen(sa *unix.RawSockaddrInet4) {
	sa.Len = unix.SizeofSockaddrInet4
}
