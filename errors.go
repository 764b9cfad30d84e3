package sockaddr

import (
	"fmt"

	"github.com/go-faster/errors"
)

// ErrNotIPv4 means that address is not an IPv4 address.
var ErrNotIPv4 = errors.New("not an IPv4 address")

// ErrShortBuffer means that buffer can't fit sockaddr_in.
var ErrShortBuffer = errors.New("short buffer")

// FamilyError is returned by checked conversions when socket address
// family is not AF_INET.
type FamilyError struct {
	Family int
}

func (e *FamilyError) Error() string {
	return fmt.Sprintf("unexpected address family %d", e.Family)
}
