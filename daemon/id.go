package daemon

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewID mints an opaque daemon id: 8 hex characters drawn from a random
// 32-bit integer (spec.md §3). Collisions are not defended against here —
// the registry's uniqueness constraint is expected to surface a spawn
// failure if one ever occurs (spec.md §9).
func NewID() string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand failing is a platform-level emergency; fall back to a
		// fixed, clearly-marked id rather than panicking mid-connect.
		return "00000000"
	}

	return fmt.Sprintf("%08x", binary.BigEndian.Uint32(b[:]))
}
