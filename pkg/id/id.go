package id

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// GenerateULID creates a prefixed, lexicographically sortable identifier.
// Example: REF_01J8ZC3T9GQ4W6XKPD0N5M2VHB
func GenerateULID(prefix string) string {
	u := ulid.MustNew(ulid.Timestamp(time.Now()), ulid.Monotonic(rand.Reader, 0))
	return prefix + "_" + u.String()
}
