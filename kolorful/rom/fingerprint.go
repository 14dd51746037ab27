package rom

import (
	"fmt"

	"github.com/cespare/xxhash"
)

// Fingerprint identifies an image by its xxhash-64 digest.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// FingerprintString is Fingerprint as 16 hex digits, the form used in logs.
func FingerprintString(data []byte) string {
	return fmt.Sprintf("%016x", Fingerprint(data))
}
