// Package random is the module's randomness source: cryptographically
// secure bytes for key material and nonces.
package random

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Bytes returns n cryptographically secure random bytes.
func Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("random: failed to read %d bytes: %w", n, err)
	}
	return b, nil
}
