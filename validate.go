package keymanager

import "fmt"

// ValidateVersion checks a key's declared version against the highest
// version a manager understands. Exposed for algorithm packages that
// implement their own KeyValidator and want the same guard over embedded
// structures.
func ValidateVersion(version, maxExpected uint32) error {
	if version > maxExpected {
		return fmt.Errorf("%w: key has version %d; only versions up to %d are supported",
			ErrInvalidKey, version, maxExpected)
	}
	return nil
}
