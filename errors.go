package keymanager

import "errors"

var (
	// ErrUnsupportedPrimitive is returned by Create when the manager has no
	// factory registered for the requested primitive interface. This is a
	// caller programming error, never a transient condition.
	ErrUnsupportedPrimitive = errors.New("keymanager: unsupported primitive")

	// ErrInvalidKey is returned when a key fails validation: version too
	// new, malformed or undersized material, or another structural violation.
	ErrInvalidKey = errors.New("keymanager: invalid key")

	// ErrInvalidKeyFormat is returned when a key format carries generation
	// parameters the manager does not support.
	ErrInvalidKeyFormat = errors.New("keymanager: invalid key format")

	// ErrDuplicateFactory is returned at construction when two factories
	// claim the same primitive interface (ambiguous dispatch).
	ErrDuplicateFactory = errors.New("keymanager: duplicate primitive factory")

	// ErrNoKeyCreator is returned by CreateKey on a manager built without a
	// key creator; such a manager can only validate keys and build primitives.
	ErrNoKeyCreator = errors.New("keymanager: manager has no key creator")
)

// IsUnsupportedPrimitive returns true if the error is or wraps ErrUnsupportedPrimitive.
func IsUnsupportedPrimitive(err error) bool {
	return errors.Is(err, ErrUnsupportedPrimitive)
}

// IsInvalidKey returns true if the error is or wraps ErrInvalidKey.
func IsInvalidKey(err error) bool {
	return errors.Is(err, ErrInvalidKey)
}

// IsInvalidKeyFormat returns true if the error is or wraps ErrInvalidKeyFormat.
func IsInvalidKeyFormat(err error) bool {
	return errors.Is(err, ErrInvalidKeyFormat)
}

// IsDuplicateFactory returns true if the error is or wraps ErrDuplicateFactory.
func IsDuplicateFactory(err error) bool {
	return errors.Is(err, ErrDuplicateFactory)
}
