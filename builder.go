package keymanager

import "fmt"

// Builder assembles a Manager. Registrations and hooks are collected first,
// then Build validates the whole configuration and freezes it into an
// immutable Manager. Construction-time misconfiguration (duplicate factory,
// missing key type) surfaces from Build, never from a later lookup.
//
// A Builder is single-use and not safe for concurrent use; the Manager it
// yields is both.
type Builder[K Key, F any] struct {
	keyType  string
	version  uint32
	material Material

	validateKey    func(K) error
	validateFormat func(F) error
	createKey      func(F) (K, error)

	factories []any
	names     []string
	err       error // deferred construction error, reported by Build
}

// NewBuilder starts a manager for the given key type identifier, current key
// version, and key material classification.
func NewBuilder[K Key, F any](keyType string, version uint32, material Material) *Builder[K, F] {
	b := &Builder[K, F]{
		keyType:  keyType,
		version:  version,
		material: material,
	}
	if keyType == "" {
		b.err = fmt.Errorf("keymanager: key type must not be empty")
	}
	if material == MaterialUnknown {
		b.err = fmt.Errorf("keymanager: key material classification must be set")
	}
	return b
}

// KeyValidator sets the algorithm's structural key checks, run by
// Manager.ValidateKey after the version guard. The function must be a pure
// predicate and safe for concurrent use, and should wrap ErrInvalidKey so
// callers can classify the failure.
func (b *Builder[K, F]) KeyValidator(fn func(K) error) *Builder[K, F] {
	b.validateKey = fn
	return b
}

// KeyFormatValidator sets the predicate over generation parameters, run by
// Manager.ValidateKeyFormat and before every CreateKey. Same purity and
// reentrancy obligations as KeyValidator; failures should wrap
// ErrInvalidKeyFormat.
func (b *Builder[K, F]) KeyFormatValidator(fn func(F) error) *Builder[K, F] {
	b.validateFormat = fn
	return b
}

// KeyCreator sets the key generation function. It receives an
// already-validated format and must return a key stamped with the manager's
// current version, so that CreateKey's result always passes ValidateKey.
// Optional: a manager without a key creator fails CreateKey with
// ErrNoKeyCreator but validates keys and builds primitives normally.
func (b *Builder[K, F]) KeyCreator(fn func(F) (K, error)) *Builder[K, F] {
	b.createKey = fn
	return b
}

// RegisterFactory adds a factory producing the primitive interface P to the
// builder. The call site names P; the key type parameters are inferred from
// the builder:
//
//	keymanager.RegisterFactory[aead.AEAD](b, aeadFactory{})
//
// Registering a second factory for the same P records ErrDuplicateFactory,
// reported by Build: ambiguous dispatch is rejected eagerly so it can never
// surface as a confusing runtime lookup miss.
//
// This is a free function rather than a method so each registration can
// carry its own primitive type parameter.
func RegisterFactory[P any, K Key, F any](b *Builder[K, F], factory Factory[K, P]) *Builder[K, F] {
	if b.err != nil {
		return b
	}
	if factory == nil {
		b.err = fmt.Errorf("keymanager: nil factory registered for %s", primitiveName[P]())
		return b
	}
	for _, entry := range b.factories {
		if _, ok := entry.(Factory[K, P]); ok {
			b.err = fmt.Errorf("%w: %s already registered on key type %q",
				ErrDuplicateFactory, primitiveName[P](), b.keyType)
			return b
		}
	}
	b.factories = append(b.factories, factory)
	b.names = append(b.names, primitiveName[P]())
	return b
}

// Build validates the collected configuration and returns the frozen
// Manager. Any deferred registration error is returned here.
func (b *Builder[K, F]) Build() (*Manager[K, F], error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.factories) == 0 {
		return nil, fmt.Errorf("keymanager: manager for key type %q has no primitive factories", b.keyType)
	}
	m := &Manager[K, F]{
		keyType:        b.keyType,
		version:        b.version,
		material:       b.material,
		validateKey:    b.validateKey,
		validateFormat: b.validateFormat,
		createKey:      b.createKey,
		factories:      append([]any(nil), b.factories...),
		names:          append([]string(nil), b.names...),
	}
	return m, nil
}
