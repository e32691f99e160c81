// Package keymanager implements a typed multi-primitive key manager: a
// component that, for a single key type K, validates keys and key formats,
// generates fresh keys, and manufactures any of several independently
// registered primitive interfaces from one key value.
//
// A Manager is assembled with a Builder and is immutable once built. The set
// of primitive interfaces it supports is exactly the set of factories
// registered before Build; dispatch happens on the primitive interface type
// named at the call site:
//
//	m, err := aesgcm.NewKeyManager()
//	key, err := m.CreateKey(aesgcm.KeyFormat{KeySize: 32})
//	a, err := keymanager.Create[aead.AEAD](m, key)
//
// All Manager operations are safe for concurrent use, provided registered
// factories and validators are themselves reentrant.
package keymanager

import (
	"fmt"
	"strings"
)

// Manager owns the frozen factory registry plus the validation, generation,
// and metadata logic for one key type K with key format F.
//
// Managers are constructed with NewBuilder and never change afterwards. The
// zero value is not usable.
type Manager[K Key, F any] struct {
	keyType  string
	version  uint32
	material Material

	validateKey    func(K) error
	validateFormat func(F) error
	createKey      func(F) (K, error)

	// Type-erased Factory[K, P] values, frozen at Build, with the printable
	// primitive names in matching order.
	factories []any
	names     []string
}

// KeyType returns the key type identifier this manager handles,
// e.g. "type.googleapis.com/google.crypto.tink.AesGcmKey".
func (m *Manager[K, F]) KeyType() string {
	return m.keyType
}

// Version returns the manager's current key version. Keys the manager
// creates carry this version; keys declaring a greater version are rejected.
func (m *Manager[K, F]) Version() uint32 {
	return m.version
}

// KeyMaterial returns the classification of the key material this manager
// handles.
func (m *Manager[K, F]) KeyMaterial() Material {
	return m.material
}

// Primitives returns the names of the primitive interfaces this manager can
// produce, in registration order.
func (m *Manager[K, F]) Primitives() []string {
	return append([]string(nil), m.names...)
}

// ValidateKey checks that key is structurally acceptable to this manager.
// It is a pure predicate: no side effects, same verdict on every call.
//
// The version guard runs first: a key declaring a version greater than the
// manager's own fails with ErrInvalidKey. This keeps a downgraded manager
// from silently accepting keys produced by a newer format it does not
// understand. The algorithm's own structural checks run after.
func (m *Manager[K, F]) ValidateKey(key K) error {
	if err := ValidateVersion(key.Version(), m.version); err != nil {
		m.observeValidationFailure("key")
		return err
	}
	if m.validateKey != nil {
		if err := m.validateKey(key); err != nil {
			m.observeValidationFailure("key")
			return err
		}
	}
	return nil
}

// ValidateKeyFormat checks that format carries generation parameters this
// manager supports. Pure predicate, same contract as ValidateKey.
func (m *Manager[K, F]) ValidateKeyFormat(format F) error {
	if m.validateFormat != nil {
		if err := m.validateFormat(format); err != nil {
			m.observeValidationFailure("key_format")
			return err
		}
	}
	return nil
}

// CreateKey generates a new key according to format. The format is validated
// first; on success the key creator draws fresh material from its randomness
// source and stamps the manager's current version, so the returned key always
// passes ValidateKey on the same manager.
//
// Managers built without a key creator return ErrNoKeyCreator.
func (m *Manager[K, F]) CreateKey(format F) (K, error) {
	var zero K
	if err := m.ValidateKeyFormat(format); err != nil {
		return zero, err
	}
	if m.createKey == nil {
		return zero, ErrNoKeyCreator
	}
	key, err := m.createKey(format)
	if err != nil {
		return zero, err
	}
	m.observeKeyCreated()
	return key, nil
}

// Create builds an instance of the primitive interface P from key, using the
// factory m has registered for P. The call site names P explicitly; the
// remaining type parameters are inferred from the manager:
//
//	a, err := keymanager.Create[aead.AEAD](m, key)
//
// If no factory for P is registered the call fails with
// ErrUnsupportedPrimitive, regardless of the key's validity. Otherwise the
// key is validated and, only on success, handed to the factory; the
// factory's result or error is returned unmodified.
func Create[P any, K Key, F any](m *Manager[K, F], key K) (P, error) {
	var zero P
	factory, ok := lookupFactory[P](m)
	if !ok {
		return zero, fmt.Errorf("%w: no factory registered for %s on key type %q",
			ErrUnsupportedPrimitive, primitiveName[P](), m.keyType)
	}
	if err := m.ValidateKey(key); err != nil {
		return zero, err
	}
	p, err := factory.Primitive(key)
	if err != nil {
		return zero, err
	}
	m.observePrimitiveCreated(primitiveName[P]())
	return p, nil
}

// lookupFactory scans the frozen registry for the factory producing P. The
// scan is a handful of checked type assertions, no reflection; Build
// guarantees at most one entry matches.
func lookupFactory[P any, K Key, F any](m *Manager[K, F]) (Factory[K, P], bool) {
	for _, entry := range m.factories {
		if factory, ok := entry.(Factory[K, P]); ok {
			return factory, true
		}
	}
	return nil, false
}

// primitiveName returns a printable name for the primitive interface P,
// e.g. "aead.AEAD". Used only in error messages and metric labels.
func primitiveName[P any]() string {
	return strings.TrimPrefix(fmt.Sprintf("%T", (*P)(nil)), "*")
}
