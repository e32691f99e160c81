// Package xchacha20 provides a key manager for XChaCha20-Poly1305 keys,
// for hosts without AES hardware support. Like aesgcm, one key serves both
// the aead.AEAD and stdlib cipher.AEAD primitive interfaces.
package xchacha20

import (
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/rbaliyan/keymanager"
	"github.com/rbaliyan/keymanager/aead"
	"github.com/rbaliyan/keymanager/random"
)

const (
	// TypeURL identifies the XChaCha20-Poly1305 key type.
	TypeURL = "type.googleapis.com/google.crypto.tink.XChaCha20Poly1305Key"

	// Version is the current key version.
	Version = 0

	// KeySize is the only valid key material length.
	KeySize = chacha20poly1305.KeySize
)

// NewKeyManager builds the XChaCha20-Poly1305 key manager.
func NewKeyManager() (*keymanager.Manager[Key, KeyFormat], error) {
	b := keymanager.NewBuilder[Key, KeyFormat](TypeURL, Version, keymanager.MaterialSymmetric).
		KeyValidator(validateKey).
		KeyCreator(createKey)
	keymanager.RegisterFactory[aead.AEAD](b, aeadFactory{})
	keymanager.RegisterFactory[cipher.AEAD](b, cipherFactory{})
	return b.Build()
}

func validateKey(key Key) error {
	if len(key.material) != KeySize {
		return fmt.Errorf("%w: XChaCha20-Poly1305 key has %d bytes; want %d",
			keymanager.ErrInvalidKey, len(key.material), KeySize)
	}
	return nil
}

// createKey draws a fresh 32-byte key. All KeyFormat values are valid, so
// no format validator is registered.
func createKey(KeyFormat) (Key, error) {
	material, err := random.Bytes(KeySize)
	if err != nil {
		return Key{}, fmt.Errorf("xchacha20: failed to generate key material: %w", err)
	}
	return Key{version: Version, material: material}, nil
}

type aeadFactory struct{}

func (aeadFactory) Primitive(key Key) (aead.AEAD, error) {
	c, err := chacha20poly1305.NewX(key.material)
	if err != nil {
		return nil, fmt.Errorf("xchacha20: failed to create cipher: %w", err)
	}
	return aead.New(c), nil
}

type cipherFactory struct{}

func (cipherFactory) Primitive(key Key) (cipher.AEAD, error) {
	c, err := chacha20poly1305.NewX(key.material)
	if err != nil {
		return nil, fmt.Errorf("xchacha20: failed to create cipher: %w", err)
	}
	return c, nil
}

// Compile-time interface checks.
var (
	_ keymanager.Factory[Key, aead.AEAD]   = aeadFactory{}
	_ keymanager.Factory[Key, cipher.AEAD] = cipherFactory{}
	_ keymanager.Key                       = Key{}
)
