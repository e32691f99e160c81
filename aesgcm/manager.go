// Package aesgcm provides a key manager for AES-GCM keys.
//
// One key serves two primitive interfaces: the module's aead.AEAD, which
// handles nonces internally, and the stdlib cipher.AEAD for callers that
// manage nonces themselves.
//
// Usage:
//
//	m, err := aesgcm.NewKeyManager()
//	key, err := m.CreateKey(aesgcm.KeyFormat{KeySize: 32})
//	a, err := keymanager.Create[aead.AEAD](m, key)
package aesgcm

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/rbaliyan/keymanager"
	"github.com/rbaliyan/keymanager/aead"
	"github.com/rbaliyan/keymanager/random"
)

const (
	// TypeURL identifies the AES-GCM key type.
	TypeURL = "type.googleapis.com/google.crypto.tink.AesGcmKey"

	// Version is the current key version. Keys declaring a greater version
	// are rejected.
	Version = 0
)

// NewKeyManager builds the AES-GCM key manager, with factories registered
// for aead.AEAD and cipher.AEAD.
func NewKeyManager() (*keymanager.Manager[Key, KeyFormat], error) {
	b := keymanager.NewBuilder[Key, KeyFormat](TypeURL, Version, keymanager.MaterialSymmetric).
		KeyValidator(validateKey).
		KeyFormatValidator(validateKeyFormat).
		KeyCreator(createKey)
	keymanager.RegisterFactory[aead.AEAD](b, aeadFactory{})
	keymanager.RegisterFactory[cipher.AEAD](b, cipherFactory{})
	return b.Build()
}

// validateKeySize rejects everything but the AES-128 and AES-256 sizes.
// AES-192 is deliberately not offered.
func validateKeySize(n int) error {
	if n != 16 && n != 32 {
		return fmt.Errorf("%w: AES key has %d bytes; want 16 or 32", keymanager.ErrInvalidKey, n)
	}
	return nil
}

func validateKey(key Key) error {
	return validateKeySize(len(key.material))
}

func validateKeyFormat(format KeyFormat) error {
	if format.KeySize != 16 && format.KeySize != 32 {
		return fmt.Errorf("%w: AES key size %d bytes; want 16 or 32", keymanager.ErrInvalidKeyFormat, format.KeySize)
	}
	return nil
}

func createKey(format KeyFormat) (Key, error) {
	material, err := random.Bytes(int(format.KeySize))
	if err != nil {
		return Key{}, fmt.Errorf("aesgcm: failed to generate key material: %w", err)
	}
	return Key{version: Version, material: material}, nil
}

// newGCM builds the stdlib GCM cipher for a key.
func newGCM(key Key) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key.material)
	if err != nil {
		return nil, fmt.Errorf("aesgcm: failed to create cipher: %w", err)
	}
	g, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("aesgcm: failed to create GCM: %w", err)
	}
	return g, nil
}

// aeadFactory produces the high-level AEAD with internal nonce management.
type aeadFactory struct{}

func (aeadFactory) Primitive(key Key) (aead.AEAD, error) {
	g, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return aead.New(g), nil
}

// cipherFactory exposes the raw GCM cipher over the same key material.
type cipherFactory struct{}

func (cipherFactory) Primitive(key Key) (cipher.AEAD, error) {
	return newGCM(key)
}

// Compile-time interface checks.
var (
	_ keymanager.Factory[Key, aead.AEAD]   = aeadFactory{}
	_ keymanager.Factory[Key, cipher.AEAD] = cipherFactory{}
	_ keymanager.Key                       = Key{}
)
