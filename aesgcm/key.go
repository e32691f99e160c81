package aesgcm

import "github.com/awnumar/memguard"

// Key is an AES-GCM key: raw key material plus the version it was created
// with. Immutable once constructed; all accessors return defensive copies.
type Key struct {
	version  uint32
	material []byte
}

// NewKey constructs a key from existing material. The material is copied;
// the caller may zero its slice after construction.
func NewKey(version uint32, material []byte) Key {
	b := make([]byte, len(material))
	copy(b, material)
	return Key{version: version, material: b}
}

// Version returns the version the key was created with.
func (k Key) Version() uint32 {
	return k.version
}

// Material returns a copy of the raw key material.
func (k Key) Material() []byte {
	b := make([]byte, len(k.material))
	copy(b, k.material)
	return b
}

// Size returns the key material length in bytes.
func (k Key) Size() int {
	return len(k.material)
}

// Destroy wipes the key material from memory. The key must not be used
// afterwards; copies previously returned by Material are unaffected.
func (k Key) Destroy() {
	memguard.WipeBytes(k.material)
}

// KeyFormat describes how to generate a new AES-GCM key.
type KeyFormat struct {
	// KeySize is the desired key material length in bytes: 16 for AES-128
	// or 32 for AES-256.
	KeySize uint32
}
