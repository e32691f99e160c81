package xchacha20

import "github.com/awnumar/memguard"

// Key is an XChaCha20-Poly1305 key. Immutable once constructed; all
// accessors return defensive copies.
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

// Destroy wipes the key material from memory. The key must not be used
// afterwards.
func (k Key) Destroy() {
	memguard.WipeBytes(k.material)
}

// KeyFormat describes how to generate a new XChaCha20-Poly1305 key. The
// key size is fixed at 32 bytes, so the format carries no parameters.
type KeyFormat struct{}
