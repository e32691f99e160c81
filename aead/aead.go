// Package aead defines the authenticated-encryption primitive interface
// produced by the key managers in this module, plus a wrapper that lifts any
// stdlib cipher.AEAD into it with automatic nonce management.
package aead

import (
	"crypto/cipher"
	"errors"

	"github.com/rbaliyan/keymanager/random"
)

var (
	// ErrCiphertextTooShort is returned when a ciphertext is shorter than a
	// nonce plus an authentication tag.
	ErrCiphertextTooShort = errors.New("aead: ciphertext too short")

	// ErrDecryptionFailed is returned when authentication fails: wrong key,
	// wrong associated data, or tampered ciphertext.
	ErrDecryptionFailed = errors.New("aead: decryption failed")
)

// AEAD provides authenticated encryption with associated data. The
// associated data is authenticated but not encrypted; decryption succeeds
// only with the same associated data that was supplied at encryption.
//
// Implementations must be safe for concurrent use.
type AEAD interface {
	// Encrypt encrypts plaintext, authenticating associatedData alongside it.
	Encrypt(plaintext, associatedData []byte) ([]byte, error)

	// Decrypt decrypts ciphertext produced by Encrypt, verifying
	// associatedData. Returns ErrDecryptionFailed if verification fails.
	Decrypt(ciphertext, associatedData []byte) ([]byte, error)
}

// New wraps c with per-message random nonces. The output layout is
// nonce || ciphertext || tag, so a ciphertext carries everything needed for
// decryption.
func New(c cipher.AEAD) AEAD {
	return &nonceAEAD{c: c}
}

type nonceAEAD struct {
	c cipher.AEAD
}

func (a *nonceAEAD) Encrypt(plaintext, associatedData []byte) ([]byte, error) {
	nonce, err := random.Bytes(a.c.NonceSize())
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(nonce)+len(plaintext)+a.c.Overhead())
	out = append(out, nonce...)
	return a.c.Seal(out, nonce, plaintext, associatedData), nil
}

func (a *nonceAEAD) Decrypt(ciphertext, associatedData []byte) ([]byte, error) {
	nonceSize := a.c.NonceSize()
	if len(ciphertext) < nonceSize+a.c.Overhead() {
		return nil, ErrCiphertextTooShort
	}
	plaintext, err := a.c.Open(nil, ciphertext[:nonceSize], ciphertext[nonceSize:], associatedData)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}
