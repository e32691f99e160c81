package keymanager_test

import (
	"testing"

	"github.com/rbaliyan/keymanager"
	"github.com/rbaliyan/keymanager/aead"
	"github.com/rbaliyan/keymanager/aesgcm"
)

func benchmarkManager(b *testing.B) (*keymanager.Manager[aesgcm.Key, aesgcm.KeyFormat], aesgcm.Key) {
	b.Helper()
	m, err := aesgcm.NewKeyManager()
	if err != nil {
		b.Fatal(err)
	}
	key, err := m.CreateKey(aesgcm.KeyFormat{KeySize: 32})
	if err != nil {
		b.Fatal(err)
	}
	return m, key
}

func BenchmarkCreateKey(b *testing.B) {
	m, _ := benchmarkManager(b)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := m.CreateKey(aesgcm.KeyFormat{KeySize: 32}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCreatePrimitive(b *testing.B) {
	m, key := benchmarkManager(b)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := keymanager.Create[aead.AEAD](m, key); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncrypt1KB(b *testing.B) {
	m, key := benchmarkManager(b)
	a, err := keymanager.Create[aead.AEAD](m, key)
	if err != nil {
		b.Fatal(err)
	}
	payload := make([]byte, 1024)
	for i := range payload {
		payload[i] = byte(i % 256)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := a.Encrypt(payload, nil); err != nil {
			b.Fatal(err)
		}
	}
}
