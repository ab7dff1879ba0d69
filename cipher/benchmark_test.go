package cipher

import (
	"strings"
	"testing"

	"github.com/BackendStack21/hill3-go/core"
	"github.com/BackendStack21/hill3-go/keygen"
)

// =============================================================================
// Cipher Benchmarks
// =============================================================================

var benchMessage = strings.Repeat("ATTACK AT DAWN. ", 64)

func BenchmarkEncrypt_FiniteField(b *testing.B) {
	key, err := keygen.GenerateFromSeed(core.DefaultFiniteField, []byte("bench"), core.DefaultMaxAttempts)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Encrypt(key, benchMessage); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecrypt_FiniteField(b *testing.B) {
	key, err := keygen.GenerateFromSeed(core.DefaultFiniteField, []byte("bench"), core.DefaultMaxAttempts)
	if err != nil {
		b.Fatal(err)
	}
	stream, err := Encrypt(key, benchMessage)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Decrypt(key, stream); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecrypt_Unimodular(b *testing.B) {
	key, err := keygen.GenerateFromSeed(core.DefaultUnimodular, []byte("bench"), core.DefaultMaxAttempts)
	if err != nil {
		b.Fatal(err)
	}
	stream, err := Encrypt(key, benchMessage)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Decrypt(key, stream); err != nil {
			b.Fatal(err)
		}
	}
}
