package keygen

import (
	"testing"

	"github.com/BackendStack21/hill3-go/core"
)

func BenchmarkGenerateFromSeed_FiniteField(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := GenerateFromSeed(core.DefaultFiniteField, []byte("bench"), core.DefaultMaxAttempts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerateFromSeed_Unimodular(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := GenerateFromSeed(core.DefaultUnimodular, []byte("bench"), core.DefaultMaxAttempts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerateBatch(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := GenerateBatch(core.DefaultFiniteField, []byte("bench"), 64, core.DefaultMaxAttempts); err != nil {
			b.Fatal(err)
		}
	}
}
