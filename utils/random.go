package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/binary"
	"io"
	"math"
	"runtime"

	"golang.org/x/crypto/sha3"
)

// DomainRand separates the key-generation stream from every other use of a seed.
const DomainRand = "hill3-rand-v1"

var RandReader io.Reader = rand.Reader

// SecureRandomBytes generates n cryptographically secure random bytes.
// It uses crypto/rand, which relies on the operating system's CSPRNG.
func SecureRandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	_, err := io.ReadFull(RandReader, buf)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// ShakeRand is a deterministic random source backed by the SHAKE256 XOF.
// The same seed always yields the same stream, which makes key generation
// reproducible. A ShakeRand is not safe for concurrent use.
type ShakeRand struct {
	h   sha3.ShakeHash
	buf [8]byte
}

// NewShakeRand returns a source whose stream is SHAKE256(len(domain) || domain || seed).
func NewShakeRand(seed []byte) *ShakeRand {
	h := sha3.NewShake256()
	h.Write([]byte{byte(len(DomainRand))})
	h.Write([]byte(DomainRand))
	h.Write(seed)
	return &ShakeRand{h: h}
}

// Read fills p with the next bytes of the stream. It never fails.
func (r *ShakeRand) Read(p []byte) (int, error) {
	return r.h.Read(p)
}

// Uint64 returns the next 8 bytes of the stream as a little-endian integer.
func (r *ShakeRand) Uint64() uint64 {
	_, _ = r.h.Read(r.buf[:])
	return binary.LittleEndian.Uint64(r.buf[:])
}

// Int63n returns a uniform integer in [0, n).
// It uses rejection sampling so the result is unbiased. It panics if n <= 0,
// matching math/rand.
func (r *ShakeRand) Int63n(n int64) int64 {
	if n <= 0 {
		panic("utils: invalid argument to Int63n")
	}
	max := uint64(n)
	threshold := uint64(math.MaxUint64) - uint64(math.MaxUint64)%max
	for {
		v := r.Uint64()
		if v < threshold {
			return int64(v % max)
		}
	}
}

// ConstantTimeEqual compares two byte slices in constant time.
// It returns true if the slices are equal, false otherwise.
// This function leaks only the length of the slices.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Zeroize overwrites a byte slice with zeros.
// Uses runtime.KeepAlive to prevent compiler optimization from eliminating the stores.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
