package utils

import (
	"encoding/binary"
	"math"

	"golang.org/x/crypto/sha3"
)

// HashWithDomain returns SHA3-256(len(domain) || domain || data).
// It panics if domain is longer than 255 bytes.
func HashWithDomain(domain string, data []byte) []byte {
	if len(domain) > math.MaxUint8 {
		panic("utils: domain tag longer than 255 bytes")
	}
	h := sha3.New256()
	h.Write([]byte{byte(len(domain))})
	h.Write([]byte(domain))
	h.Write(data)
	return h.Sum(nil)
}

// HashConcat hashes inputs with a u32 LE length prefix on each, so that
// ("ab", "c") and ("a", "bc") differ.
func HashConcat(inputs ...[]byte) []byte {
	h := sha3.New256()
	var prefix [4]byte
	for _, in := range inputs {
		if uint64(len(in)) > math.MaxUint32 {
			panic("utils: HashConcat input exceeds 4 GiB")
		}
		binary.LittleEndian.PutUint32(prefix[:], uint32(len(in)))
		h.Write(prefix[:])
		h.Write(in)
	}
	return h.Sum(nil)
}
