package cipher

import (
	"encoding/binary"
	"fmt"

	hill "github.com/BackendStack21/hill3-go"
	"github.com/BackendStack21/hill3-go/algebra"
	"github.com/BackendStack21/hill3-go/core"
	"github.com/BackendStack21/hill3-go/utils"
)

const DomainFingerprint = "hill3-key-fingerprint-v1"

// matrixBytes is the size of the serialized matrix: nine little-endian int64 entries.
const matrixBytes = algebra.Size * algebra.Size * 8

// SerializeKey encodes a key as len(mode) (u32 LE) || mode text || 9 x int64 LE, row-major.
func SerializeKey(key *hill.Key) []byte {
	mode := []byte(key.Mode().String())
	result := make([]byte, 0, 4+len(mode)+matrixBytes)

	lenBuf := make([]byte, 4)
	binary.LittleEndian.PutUint32(lenBuf, uint32(len(mode)))
	result = append(result, lenBuf...)
	result = append(result, mode...)
	return append(result, serializeMatrix(key.Matrix())...)
}

// DeserializeKey decodes a key produced by SerializeKey.
// The key is re-validated, so a stored singular matrix is rejected.
func DeserializeKey(data []byte) (*hill.Key, error) {
	modeLen, off, err := utils.SafeReadLength(data, 0, utils.MaxModeNameLength)
	if err != nil {
		return nil, fmt.Errorf("invalid key: mode length: %w", err)
	}
	if err := utils.ValidateSliceAccess(data, off, modeLen); err != nil {
		return nil, fmt.Errorf("invalid key: mode truncated: %w", err)
	}
	mode, err := core.ParseMode(string(data[off : off+modeLen]))
	if err != nil {
		return nil, err
	}
	off += modeLen

	if len(data)-off != matrixBytes {
		return nil, fmt.Errorf("invalid key: %w: matrix is %d bytes, want %d", utils.ErrInvalidLength, len(data)-off, matrixBytes)
	}

	var m algebra.Matrix3x3
	for i := range m {
		for j := range m[i] {
			m[i][j] = int64(binary.LittleEndian.Uint64(data[off:]))
			off += 8
		}
	}
	return hill.NewKey(m, mode)
}

// Fingerprint returns a 32-byte SHA3-256 identifier of the key's mode and matrix.
func Fingerprint(key *hill.Key) []byte {
	return utils.HashWithDomain(DomainFingerprint, utils.HashConcat(
		[]byte(key.Mode().String()),
		serializeMatrix(key.Matrix()),
	))
}

func serializeMatrix(m algebra.Matrix3x3) []byte {
	out := make([]byte, matrixBytes)
	off := 0
	for i := range m {
		for j := range m[i] {
			binary.LittleEndian.PutUint64(out[off:], uint64(m[i][j]))
			off += 8
		}
	}
	return out
}
