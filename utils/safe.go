// Package utils provides utility functions for hill3.
// This file contains the bounds that keep every int64 computation of the
// cipher exact, plus helpers for length-prefixed decoding.

package utils

import (
	"errors"
	"fmt"
	"math"
)

// Limits on the magnitude of values entering the cipher.
//
// With |key entry| <= MaxKeyEntry a cofactor is below 2^31 and a determinant
// below 2^48. An inverse entry is then below 2^31 (unimodular) or below
// MaxModulus (finite field), so inverse * cipher value stays below 3 * 2^60
// as long as |cipher value| <= MaxCipherMagnitude.
const (
	// MaxKeyEntry bounds the absolute value of every key matrix entry.
	MaxKeyEntry = 1 << 15

	// MaxModulus bounds the finite field modulus.
	MaxModulus = MaxKeyEntry

	// MaxPlainCode bounds plaintext codes, so an encrypted value never exceeds
	// 3 * MaxKeyEntry * MaxPlainCode < MaxCipherMagnitude.
	MaxPlainCode = 1 << 12

	// MaxCipherMagnitude bounds the absolute value of every cipher stream value.
	MaxCipherMagnitude = 1 << 29

	// MaxMessageLength is the maximum number of symbols in one message.
	MaxMessageLength = 1 << 20

	// MaxBatchSize is the maximum number of keys produced by one batch.
	MaxBatchSize = 1 << 16

	// MaxModeNameLength bounds the serialized mode tag.
	MaxModeNameLength = 64
)

var (
	// ErrOverflow indicates an integer overflow occurred.
	ErrOverflow = errors.New("integer overflow")

	// ErrExceedsLimit indicates a value exceeds the allowed limit.
	ErrExceedsLimit = errors.New("value exceeds allowed limit")

	// ErrInvalidLength indicates an invalid length value.
	ErrInvalidLength = errors.New("invalid length")
)

// CheckLength validates that length is within [0, maxAllowed].
func CheckLength(length, maxAllowed int) error {
	if length < 0 {
		return ErrInvalidLength
	}
	if length > maxAllowed {
		return ErrExceedsLimit
	}
	return nil
}

// CheckMagnitude validates that |v| <= maxAbs.
func CheckMagnitude(v, maxAbs int64) error {
	if v == math.MinInt64 || v > maxAbs || -v > maxAbs {
		return fmt.Errorf("%w: |%d| > %d", ErrExceedsLimit, v, maxAbs)
	}
	return nil
}

// SafeReadLength reads a uint32 length from data at offset, validates it, and returns the value.
// Returns error if not enough bytes available or length exceeds maxAllowed.
func SafeReadLength(data []byte, offset, maxAllowed int) (length int, newOffset int, err error) {
	if offset < 0 || offset+4 > len(data) {
		return 0, offset, errors.New("truncated length field")
	}
	raw := uint32(data[offset]) | uint32(data[offset+1])<<8 | uint32(data[offset+2])<<16 | uint32(data[offset+3])<<24
	if raw > uint32(maxAllowed) || (maxAllowed > math.MaxInt32 && int(raw) < 0) {
		return 0, offset, ErrExceedsLimit
	}
	return int(raw), offset + 4, nil
}

// ValidateSliceAccess checks that accessing data[offset:offset+size] is safe.
func ValidateSliceAccess(data []byte, offset, size int) error {
	if offset < 0 || size < 0 {
		return ErrInvalidLength
	}
	if offset+size < offset {
		return ErrOverflow
	}
	if offset+size > len(data) {
		return errors.New("slice access out of bounds")
	}
	return nil
}
