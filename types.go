package hill

import (
	"fmt"

	"github.com/BackendStack21/hill3-go/algebra"
)

// ModeKind tags the arithmetic a key lives in.
type ModeKind string

const (
	// KindFiniteField keys are invertible modulo a prime.
	KindFiniteField ModeKind = "finite-field"
	// KindUnimodular keys are integer matrices with determinant ±1.
	KindUnimodular ModeKind = "unimodular-integer"
)

// =============================================================================
// Random Source
// =============================================================================

// Rand is the random source used by key generation.
// *math/rand.Rand and *utils.ShakeRand both satisfy it.
type Rand interface {
	// Int63n returns a uniform integer in [0, n). n must be positive.
	Int63n(n int64) int64
}

// =============================================================================
// Mode
// =============================================================================

// Mode is the capability set the cipher engine needs from an arithmetic setting.
// Implementations live in package core and are immutable.
type Mode interface {
	// Kind returns the mode tag.
	Kind() ModeKind

	// String returns the stable text form, e.g. "finite-field:29".
	String() string

	// Sample draws one candidate key matrix from the mode's entry range.
	Sample(rng Rand) algebra.Matrix3x3

	// IsInvertible reports whether m satisfies the mode's invertibility predicate.
	IsInvertible(m algebra.Matrix3x3) bool

	// Inverse returns the exact inverse of m in this arithmetic.
	Inverse(m algebra.Matrix3x3) (algebra.Matrix3x3, error)

	// Reduce maps a raw integer result into the mode's value set.
	Reduce(v int64) int64

	// Validate checks that m is a usable key: entries in range and invertible.
	Validate(m algebra.Matrix3x3) error
}

// =============================================================================
// Key
// =============================================================================

// Key is an immutable key matrix tagged with its Mode.
type Key struct {
	matrix algebra.Matrix3x3
	mode   Mode
}

// NewKey validates m under mode and returns the key.
// A matrix failing the mode's invertibility predicate yields ErrSingularMatrix.
func NewKey(m algebra.Matrix3x3, mode Mode) (*Key, error) {
	if mode == nil {
		return nil, fmt.Errorf("%w: nil mode", ErrUnknownMode)
	}
	if err := mode.Validate(m); err != nil {
		return nil, err
	}
	return &Key{matrix: m, mode: mode}, nil
}

// Matrix returns a copy of the key matrix.
func (k *Key) Matrix() algebra.Matrix3x3 {
	return k.matrix
}

// Mode returns the arithmetic mode of the key.
func (k *Key) Mode() Mode {
	return k.mode
}

// Determinant returns the exact integer determinant of the key matrix.
func (k *Key) Determinant() int64 {
	return algebra.Determinant(k.matrix)
}

// String renders the key for display, e.g. "finite-field:29 [[2 3 0] [1 4 0] [0 0 1]]".
func (k *Key) String() string {
	return fmt.Sprintf("%s %v", k.mode, k.matrix)
}
