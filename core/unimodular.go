package core

import (
	"fmt"

	hill "github.com/BackendStack21/hill3-go"
	"github.com/BackendStack21/hill3-go/algebra"
	"github.com/BackendStack21/hill3-go/utils"
)

// Unimodular is the mode of integer keys with determinant exactly ±1.
// No modulus applies: cipher values are plain integers.
type Unimodular struct {
	maxAbs int64
}

// NewUnimodular returns a unimodular mode whose generator draws entries from [-maxAbs, maxAbs].
func NewUnimodular(maxAbs int64) (Unimodular, error) {
	if maxAbs < 1 || maxAbs > utils.MaxKeyEntry {
		return Unimodular{}, fmt.Errorf("%w: entry bound %d not in [1, %d]", hill.ErrEntryOutOfRange, maxAbs, utils.MaxKeyEntry)
	}
	return Unimodular{maxAbs: maxAbs}, nil
}

// MaxAbs returns the generator's entry bound.
func (u Unimodular) MaxAbs() int64 { return u.maxAbs }

func (u Unimodular) Kind() hill.ModeKind { return hill.KindUnimodular }

// String omits the entry bound; it only affects generation, not the cipher.
func (u Unimodular) String() string { return string(hill.KindUnimodular) }

// Sample draws every entry uniformly from [-maxAbs, maxAbs].
func (u Unimodular) Sample(rng hill.Rand) algebra.Matrix3x3 {
	var k algebra.Matrix3x3
	for i := range k {
		for j := range k[i] {
			k[i][j] = rng.Int63n(2*u.maxAbs+1) - u.maxAbs
		}
	}
	return k
}

// IsInvertible reports det(k) ∈ {1, -1}.
func (u Unimodular) IsInvertible(k algebra.Matrix3x3) bool {
	det := algebra.Determinant(k)
	return det == 1 || det == -1
}

// Inverse returns adjugate(k) when det = 1 and -adjugate(k) when det = -1.
func (u Unimodular) Inverse(k algebra.Matrix3x3) (algebra.Matrix3x3, error) {
	switch det := algebra.Determinant(k); det {
	case 1:
		return algebra.Adjugate(k), nil
	case -1:
		return algebra.Negate(algebra.Adjugate(k)), nil
	default:
		return algebra.Matrix3x3{}, fmt.Errorf("%w: det = %d, want ±1", hill.ErrSingularMatrix, det)
	}
}

// Reduce is the identity.
func (u Unimodular) Reduce(v int64) int64 { return v }

// Validate checks that |entry| <= utils.MaxKeyEntry and det(k) = ±1.
func (u Unimodular) Validate(k algebra.Matrix3x3) error {
	if max := algebra.MaxAbs(k); max > utils.MaxKeyEntry {
		return fmt.Errorf("%w: |entry| = %d > %d", hill.ErrEntryOutOfRange, max, utils.MaxKeyEntry)
	}
	if !u.IsInvertible(k) {
		return fmt.Errorf("%w: det = %d, want ±1", hill.ErrSingularMatrix, algebra.Determinant(k))
	}
	return nil
}
