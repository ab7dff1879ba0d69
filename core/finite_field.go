package core

import (
	"fmt"

	hill "github.com/BackendStack21/hill3-go"
	"github.com/BackendStack21/hill3-go/algebra"
	"github.com/BackendStack21/hill3-go/modular"
)

// FiniteField is the mode of keys invertible modulo a prime m.
type FiniteField struct {
	m int64
}

// NewFiniteField returns the finite field mode for the prime m.
func NewFiniteField(m int64) (FiniteField, error) {
	if err := ValidateModulus(m); err != nil {
		return FiniteField{}, err
	}
	return FiniteField{m: m}, nil
}

// Modulus returns m.
func (f FiniteField) Modulus() int64 { return f.m }

func (f FiniteField) Kind() hill.ModeKind { return hill.KindFiniteField }

func (f FiniteField) String() string {
	return fmt.Sprintf("%s:%d", hill.KindFiniteField, f.m)
}

// Sample draws every entry uniformly from [0, m).
func (f FiniteField) Sample(rng hill.Rand) algebra.Matrix3x3 {
	var k algebra.Matrix3x3
	for i := range k {
		for j := range k[i] {
			k[i][j] = rng.Int63n(f.m)
		}
	}
	return k
}

// IsInvertible reports det(k) mod m != 0.
func (f FiniteField) IsInvertible(k algebra.Matrix3x3) bool {
	return modular.Mod(algebra.Determinant(k), f.m) != 0
}

// Inverse computes (det(k)^-1 mod m) * adjugate(k) mod m.
func (f FiniteField) Inverse(k algebra.Matrix3x3) (algebra.Matrix3x3, error) {
	det := modular.Mod(algebra.Determinant(k), f.m)
	detInv, err := modular.InverseMod(det, f.m)
	if err != nil {
		return algebra.Matrix3x3{}, fmt.Errorf("%w: det ≡ 0 (mod %d): %w", hill.ErrSingularMatrix, f.m, err)
	}
	adj := algebra.ReduceMod(algebra.Adjugate(k), f.m)
	return algebra.ReduceMod(algebra.Scale(adj, detInv), f.m), nil
}

// Reduce returns v mod m in [0, m).
func (f FiniteField) Reduce(v int64) int64 {
	return modular.Mod(v, f.m)
}

// Validate checks that every entry lies in [0, m) and that k is invertible mod m.
func (f FiniteField) Validate(k algebra.Matrix3x3) error {
	for i := range k {
		for j, x := range k[i] {
			if x < 0 || x >= f.m {
				return fmt.Errorf("%w: K[%d][%d] = %d not in [0, %d)", hill.ErrEntryOutOfRange, i, j, x, f.m)
			}
		}
	}
	if !f.IsInvertible(k) {
		return fmt.Errorf("%w: det ≡ 0 (mod %d)", hill.ErrSingularMatrix, f.m)
	}
	return nil
}
