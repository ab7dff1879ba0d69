// Package modular provides scalar arithmetic modulo a prime.
package modular

import (
	"errors"
	"fmt"
)

// ErrZeroInverse is returned when asked to invert a value congruent to zero.
var ErrZeroInverse = errors.New("modular: no inverse for value congruent to zero")

// Mod returns x mod p, ensuring the result is always non-negative in [0, p).
func Mod(x, p int64) int64 {
	r := x % p
	if r < 0 {
		r += p
	}
	return r
}

// PowMod computes base^exp mod p by square-and-multiply.
// exp must be non-negative and p must be positive and below 2^31 so that
// intermediate products fit in an int64.
func PowMod(base, exp, p int64) int64 {
	if p == 1 {
		return 0
	}
	result := int64(1)
	b := Mod(base, p)
	for exp > 0 {
		if exp&1 == 1 {
			result = result * b % p
		}
		b = b * b % p
		exp >>= 1
	}
	return result
}

// InverseMod computes the modular multiplicative inverse a^(-1) mod p for prime p.
// It uses Fermat's little theorem: a^(p-2) ≡ a^(-1) (mod p).
func InverseMod(a, p int64) (int64, error) {
	r := Mod(a, p)
	if r == 0 {
		return 0, fmt.Errorf("%w: %d mod %d", ErrZeroInverse, a, p)
	}
	return PowMod(r, p-2, p), nil
}
