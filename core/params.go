// Package core provides the arithmetic modes of the Hill cipher and their defaults.
package core

import (
	"fmt"
	"strconv"
	"strings"

	hill "github.com/BackendStack21/hill3-go"
	"github.com/BackendStack21/hill3-go/utils"
)

const (
	// DefaultModulus is the prime modulus matching the 29-symbol default alphabet.
	DefaultModulus = 29

	// DefaultMaxAbs bounds unimodular key entries drawn by the generator.
	DefaultMaxAbs = 5

	// DefaultMaxAttempts is the key-generation budget used by the tooling.
	DefaultMaxAttempts = 100000
)

// DefaultFiniteField is the finite field mode modulo DefaultModulus.
var DefaultFiniteField = FiniteField{m: DefaultModulus}

// DefaultUnimodular is the unimodular mode drawing entries from [-DefaultMaxAbs, DefaultMaxAbs].
var DefaultUnimodular = Unimodular{maxAbs: DefaultMaxAbs}

// ParseMode parses the text form of a mode.
//
// Accepted forms:
//   - "finite-field:<m>" and "finite-field" (m = DefaultModulus)
//   - "unimodular-integer" and "unimodular-integer:<maxAbs>"; "unimodular" is an alias
func ParseMode(s string) (hill.Mode, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(s), ":")
	switch hill.ModeKind(strings.ToLower(name)) {
	case hill.KindFiniteField:
		if !hasArg {
			return DefaultFiniteField, nil
		}
		m, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: modulus %q: %v", hill.ErrInvalidModulus, arg, err)
		}
		return NewFiniteField(m)
	case hill.KindUnimodular, "unimodular":
		if !hasArg {
			return DefaultUnimodular, nil
		}
		maxAbs, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: entry bound %q: %v", hill.ErrUnknownMode, arg, err)
		}
		return NewUnimodular(maxAbs)
	default:
		return nil, fmt.Errorf("%w: %q", hill.ErrUnknownMode, s)
	}
}

// ValidateModulus checks that m is a prime in [2, utils.MaxModulus].
func ValidateModulus(m int64) error {
	if m < 2 || m > utils.MaxModulus {
		return fmt.Errorf("%w: %d not in [2, %d]", hill.ErrInvalidModulus, m, utils.MaxModulus)
	}
	if !isPrime(m) {
		return fmt.Errorf("%w: %d is not prime", hill.ErrInvalidModulus, m)
	}
	return nil
}

// isPrime checks if a number is prime using a simple trial division.
// This is used for validating moduli, not for generating large primes.
func isPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := int64(3); i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}
