package hill

import (
	"errors"

	"github.com/BackendStack21/hill3-go/alphabet"
	"github.com/BackendStack21/hill3-go/modular"
)

// Every error returned by this module matches one of these sentinels via errors.Is.
// Context is added with fmt.Errorf("...: %w", ...) at the point of failure.
var (
	// ErrSingularMatrix is returned when a key fails its mode's invertibility
	// predicate: det ≡ 0 (mod m), or det ∉ {1, -1} for unimodular keys.
	ErrSingularMatrix = errors.New("hill: matrix is not invertible in its mode")

	// ErrKeyGenerationExhausted is returned when no invertible candidate was
	// found within the attempt budget.
	ErrKeyGenerationExhausted = errors.New("hill: key generation exhausted its attempts")

	// ErrLengthMismatch is returned when a stream is not a multiple of the block
	// size, or when a round-trip check finds differing lengths.
	ErrLengthMismatch = errors.New("hill: length mismatch")

	// ErrUnknownMode is returned for an unrecognized mode tag.
	ErrUnknownMode = errors.New("hill: unknown mode")

	// ErrInvalidModulus is returned for a finite field modulus that is not a prime in range.
	ErrInvalidModulus = errors.New("hill: invalid modulus")

	// ErrEntryOutOfRange is returned when a key entry lies outside the mode's range.
	ErrEntryOutOfRange = errors.New("hill: key entry out of range")
)

// Errors owned by the leaf packages, re-exported so callers need only this package.
var (
	ErrInvalidCharacter = alphabet.ErrInvalidCharacter
	ErrInvalidCode      = alphabet.ErrInvalidCode
	ErrZeroInverse      = modular.ErrZeroInverse
)
