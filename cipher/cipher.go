// Package cipher implements the Hill block cipher engine and its text API.
//
// Encryption pads the encoded message on the right with the alphabet's
// padding code, splits it into blocks of three and multiplies every block by
// the key. Decryption inverts the key once and applies the inverse to every
// block. Padding is never stripped: the cipher stream does not carry the
// message length, so trimming (see Trim) is up to the caller.
package cipher

import (
	"errors"
	"fmt"

	hill "github.com/BackendStack21/hill3-go"
	"github.com/BackendStack21/hill3-go/algebra"
	"github.com/BackendStack21/hill3-go/alphabet"
	"github.com/BackendStack21/hill3-go/utils"
)

// ErrRoundTrip is returned by VerifyRoundTrip when decryption does not restore the message.
var ErrRoundTrip = errors.New("cipher: round trip mismatch")

// Encrypt encrypts text with key over alphabet.Default.
func Encrypt(key *hill.Key, text string) ([]int64, error) {
	return EncryptWith(alphabet.Default, key, text)
}

// EncryptWith encrypts text with key over the given alphabet.
func EncryptWith(alpha *alphabet.Alphabet, key *hill.Key, text string) ([]int64, error) {
	codes, err := alpha.Encode(text)
	if err != nil {
		return nil, err
	}
	if err := utils.CheckLength(len(codes), utils.MaxMessageLength); err != nil {
		return nil, fmt.Errorf("cipher: message of %d symbols: %w", len(codes), err)
	}
	return EncryptCodes(key, Pad(codes, alpha.PadCode()))
}

// EncryptCodes encrypts an aligned numeric stream.
func EncryptCodes(key *hill.Key, codes []int64) ([]int64, error) {
	blocks, err := Chunk(codes)
	if err != nil {
		return nil, err
	}
	enc, err := EncryptBlocks(key, blocks)
	if err != nil {
		return nil, err
	}
	return Flatten(enc), nil
}

// Decrypt decrypts stream with key over alphabet.Default.
// The result keeps any padding symbols added by Encrypt.
func Decrypt(key *hill.Key, stream []int64) (string, error) {
	return DecryptWith(alphabet.Default, key, stream)
}

// DecryptWith decrypts stream with key over the given alphabet.
func DecryptWith(alpha *alphabet.Alphabet, key *hill.Key, stream []int64) (string, error) {
	codes, err := DecryptCodes(key, stream)
	if err != nil {
		return "", err
	}
	return alpha.Decode(codes)
}

// DecryptCodes decrypts a numeric stream whose length must be a multiple of BlockSize.
func DecryptCodes(key *hill.Key, stream []int64) ([]int64, error) {
	if err := utils.CheckLength(len(stream), utils.MaxMessageLength+BlockSize); err != nil {
		return nil, fmt.Errorf("cipher: stream of %d values: %w", len(stream), err)
	}
	blocks, err := Chunk(stream)
	if err != nil {
		return nil, err
	}
	dec, err := DecryptBlocks(key, blocks)
	if err != nil {
		return nil, err
	}
	return Flatten(dec), nil
}

// Trim cuts decoded text to its first n symbols. It is the caller-side
// counterpart of padding for callers that know the original length.
func Trim(text string, n int) string {
	if n < 0 {
		return ""
	}
	rs := []rune(text)
	if n >= len(rs) {
		return text
	}
	return string(rs[:n])
}

// VerifyInverse checks that K * inverse(K) reduces to the identity in the key's mode.
func VerifyInverse(key *hill.Key) error {
	mode := key.Mode()
	inv, err := mode.Inverse(key.Matrix())
	if err != nil {
		return err
	}
	prod := algebra.Mul(key.Matrix(), inv)
	for i := range prod {
		for j := range prod[i] {
			prod[i][j] = mode.Reduce(prod[i][j])
		}
	}
	if prod != algebra.Identity() {
		return fmt.Errorf("%w: K * inverse(K) = %v", hill.ErrSingularMatrix, prod)
	}
	return nil
}

// VerifyRoundTrip encrypts and decrypts text over alphabet.Default and checks
// that the normalized, padded message comes back unchanged. It is a
// diagnostic for tooling; Encrypt and Decrypt never call it.
func VerifyRoundTrip(key *hill.Key, text string) error {
	alpha := alphabet.Default
	codes, err := alpha.Encode(text)
	if err != nil {
		return err
	}
	want := Pad(codes, alpha.PadCode())

	stream, err := EncryptCodes(key, want)
	if err != nil {
		return err
	}
	got, err := DecryptCodes(key, stream)
	if err != nil {
		return err
	}

	if len(got) != len(want) {
		return fmt.Errorf("%w: decrypted %d values, want %d", hill.ErrLengthMismatch, len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("%w: position %d: got %d, want %d", ErrRoundTrip, i, got[i], want[i])
		}
	}
	return nil
}
