package cipher

import (
	"fmt"

	hill "github.com/BackendStack21/hill3-go"
	"github.com/BackendStack21/hill3-go/algebra"
	"github.com/BackendStack21/hill3-go/utils"
)

// BlockSize is the number of symbols per block.
const BlockSize = algebra.Size

// modulusMode is implemented by modes whose values live in [0, m).
type modulusMode interface {
	Modulus() int64
}

// Pad returns a copy of codes extended with padCode up to a multiple of BlockSize.
// Aligned input is returned unchanged (as a copy).
func Pad(codes []int64, padCode int64) []int64 {
	n := len(codes)
	if r := n % BlockSize; r != 0 {
		n += BlockSize - r
	}
	out := make([]int64, len(codes), n)
	copy(out, codes)
	for len(out) < n {
		out = append(out, padCode)
	}
	return out
}

// Chunk splits an aligned stream into blocks.
func Chunk(codes []int64) ([]algebra.Vector3, error) {
	if len(codes)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d values is not a multiple of %d", hill.ErrLengthMismatch, len(codes), BlockSize)
	}
	blocks := make([]algebra.Vector3, len(codes)/BlockSize)
	for i := range blocks {
		copy(blocks[i][:], codes[i*BlockSize:(i+1)*BlockSize])
	}
	return blocks, nil
}

// Flatten concatenates blocks back into a stream. It is the inverse of Chunk.
func Flatten(blocks []algebra.Vector3) []int64 {
	out := make([]int64, 0, len(blocks)*BlockSize)
	for _, b := range blocks {
		out = append(out, b[:]...)
	}
	return out
}

// EncryptBlocks computes Reduce(K * b) for every block.
//
// Plaintext values must lie in [0, m) under a finite field mode and within
// ±utils.MaxPlainCode otherwise; violations yield hill.ErrInvalidCode.
func EncryptBlocks(key *hill.Key, blocks []algebra.Vector3) ([]algebra.Vector3, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: nil key", hill.ErrUnknownMode)
	}
	mode := key.Mode()
	if err := checkPlainBlocks(mode, blocks); err != nil {
		return nil, err
	}

	k := key.Matrix()
	out := make([]algebra.Vector3, len(blocks))
	for i, b := range blocks {
		out[i] = reduceVec(mode, algebra.MulVec(k, b))
	}
	return out, nil
}

// DecryptBlocks computes the key inverse once and applies Reduce(inv * c) to every block.
// Cipher values beyond ±utils.MaxCipherMagnitude are rejected with hill.ErrInvalidCode.
func DecryptBlocks(key *hill.Key, blocks []algebra.Vector3) ([]algebra.Vector3, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: nil key", hill.ErrUnknownMode)
	}
	for i, b := range blocks {
		for _, v := range b {
			if err := utils.CheckMagnitude(v, utils.MaxCipherMagnitude); err != nil {
				return nil, fmt.Errorf("%w: block %d: %w", hill.ErrInvalidCode, i, err)
			}
		}
	}

	mode := key.Mode()
	inv, err := mode.Inverse(key.Matrix())
	if err != nil {
		return nil, err
	}

	out := make([]algebra.Vector3, len(blocks))
	for i, b := range blocks {
		out[i] = reduceVec(mode, algebra.MulVec(inv, b))
	}
	return out, nil
}

func checkPlainBlocks(mode hill.Mode, blocks []algebra.Vector3) error {
	mm, bounded := mode.(modulusMode)
	for i, b := range blocks {
		for _, v := range b {
			if bounded {
				if v < 0 || v >= mm.Modulus() {
					return fmt.Errorf("%w: block %d: %d not in [0, %d)", hill.ErrInvalidCode, i, v, mm.Modulus())
				}
				continue
			}
			if err := utils.CheckMagnitude(v, utils.MaxPlainCode); err != nil {
				return fmt.Errorf("%w: block %d: %w", hill.ErrInvalidCode, i, err)
			}
		}
	}
	return nil
}

func reduceVec(mode hill.Mode, v algebra.Vector3) algebra.Vector3 {
	for i := range v {
		v[i] = mode.Reduce(v[i])
	}
	return v
}
