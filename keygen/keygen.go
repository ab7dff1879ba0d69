// Package keygen generates Hill cipher keys by bounded random search.
package keygen

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	hill "github.com/BackendStack21/hill3-go"
	"github.com/BackendStack21/hill3-go/utils"
)

const (
	DomainSeed  = "hill3-keygen-seed-v1"
	DomainBatch = "hill3-keygen-batch-v1"
)

// Generate draws candidates from mode.Sample(rng) and returns the first one
// that passes mode.IsInvertible. It gives up after maxAttempts draws with
// hill.ErrKeyGenerationExhausted; maxAttempts <= 0 always fails.
func Generate(mode hill.Mode, rng hill.Rand, maxAttempts int) (*hill.Key, error) {
	if mode == nil {
		return nil, fmt.Errorf("%w: nil mode", hill.ErrUnknownMode)
	}
	if rng == nil {
		return nil, errors.New("keygen: nil random source")
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := mode.Sample(rng)
		if !mode.IsInvertible(candidate) {
			continue
		}
		return hill.NewKey(candidate, mode)
	}
	return nil, fmt.Errorf("%w: %s after %d attempts", hill.ErrKeyGenerationExhausted, mode, maxAttempts)
}

// GenerateFromSeed generates a deterministic key from seed.
// The same mode, seed and budget always produce the same key.
func GenerateFromSeed(mode hill.Mode, seed []byte, maxAttempts int) (*hill.Key, error) {
	if len(seed) == 0 {
		return nil, errors.New("keygen: seed must not be empty")
	}
	rng := utils.NewShakeRand(utils.HashWithDomain(DomainSeed, seed))
	return Generate(mode, rng, maxAttempts)
}

// GenerateRandom generates a key from a fresh 32-byte crypto/rand seed.
func GenerateRandom(mode hill.Mode, maxAttempts int) (*hill.Key, error) {
	seed, err := utils.SecureRandomBytes(32)
	if err != nil {
		return nil, err
	}

	key, err := GenerateFromSeed(mode, seed, maxAttempts)
	utils.Zeroize(seed)
	return key, err
}

// BatchSeed derives the seed of key index within a batch.
func BatchSeed(seed []byte, index int) []byte {
	buf := make([]byte, len(seed)+8)
	copy(buf, seed)
	binary.LittleEndian.PutUint64(buf[len(seed):], uint64(index))
	return utils.HashWithDomain(DomainBatch, buf)
}

// GenerateBatch generates count independent keys, key i from BatchSeed(seed, i).
// Keys are generated concurrently and returned in index order, so the result
// does not depend on scheduling. If several keys fail, the error of the lowest
// index is returned.
func GenerateBatch(mode hill.Mode, seed []byte, count, maxAttempts int) ([]*hill.Key, error) {
	if len(seed) == 0 {
		return nil, errors.New("keygen: seed must not be empty")
	}
	if err := utils.CheckLength(count, utils.MaxBatchSize); err != nil {
		return nil, fmt.Errorf("keygen: batch size %d: %w", count, err)
	}

	keys := make([]*hill.Key, count)
	errs := make([]error, count)

	var wg sync.WaitGroup
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func(i int) {
			defer wg.Done()
			keys[i], errs[i] = GenerateFromSeed(mode, BatchSeed(seed, i), maxAttempts)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("keygen: key %d: %w", i, err)
		}
	}
	return keys, nil
}
