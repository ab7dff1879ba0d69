// Package hill implements a generalized Hill block cipher over 3-symbol blocks.
//
// Keys are 3x3 integer matrices tagged with an arithmetic mode: the finite field
// Z_m for a prime m, or the integers restricted to unimodular matrices
// (determinant ±1). All arithmetic is exact; no floating point is involved.
//
// The cipher is a teaching tool. It is NOT a secure encryption primitive and
// must not protect real data.
package hill

// Version of the hill3 Go implementation.
const Version = "1.0.0"

// API summary:
//
// Modes:
//   - core.FiniteField(m) - arithmetic modulo the prime m (core.DefaultModulus = 29)
//   - core.Unimodular(maxAbs) - integer keys with det = ±1
//   - core.ParseMode("finite-field:29" | "unimodular-integer")
//
// Keys:
//   - keygen.Generate(mode, rng, maxAttempts) - bounded search with an explicit random source
//   - keygen.GenerateFromSeed(mode, seed, maxAttempts) - reproducible keys
//   - keygen.GenerateRandom(mode, maxAttempts) - keys seeded from crypto/rand
//   - keygen.GenerateBatch(mode, seed, count, maxAttempts) - one key per student
//   - hill.NewKey(matrix, mode) - wrap an existing matrix after validation
//
// Cipher:
//   - cipher.Encrypt(key, text) - text to cipher stream
//   - cipher.Decrypt(key, stream) - cipher stream to text (padding kept)
//   - cipher.EncryptBlocks / cipher.DecryptBlocks - block level engine
//   - cipher.SerializeKey / cipher.DeserializeKey / cipher.Fingerprint
