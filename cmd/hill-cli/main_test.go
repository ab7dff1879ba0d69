package main

import (
	"bytes"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the app in-process and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"hill-cli"}, args...))
	return out.String(), err
}

func readJSON(t *testing.T, path string, v interface{}) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}

func TestKeygenEncryptDecrypt(t *testing.T) {
	for _, mode := range []string{"finite-field:29", "unimodular-integer"} {
		t.Run(mode, func(t *testing.T) {
			dir := t.TempDir()
			keyPath := filepath.Join(dir, "key.json")
			cipherPath := filepath.Join(dir, "cipher.json")

			_, err := run(t, "keygen", "--mode", mode, "--output", keyPath)
			require.NoError(t, err)

			info, err := os.Stat(keyPath)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

			var kf KeyFile
			readJSON(t, keyPath, &kf)
			assert.Equal(t, mode, kf.Mode)
			assert.Len(t, kf.Matrix, 3)
			assert.Len(t, kf.Fingerprint, 64)
			assert.NotEmpty(t, kf.CreatedAt)

			_, err = run(t, "encrypt", "--key", keyPath, "--message", "Attack at dawn.", "--output", cipherPath)
			require.NoError(t, err)

			var cf CipherFile
			readJSON(t, cipherPath, &cf)
			assert.Equal(t, kf.Fingerprint, cf.Fingerprint)
			assert.Equal(t, 15, cf.Length)
			assert.Len(t, cf.Cipher, 15)

			out, err := run(t, "decrypt", "--key", keyPath, "--cipher", cipherPath)
			require.NoError(t, err)
			assert.Equal(t, "ATTACK AT DAWN.\n", out)
		})
	}
}

func TestKeygen_SeedIsDeterministic(t *testing.T) {
	a, err := run(t, "keygen", "--seed", "classroom")
	require.NoError(t, err)
	b, err := run(t, "keygen", "--seed", "classroom")
	require.NoError(t, err)

	var ka, kb KeyFile
	require.NoError(t, json.Unmarshal([]byte(a), &ka))
	require.NoError(t, json.Unmarshal([]byte(b), &kb))
	assert.Equal(t, ka.Matrix, kb.Matrix)
	assert.Equal(t, ka.Fingerprint, kb.Fingerprint)
}

func TestKeygen_Batch(t *testing.T) {
	out, err := run(t, "keygen", "--seed", "batch", "--count", "4", "--mode", "unimodular")
	require.NoError(t, err)

	var files []KeyFile
	require.NoError(t, json.Unmarshal([]byte(out), &files))
	require.Len(t, files, 4)
	for _, kf := range files {
		assert.Equal(t, "unimodular-integer", kf.Mode)
		assert.Contains(t, []int64{1, -1}, kf.Determinant)
	}

	_, err = run(t, "keygen", "--count", "4")
	assert.Error(t, err)
}

func TestKeygen_BadMode(t *testing.T) {
	_, err := run(t, "keygen", "--mode", "finite-field:28")
	assert.Error(t, err)
	_, err = run(t, "keygen", "--mode", "float")
	assert.Error(t, err)
}

func TestEncrypt_InputFileAndPadding(t *testing.T) {
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "key.json")
	msgPath := filepath.Join(dir, "msg.txt")
	cipherPath := filepath.Join(dir, "cipher.json")

	_, err := run(t, "keygen", "--seed", "pad", "--output", keyPath)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(msgPath, []byte("niño\n"), 0600))

	_, err = run(t, "encrypt", "--key", keyPath, "--input", msgPath, "--output", cipherPath)
	require.NoError(t, err)

	out, err := run(t, "decrypt", "--key", keyPath, "--cipher", cipherPath, "--keep-padding")
	require.NoError(t, err)
	assert.Equal(t, "NIÑO  \n", out)

	out, err = run(t, "decrypt", "--key", keyPath, "--cipher", cipherPath, "--length", "2")
	require.NoError(t, err)
	assert.Equal(t, "NI\n", out)
}

func TestEncrypt_Errors(t *testing.T) {
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "key.json")
	_, err := run(t, "keygen", "--seed", "err", "--output", keyPath)
	require.NoError(t, err)

	_, err = run(t, "encrypt", "--key", keyPath)
	assert.Error(t, err)

	_, err = run(t, "encrypt", "--key", keyPath, "--message", "HI!")
	assert.Error(t, err)

	_, err = run(t, "encrypt", "--message", "HI")
	assert.Error(t, err)
}

func TestDecrypt_WrongKey(t *testing.T) {
	dir := t.TempDir()
	keyA := filepath.Join(dir, "a.json")
	keyB := filepath.Join(dir, "b.json")
	cipherPath := filepath.Join(dir, "cipher.json")

	_, err := run(t, "keygen", "--seed", "a", "--output", keyA)
	require.NoError(t, err)
	_, err = run(t, "keygen", "--seed", "b", "--output", keyB)
	require.NoError(t, err)
	_, err = run(t, "encrypt", "--key", keyA, "--message", "SECRET", "--output", cipherPath)
	require.NoError(t, err)

	_, err = run(t, "decrypt", "--key", keyB, "--cipher", cipherPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "different key")
}

func TestLoadKey_Tampered(t *testing.T) {
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "key.json")
	_, err := run(t, "keygen", "--seed", "tamper", "--output", keyPath)
	require.NoError(t, err)

	var kf KeyFile
	readJSON(t, keyPath, &kf)

	bad := kf
	bad.Determinant++
	_, err = importKey(bad)
	assert.Error(t, err)

	bad = kf
	bad.Matrix = [][]int64{{1, 2, 3}, {0, 1, 4}, {5, 6, 28}}
	bad.Determinant = 29
	_, err = importKey(bad)
	assert.Error(t, err)

	bad = kf
	bad.Matrix = [][]int64{{1, 2}, {3, 4}}
	_, err = importKey(bad)
	assert.Error(t, err)

	bad = kf
	bad.Fingerprint = strings.Repeat("00", 32)
	_, err = importKey(bad)
	assert.Error(t, err)

	key, err := importKey(kf)
	require.NoError(t, err)
	assert.Equal(t, kf.Fingerprint, fingerprintHex(key))
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "key.json")
	kf := KeyFile{
		Mode:        "finite-field:29",
		Matrix:      [][]int64{{2, 3, 0}, {1, 4, 0}, {0, 0, 1}},
		Determinant: 5,
	}
	data, err := json.Marshal(kf)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(keyPath, data, 0600))

	out, err := run(t, "inspect", "--key", keyPath)
	require.NoError(t, err)
	assert.Contains(t, out, "mode:        finite-field:29")
	assert.Contains(t, out, "determinant: 5")
	assert.Contains(t, out, "[24 11 0]")
	assert.Contains(t, out, "[23 12 0]")
	assert.Contains(t, out, "inverse check: ok")
}

func TestLogFlag(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "hill.log")
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	_, err := run(t, "--log", logPath, "--verbose", "keygen", "--seed", "log")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mode: finite-field:29")
}
