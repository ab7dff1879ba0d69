package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	hill "github.com/BackendStack21/hill3-go"
	"github.com/BackendStack21/hill3-go/algebra"
	"github.com/BackendStack21/hill3-go/cipher"
	"github.com/BackendStack21/hill3-go/core"
	"github.com/BackendStack21/hill3-go/utils"
)

// KeyFile is the JSON form of a key.
type KeyFile struct {
	Mode        string    `json:"mode"`
	Matrix      [][]int64 `json:"matrix"`
	Determinant int64     `json:"determinant"`
	Fingerprint string    `json:"fingerprint"`
	CreatedAt   string    `json:"created_at"`
}

// CipherFile is the JSON form of an encrypted message.
type CipherFile struct {
	Mode        string  `json:"mode"`
	Fingerprint string  `json:"fingerprint"`
	Cipher      []int64 `json:"cipher"`
	Length      int     `json:"length"`
}

func fingerprintHex(key *hill.Key) string {
	return hex.EncodeToString(cipher.Fingerprint(key))
}

func exportKey(key *hill.Key, now time.Time) KeyFile {
	return KeyFile{
		Mode:        key.Mode().String(),
		Matrix:      key.Matrix().Rows(),
		Determinant: key.Determinant(),
		Fingerprint: fingerprintHex(key),
		CreatedAt:   now.UTC().Format(time.RFC3339),
	}
}

// importKey rebuilds a key and checks the stored determinant and fingerprint.
func importKey(kf KeyFile) (*hill.Key, error) {
	mode, err := core.ParseMode(kf.Mode)
	if err != nil {
		return nil, errors.Wrap(err, "key file mode")
	}
	m, ok := algebra.FromRows(kf.Matrix)
	if !ok {
		return nil, errors.Errorf("key file matrix must be %dx%d", algebra.Size, algebra.Size)
	}
	key, err := hill.NewKey(m, mode)
	if err != nil {
		return nil, errors.Wrap(err, "key file matrix")
	}
	if kf.Determinant != key.Determinant() {
		return nil, errors.Errorf("key file determinant %d does not match matrix (%d)", kf.Determinant, key.Determinant())
	}
	if kf.Fingerprint != "" {
		stored, err := hex.DecodeString(kf.Fingerprint)
		if err != nil {
			return nil, errors.Wrap(err, "key file fingerprint")
		}
		if !utils.ConstantTimeEqual(stored, cipher.Fingerprint(key)) {
			return nil, errors.New("key file fingerprint does not match matrix")
		}
	}
	return key, nil
}

func loadKey(filename string) (*hill.Key, error) {
	if filename == "" {
		return nil, errors.New("--key is required")
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "read key file")
	}
	var kf KeyFile
	if err := json.Unmarshal(data, &kf); err != nil {
		return nil, errors.Wrapf(err, "parse key file %s", filename)
	}
	return importKey(kf)
}

func loadCipher(filename string) (CipherFile, error) {
	var cf CipherFile
	if filename == "" {
		return cf, errors.New("--cipher is required")
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return cf, errors.Wrap(err, "read cipher file")
	}
	if err := json.Unmarshal(data, &cf); err != nil {
		return cf, errors.Wrapf(err, "parse cipher file %s", filename)
	}
	if cf.Length < 0 || cf.Length > len(cf.Cipher) {
		return cf, errors.Errorf("cipher file length %d not in [0, %d]", cf.Length, len(cf.Cipher))
	}
	return cf, nil
}

// writeOutput writes data to filename with owner-only permissions, or to the
// app writer when filename is empty.
func writeOutput(c *cli.Context, data []byte, filename string) error {
	if filename == "" {
		_, err := fmt.Fprintln(c.App.Writer, string(data))
		return err
	}

	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return errors.Wrap(err, "create output file")
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return errors.Wrap(err, "write output file")
	}
	// umask may have widened an existing file.
	if err := os.Chmod(filename, 0600); err != nil {
		return errors.Wrap(err, "set output file permissions")
	}
	return nil
}
