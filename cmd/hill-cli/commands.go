package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	hill "github.com/BackendStack21/hill3-go"
	"github.com/BackendStack21/hill3-go/alphabet"
	"github.com/BackendStack21/hill3-go/cipher"
	"github.com/BackendStack21/hill3-go/core"
	"github.com/BackendStack21/hill3-go/keygen"
	"github.com/BackendStack21/hill3-go/utils"
)

func keygenAction(c *cli.Context) error {
	mode, err := core.ParseMode(c.String("mode"))
	if err != nil {
		return errors.Wrap(err, "--mode")
	}
	attempts := c.Int("attempts")
	count := c.Int("count")
	seed := c.String("seed")
	if count < 1 || count > utils.MaxBatchSize {
		return errors.Errorf("--count must be in [1, %d]", utils.MaxBatchSize)
	}
	if count > 1 && seed == "" {
		return errors.New("--count greater than 1 requires --seed")
	}

	start := time.Now()
	var keys []*hill.Key
	switch {
	case count > 1:
		keys, err = keygen.GenerateBatch(mode, []byte(seed), count, attempts)
	case seed != "":
		var key *hill.Key
		key, err = keygen.GenerateFromSeed(mode, []byte(seed), attempts)
		keys = []*hill.Key{key}
	default:
		var key *hill.Key
		key, err = keygen.GenerateRandom(mode, attempts)
		keys = []*hill.Key{key}
	}
	if err != nil {
		return errors.Wrap(err, "keygen")
	}
	if c.GlobalBool("verbose") {
		log.Println("mode:", mode)
		log.Println("keys:", len(keys))
		log.Println("elapsed:", time.Since(start))
	}

	now := time.Now()
	var out []byte
	if count > 1 {
		files := make([]KeyFile, len(keys))
		for i, key := range keys {
			files[i] = exportKey(key, now)
		}
		out, err = json.MarshalIndent(files, "", "  ")
	} else {
		out, err = json.MarshalIndent(exportKey(keys[0], now), "", "  ")
	}
	if err != nil {
		return errors.Wrap(err, "marshal key")
	}
	return writeOutput(c, out, c.String("output"))
}

func readMessage(c *cli.Context) (string, error) {
	msg, input := c.String("message"), c.String("input")
	switch {
	case msg != "" && input != "":
		return "", errors.New("--message and --input are mutually exclusive")
	case input != "":
		data, err := os.ReadFile(input)
		if err != nil {
			return "", errors.Wrap(err, "read input file")
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	case c.IsSet("message"):
		return msg, nil
	default:
		return "", errors.New("one of --message or --input is required")
	}
}

func encryptAction(c *cli.Context) error {
	key, err := loadKey(c.String("key"))
	if err != nil {
		return err
	}
	msg, err := readMessage(c)
	if err != nil {
		return err
	}
	normalized, err := alphabet.Default.Normalize(msg)
	if err != nil {
		return errors.Wrap(err, "message")
	}
	stream, err := cipher.Encrypt(key, normalized)
	if err != nil {
		return errors.Wrap(err, "encrypt")
	}
	if c.GlobalBool("verbose") {
		log.Printf("encrypted %d symbols into %d values with %s key %s",
			utf8.RuneCountInString(normalized), len(stream), key.Mode(), fingerprintHex(key))
	}

	out, err := json.MarshalIndent(CipherFile{
		Mode:        key.Mode().String(),
		Fingerprint: fingerprintHex(key),
		Cipher:      stream,
		Length:      utf8.RuneCountInString(normalized),
	}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal cipher")
	}
	return writeOutput(c, out, c.String("output"))
}

func decryptAction(c *cli.Context) error {
	key, err := loadKey(c.String("key"))
	if err != nil {
		return err
	}
	cf, err := loadCipher(c.String("cipher"))
	if err != nil {
		return err
	}
	if cf.Fingerprint != "" && cf.Fingerprint != fingerprintHex(key) {
		return errors.New("cipher file was produced with a different key")
	}

	text, err := cipher.Decrypt(key, cf.Cipher)
	if err != nil {
		return errors.Wrap(err, "decrypt")
	}
	switch {
	case c.Bool("keep-padding"):
	case c.IsSet("length"):
		text = cipher.Trim(text, c.Int("length"))
	default:
		text = cipher.Trim(text, cf.Length)
	}
	_, err = fmt.Fprintln(c.App.Writer, text)
	return err
}

func inspectAction(c *cli.Context) error {
	key, err := loadKey(c.String("key"))
	if err != nil {
		return err
	}
	inv, err := key.Mode().Inverse(key.Matrix())
	if err != nil {
		return errors.Wrap(err, "inverse")
	}
	check := "ok"
	if err := cipher.VerifyInverse(key); err != nil {
		check = err.Error()
	}

	w := c.App.Writer
	fmt.Fprintf(w, "mode:        %s\n", key.Mode())
	fmt.Fprintf(w, "determinant: %d\n", key.Determinant())
	fmt.Fprintf(w, "fingerprint: %s\n", fingerprintHex(key))
	fmt.Fprintln(w, "matrix:")
	for _, row := range key.Matrix() {
		fmt.Fprintf(w, "  %v\n", row)
	}
	fmt.Fprintln(w, "inverse:")
	for _, row := range inv {
		fmt.Fprintf(w, "  %v\n", row)
	}
	fmt.Fprintf(w, "inverse check: %s\n", check)
	return nil
}
