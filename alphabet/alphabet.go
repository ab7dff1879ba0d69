// Package alphabet maps message text to integer codes and back.
//
// An Alphabet is an ordered, duplicate-free table of symbols. The symbol at
// position i has code i, so codes always lie in [0, Size()). Tables are
// immutable once built and safe to share between goroutines.
package alphabet

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultSymbols is the published 29-symbol table: A=0 ... Z=25, Ñ=26, space=27, '.'=28.
// Changing it breaks every key and cipher stream produced with the previous version.
const DefaultSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZÑ ."

// DefaultPad is the padding symbol of the default table.
const DefaultPad = ' '

var (
	// ErrInvalidCharacter is returned when normalized text contains a symbol outside the table.
	ErrInvalidCharacter = errors.New("alphabet: invalid character")

	// ErrInvalidCode is returned when a code falls outside [0, Size()).
	ErrInvalidCode = errors.New("alphabet: invalid code")

	// ErrInvalidAlphabet is returned by New for empty, duplicated or pad-less tables.
	ErrInvalidAlphabet = errors.New("alphabet: invalid symbol table")
)

// Default is the process-wide default table.
var Default = MustNew(DefaultSymbols, DefaultPad)

// Alphabet is an immutable symbol table.
type Alphabet struct {
	symbols []rune
	index   map[rune]int64
	pad     int64
}

// New builds an Alphabet from an ordered symbol string. pad must be one of the symbols.
func New(symbols string, pad rune) (*Alphabet, error) {
	if !utf8.ValidString(symbols) {
		return nil, fmt.Errorf("%w: symbols are not valid UTF-8", ErrInvalidAlphabet)
	}
	rs := []rune(symbols)
	if len(rs) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrInvalidAlphabet)
	}

	index := make(map[rune]int64, len(rs))
	for i, r := range rs {
		if _, dup := index[r]; dup {
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrInvalidAlphabet, r)
		}
		index[r] = int64(i)
	}

	padCode, ok := index[pad]
	if !ok {
		return nil, fmt.Errorf("%w: padding symbol %q not in table", ErrInvalidAlphabet, pad)
	}

	return &Alphabet{symbols: rs, index: index, pad: padCode}, nil
}

// MustNew is like New but panics on error. It is meant for package-level tables.
func MustNew(symbols string, pad rune) *Alphabet {
	a, err := New(symbols, pad)
	if err != nil {
		panic(err)
	}
	return a
}

// Size returns the number of symbols.
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// Symbols returns the table as a string, in code order.
func (a *Alphabet) Symbols() string {
	return string(a.symbols)
}

// PadCode returns the code of the padding symbol.
func (a *Alphabet) PadCode() int64 {
	return a.pad
}

// IndexOf returns the code of r, if r is in the table.
func (a *Alphabet) IndexOf(r rune) (int64, bool) {
	c, ok := a.index[r]
	return c, ok
}

// SymbolAt returns the symbol with the given code.
func (a *Alphabet) SymbolAt(code int64) (rune, error) {
	if code < 0 || code >= int64(len(a.symbols)) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidCode, code, len(a.symbols))
	}
	return a.symbols[code], nil
}

// Normalize canonicalizes text for this table.
//
// The text is NFC-composed and upper-cased. Symbols already in the table are
// kept as they are, so Ñ survives as its own symbol. A vowel carrying
// diacritics that is not in the table is folded to its base vowel (Á→A, Ü→U).
// Anything else is rejected with ErrInvalidCharacter; nothing is dropped silently.
func (a *Alphabet) Normalize(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", fmt.Errorf("%w: text is not valid UTF-8", ErrInvalidCharacter)
	}

	upper := strings.ToUpper(norm.NFC.String(text))
	strip := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

	var b strings.Builder
	b.Grow(len(upper))
	pos := 0
	for _, r := range upper {
		if _, ok := a.index[r]; !ok {
			r = foldVowel(strip, r)
			if _, ok := a.index[r]; !ok {
				return "", fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, r, pos)
			}
		}
		b.WriteRune(r)
		pos++
	}
	return b.String(), nil
}

// Encode normalizes text and maps each symbol to its code.
func (a *Alphabet) Encode(text string) ([]int64, error) {
	normalized, err := a.Normalize(text)
	if err != nil {
		return nil, err
	}
	codes := make([]int64, 0, utf8.RuneCountInString(normalized))
	for _, r := range normalized {
		codes = append(codes, a.index[r])
	}
	return codes, nil
}

// Decode maps each code back to its symbol.
func (a *Alphabet) Decode(codes []int64) (string, error) {
	var b strings.Builder
	b.Grow(len(codes))
	for i, c := range codes {
		r, err := a.SymbolAt(c)
		if err != nil {
			return "", fmt.Errorf("position %d: %w", i, err)
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// foldVowel strips combining marks from r and returns the base vowel,
// or r unchanged if r is not a marked vowel.
func foldVowel(strip transform.Transformer, r rune) rune {
	base, _, err := transform.String(strip, string(r))
	if err != nil {
		return r
	}
	br, size := utf8.DecodeRuneInString(base)
	if size != len(base) || br == r {
		return r
	}
	switch br {
	case 'A', 'E', 'I', 'O', 'U':
		return br
	}
	return r
}
