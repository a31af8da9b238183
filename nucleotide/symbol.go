package nucleotide

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrUnknownSymbol indicates a rune outside {A, C, G, U} (case-insensitive).
var ErrUnknownSymbol = errors.New("nucleotide: unknown symbol")

// Symbol is a single RNA base.
type Symbol uint8

// The alphabet. Values are chosen so that complementary bases sum to pairSum.
const (
	Invalid Symbol = iota // zero value; never a valid base
	A
	C
	G
	U
)

// pairSum is the sum of two complementary symbols (A+U == C+G == 5).
const pairSum = A + U

// letters maps a Symbol to its upper-case letter; index 0 is Invalid.
var letters = [...]byte{'?', 'A', 'C', 'G', 'U'}

// Valid reports whether s is one of A, C, G, U.
func (s Symbol) Valid() bool { return s >= A && s <= U }

// Compatible reports whether s can bond with t.
func (s Symbol) Compatible(t Symbol) bool { return Compatible(s, t) }

// String returns the upper-case letter of s, or "?" for Invalid.
func (s Symbol) String() string { return string(s.Upper()) }

// Upper returns the upper-case letter of s.
func (s Symbol) Upper() byte {
	if !s.Valid() {
		return letters[Invalid]
	}

	return letters[s]
}

// Lower returns the lower-case letter of s; used to render mutated positions.
func (s Symbol) Lower() byte {
	if !s.Valid() {
		return letters[Invalid]
	}

	return letters[s] | 0x20
}

// Compatible reports whether a and b form a complementary pair (A–U or C–G,
// in either order). It is false for identical symbols and for Invalid.
func Compatible(a, b Symbol) bool {
	return a.Valid() && b.Valid() && a+b == pairSum
}

// FromRune converts a single letter (either case) to a Symbol.
// Unknown runes yield Invalid and ok=false.
func FromRune(r rune) (s Symbol, ok bool) {
	switch unicode.ToUpper(r) {
	case 'A':
		return A, true
	case 'C':
		return C, true
	case 'G':
		return G, true
	case 'U':
		return U, true
	}

	return Invalid, false
}

// Parse converts text into symbols, one rune per base. Letters are
// case-insensitive; whitespace is skipped. The first unknown rune aborts
// parsing with an error wrapping ErrUnknownSymbol and naming its 1-based column.
func Parse(text string) ([]Symbol, error) {
	out := make([]Symbol, 0, len(text))
	col := 0
	for _, r := range text {
		col++
		if unicode.IsSpace(r) {
			continue
		}
		s, ok := FromRune(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q at column %d; allowed: A C G U", ErrUnknownSymbol, r, col)
		}
		out = append(out, s)
	}

	return out, nil
}

// MustParse is like Parse but panics on error. Intended for tests and examples.
func MustParse(text string) []Symbol {
	seq, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return seq
}

// Format renders symbols as upper-case letters.
func Format(symbols []Symbol) string {
	var b strings.Builder
	b.Grow(len(symbols))
	for _, s := range symbols {
		b.WriteByte(s.Upper())
	}

	return b.String()
}
