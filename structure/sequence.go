package structure

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/rnaenum/nucleotide"
)

// Sentinel errors returned by New.
var (
	// ErrIndexOutOfRange indicates a mutation index or bond endpoint outside [0, len).
	ErrIndexOutOfRange = errors.New("structure: index out of range")

	// ErrSelfBond indicates a bond whose Start equals its End.
	ErrSelfBond = errors.New("structure: bond joins a position to itself")

	// ErrDoubleBond indicates that an index is an endpoint of two distinct bonds.
	ErrDoubleBond = errors.New("structure: position used by more than one bond")

	// ErrInvalidSymbol indicates a symbol outside the alphabet (nucleotide.Invalid).
	ErrInvalidSymbol = errors.New("structure: invalid symbol")
)

// Sequence is an immutable candidate: positions plus a bond set.
// The zero value is an empty sequence; use New to build populated ones.
type Sequence struct {
	positions []Position
	bonds     []Bond // canonical order, no duplicates
}

// New builds a Sequence from its symbols, the indices flagged as mutated and
// its bonds. Duplicate mutation indices and duplicate bonds collapse; the
// inputs are copied and may be reused by the caller.
//
// Errors: ErrInvalidSymbol, ErrIndexOutOfRange, ErrSelfBond, ErrDoubleBond,
// each wrapped with the offending value.
//
// Complexity: O(n + b·log b) for n symbols and b bonds.
func New(symbols []nucleotide.Symbol, mutations []int, bonds []Bond) (*Sequence, error) {
	n := len(symbols)
	s := &Sequence{positions: make([]Position, n)}

	for i, sym := range symbols {
		if !sym.Valid() {
			return nil, fmt.Errorf("%w at index %d", ErrInvalidSymbol, i)
		}
		s.positions[i] = Position{index: i, symbol: sym}
	}

	for _, m := range mutations {
		if m < 0 || m >= n {
			return nil, fmt.Errorf("%w: mutation %d (length %d)", ErrIndexOutOfRange, m, n)
		}
		s.positions[m].mutated = true
	}

	if len(bonds) > 0 {
		s.bonds = slices.Clone(bonds)
		slices.SortFunc(s.bonds, Bond.Compare)
		s.bonds = slices.Compact(s.bonds)
	}

	for _, b := range s.bonds {
		if b.Start < 0 || b.Start >= n || b.End < 0 || b.End >= n {
			return nil, fmt.Errorf("%w: bond %v (length %d)", ErrIndexOutOfRange, b, n)
		}
		if b.Start == b.End {
			return nil, fmt.Errorf("%w: %v", ErrSelfBond, b)
		}
		for _, i := range [2]int{b.Start, b.End} {
			if s.positions[i].bonded {
				return nil, fmt.Errorf("%w: %v and %v share index %d", ErrDoubleBond, s.positions[i].bond, b, i)
			}
			s.positions[i].bond = b
			s.positions[i].bonded = true
		}
	}

	return s, nil
}

// Len returns the number of positions.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}

	return len(s.positions)
}

// At returns the position at index i. Like a slice index, it panics if i is
// outside [0, Len()); a nil Sequence has Len 0, so every index panics.
func (s *Sequence) At(i int) Position {
	if i < 0 || i >= s.Len() {
		panic(fmt.Sprintf("structure: At(%d) out of range [0,%d)", i, s.Len()))
	}

	return s.positions[i]
}

// Bonds returns a copy of the bond set in canonical (Start, End) order.
func (s *Sequence) Bonds() []Bond {
	if s == nil {
		return nil
	}

	return slices.Clone(s.bonds)
}

// BondCount returns the number of bonds.
func (s *Sequence) BondCount() int {
	if s == nil {
		return 0
	}

	return len(s.bonds)
}

// HasBond reports whether b is in the bond set.
func (s *Sequence) HasBond(b Bond) bool {
	if s == nil {
		return false
	}
	_, found := slices.BinarySearchFunc(s.bonds, b, Bond.Compare)

	return found
}

// Mutations returns the mutated indices in ascending order.
func (s *Sequence) Mutations() []int {
	if s == nil {
		return nil
	}
	var out []int
	for _, p := range s.positions {
		if p.mutated {
			out = append(out, p.index)
		}
	}

	return out
}

// MutationCount returns the number of mutated positions.
func (s *Sequence) MutationCount() int {
	if s == nil {
		return 0
	}
	c := 0
	for _, p := range s.positions {
		if p.mutated {
			c++
		}
	}

	return c
}

// Symbols returns a copy of the underlying bases.
func (s *Sequence) Symbols() []nucleotide.Symbol {
	if s == nil {
		return nil
	}
	out := make([]nucleotide.Symbol, len(s.positions))
	for i, p := range s.positions {
		out[i] = p.symbol
	}

	return out
}

// Equal reports structural equality: same positions at every index
// (symbol, mutation flag, bond membership) and the same bond set.
// Two nil sequences are equal; nil never equals a non-nil sequence.
func (s *Sequence) Equal(o *Sequence) bool {
	if s == o {
		return true
	}
	if s == nil || o == nil {
		return false
	}
	if len(s.positions) != len(o.positions) {
		return false
	}
	for i := range s.positions {
		if !s.positions[i].Equal(o.positions[i]) {
			return false
		}
	}

	return slices.Equal(s.bonds, o.bonds)
}

// Key returns a canonical encoding of s: the rendered letters (mutated ones
// in lower case) followed by the bond list. Key(a) == Key(b) iff a.Equal(b).
func (s *Sequence) Key() string {
	if s == nil {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s.positions) + 1 + 6*len(s.bonds))
	s.writeLetters(&b)
	b.WriteByte('|')
	for i, bond := range s.bonds {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(bond.Start))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(bond.End))
	}

	return b.String()
}

// String renders s as its letters (lower case where mutated), a space and
// the bond list, e.g. "AuGC [(0,1), (2,3)]".
func (s *Sequence) String() string {
	if s == nil {
		return "<nil>"
	}
	var b strings.Builder
	s.writeLetters(&b)
	b.WriteString(" [")
	for i, bond := range s.bonds {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(bond.String())
	}
	b.WriteByte(']')

	return b.String()
}

func (s *Sequence) writeLetters(b *strings.Builder) {
	for _, p := range s.positions {
		if p.mutated {
			b.WriteByte(p.symbol.Lower())
		} else {
			b.WriteByte(p.symbol.Upper())
		}
	}
}
