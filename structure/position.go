package structure

import "github.com/katalvlaran/rnaenum/nucleotide"

// Position is one slot of a Sequence. It is stored by value inside its
// Sequence and carries no reference back to it.
type Position struct {
	index   int
	symbol  nucleotide.Symbol
	mutated bool

	// bond is meaningful only when bonded is true.
	bond   Bond
	bonded bool
}

// Index returns the zero-based slot of p within its sequence.
func (p Position) Index() int { return p.index }

// Symbol returns the base at p.
func (p Position) Symbol() nucleotide.Symbol { return p.symbol }

// Mutated reports whether p is flagged as mutated.
func (p Position) Mutated() bool { return p.mutated }

// Bond returns the bond p participates in; ok is false when p is unbonded.
func (p Position) Bond() (b Bond, ok bool) { return p.bond, p.bonded }

// IsStart reports whether p is the Start endpoint of its bond.
func (p Position) IsStart() bool { return p.bonded && p.bond.Start == p.index }

// IsEnd reports whether p is the End endpoint of its bond.
func (p Position) IsEnd() bool { return p.bonded && p.bond.End == p.index }

// Equal compares index, symbol, mutation flag and bond membership.
// Two unbonded positions agree on membership; a bonded and an unbonded one never do.
func (p Position) Equal(o Position) bool {
	if p.index != o.index || p.symbol != o.symbol || p.mutated != o.mutated {
		return false
	}
	if p.bonded != o.bonded {
		return false
	}

	return !p.bonded || p.bond == o.bond
}

// String returns the letter of p: lower-case when mutated, upper-case otherwise.
func (p Position) String() string {
	if p.mutated {
		return string(p.symbol.Lower())
	}

	return string(p.symbol.Upper())
}
