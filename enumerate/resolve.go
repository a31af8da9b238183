package enumerate

import (
	"fmt"

	"github.com/katalvlaran/rnaenum/nucleotide"
)

// bounds is a Restrictions value resolved against one sequence length:
// clamped counts, eligible mutation positions in ascending order, and a
// per-position bond eligibility mask.
type bounds struct {
	n       int
	minMut  int
	maxMut  int
	minBond int
	maxBond int

	mutSites []int  // ascending
	bondSite []bool // len n
	ordered  bool
}

// resolve clamps r for a sequence of length n.
// Mutation bounds clamp to [0, n]; bond bounds to [0, n/2].
func resolve(n int, r Restrictions) bounds {
	b := bounds{
		n:        n,
		minMut:   max(0, r.MinMutations),
		maxMut:   min(n, r.MaxMutations),
		minBond:  max(0, r.MinBonds),
		maxBond:  min(n/2, r.MaxBonds),
		bondSite: eligibleMask(n, r.BondSites),
		ordered:  r.OrderedBonds,
	}

	mutMask := eligibleMask(n, r.MutationSites)
	b.mutSites = make([]int, 0, n)
	for i, ok := range mutMask {
		if ok {
			b.mutSites = append(b.mutSites, i)
		}
	}

	return b
}

// eligibleMask turns a site list into a mask of length n.
// nil means every position; indices outside [0, n) are ignored.
func eligibleMask(n int, sites []int) []bool {
	mask := make([]bool, n)
	if sites == nil {
		for i := range mask {
			mask[i] = true
		}

		return mask
	}
	for _, s := range sites {
		if s >= 0 && s < n {
			mask[s] = true
		}
	}

	return mask
}

// segment derives the Restrictions for the sub-sequence [start, end):
// no mutations, bonds in [0, maxBond], and bond sites restricted to the
// segment and re-indexed relative to start.
func (b bounds) segment(start, end int) Restrictions {
	sites := Sites()
	for i := start; i < end; i++ {
		if b.bondSite[i] {
			sites = append(sites, i-start)
		}
	}

	return Restrictions{
		MinMutations:  0,
		MaxMutations:  0,
		MinBonds:      0,
		MaxBonds:      b.maxBond,
		MutationSites: Sites(),
		BondSites:     sites,
		OrderedBonds:  b.ordered,
	}
}

// empty reports whether no candidate can satisfy the clamped bounds.
func (b bounds) empty() bool {
	return b.minMut > b.maxMut || b.minBond > b.maxBond
}

// checkSymbols enforces the public preconditions on the input sequence.
func checkSymbols(symbols []nucleotide.Symbol) error {
	if len(symbols) == 0 {
		return ErrEmptySequence
	}
	for i, s := range symbols {
		if !s.Valid() {
			return fmt.Errorf("%w at index %d", ErrInvalidSymbol, i)
		}
	}

	return nil
}
