package enumerate

import (
	"errors"
	"math"
)

// Sentinel errors for enumeration.
var (
	// ErrEmptySequence indicates a zero-length input sequence.
	ErrEmptySequence = errors.New("enumerate: sequence is empty")

	// ErrInvalidSymbol indicates an input symbol outside the alphabet.
	ErrInvalidSymbol = errors.New("enumerate: invalid symbol")

	// ErrBranchFailed indicates that a parallel branch failed unexpectedly.
	// The error returned by EnumerateParallel wraps it together with the
	// mutation set of the failing branch.
	ErrBranchFailed = errors.New("enumerate: branch failed")
)

// Restrictions bounds the search.
//
// Fields:
//   - MinMutations, MaxMutations: number of mutated positions; clamped to [0, n].
//   - MinBonds, MaxBonds:         number of bonds; clamped to [0, n/2].
//   - MutationSites:              positions that may be mutated. nil means every
//     position; a non-nil empty slice means none. Out-of-range indices are ignored.
//   - BondSites:                  positions that may be a bond endpoint, same rules.
//   - OrderedBonds:               if true, (a,b) and (b,a) are distinct candidates.
//
// The zero value allows neither mutations nor bonds; start from
// DefaultRestrictions for an unrestricted search.
type Restrictions struct {
	MinMutations int
	MaxMutations int
	MinBonds     int
	MaxBonds     int

	MutationSites []int
	BondSites     []int

	OrderedBonds bool
}

// DefaultRestrictions returns unrestricted bounds: minimums 0, maximums
// math.MaxInt, every position eligible, unordered bonds.
func DefaultRestrictions() Restrictions {
	return Restrictions{
		MinMutations:  0,
		MaxMutations:  math.MaxInt,
		MinBonds:      0,
		MaxBonds:      math.MaxInt,
		MutationSites: nil,
		BondSites:     nil,
		OrderedBonds:  false,
	}
}

// Sites builds an eligible-position list. The result is never nil, so
// Sites() with no arguments means "no position is eligible".
func Sites(ns ...int) []int {
	out := make([]int, len(ns))
	copy(out, ns)

	return out
}
