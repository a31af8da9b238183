// Package enumerate lists every secondary-structure candidate of a nucleotide
// sequence that satisfies a set of Restrictions.
//
// What:
//
//   - Enumerate:         sequential search; returns all candidates.
//   - Each:              the same search, streamed to a callback.
//   - EnumerateParallel: the same result set, with the outer mutation-set loop
//     fanned out over a bounded errgroup pool.
//
// Algorithm Outline:
//  1. Resolve eligible mutation and bond positions (nil sites = all) and clamp
//     the bounds: mutations to [0, n], bonds to [0, n/2].
//  2. Mutation sets M = combin.Subsets(eligible mutation positions, minMut, maxMut).
//  3. For each M (sorted ascending):
//     - M empty:  collect every compatible pair (i<j) of eligible bond
//     positions, plus (j,i) when ordered bonds are requested, and emit every
//     bond subset of size [minBond, maxBond] in which no position is used twice.
//     - M non-empty: mutated positions are hard separators. Split [0,n) into
//     the segments between them, search each segment with mutation bounds
//     [0,0] and bond bounds [0,maxBond], then recombine the per-segment
//     results with combin.Product, shifting each segment's bonds by its start.
//     Keep combinations whose total bond count lies in [minBond, maxBond].
//  4. Concatenate the accepted candidates of every M.
//
// Segment searches are memoized per call: a segment [start,end) reached from
// several mutation sets is searched once.
//
// Determinism: repeated calls with identical input produce the same candidates
// in the same order. EnumerateParallel produces the same multiset in an
// unspecified order.
//
// Crossing bonds (pseudoknots) are permitted; the only structural rule is that
// a position belongs to at most one bond.
//
// Errors:
//
//   - ErrEmptySequence  the input has no symbols.
//   - ErrInvalidSymbol  the input contains nucleotide.Invalid.
//   - ErrBranchFailed   a parallel branch panicked.
//   - ctx.Err()         the context from WithContext was cancelled.
//
// Bounds are never an error: out-of-range values are clamped and an empty
// feasible range simply yields no candidates.
//
// Complexity: exponential in the sequence length in the worst case; the
// segment split turns a joint search into a product of independent ones.
package enumerate
