// Package structure models one fully realized secondary-structure candidate:
// a fixed-length run of positions, some flagged as mutated, plus the set of
// bonds between them.
//
// What:
//
//   - Bond:      an ordered (Start, End) pair of position indices.
//   - Position:  index, symbol, mutation flag and an optional bond. The bond is
//     an explicit tagged state (Bond() returns ok=false when absent), so
//     comparing unbonded positions is always safe.
//   - Sequence:  the immutable aggregate. Built once by New, never mutated.
//
// Invariants enforced by New:
//
//   - every Position's index equals its slot;
//   - every bond endpoint and every mutation index is in [0, Len());
//   - no bond joins a position to itself;
//   - no index is an endpoint of more than one bond.
//
// Crossing bonds (pseudoknots) are NOT rejected; only double use of a
// position is.
//
// Equality is structural. Sequence.Key returns a canonical string that is
// equal for two sequences iff Equal reports true, which makes it suitable as
// a map key for set or multiset bookkeeping.
package structure
