// Package combin provides the combinatorial iterators that drive the
// enumeration engine.
//
// What:
//
//   - Combination: a stepper over the k-element index tuples of {0..n-1} in
//     lexicographic order, using the classic next-combination advance.
//   - Subsets:     a lazy iter.Seq over every subset of a list whose size lies
//     in [kmin, kmax], optionally filtered by a validity predicate.
//   - Product:     an iterative odometer over the cartesian product of index
//     ranges (no recursion, O(1) extra space per step).
//   - Binomial / Count: saturating counters for capacity hints and logging.
//
// Order (Subsets): sizes ascend from kmin to kmax; within one size, subsets
// follow the lexicographic order of their item indices. The order is fully
// deterministic, duplicate-free and exhaustive.
//
// Complexity:
//
//   - Combination.Next: O(k) worst case, O(1) amortized.
//   - Subsets:          O(Σ C(n,k)·(k + P)) where P is the predicate cost.
//   - Product:          O(Π sizes) steps, O(1) amortized per step.
package combin
