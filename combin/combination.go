package combin

import (
	"iter"
	"math"
)

// Combination steps through the k-element index tuples of {0..n-1} in
// lexicographic order, starting at (0, 1, ..., k-1).
//
// Usage:
//
//	c := combin.NewCombination(5, 3)
//	for c.Next() {
//		use(c.Indices())
//	}
type Combination struct {
	n       int
	idx     []int
	started bool
	done    bool
}

// NewCombination returns a stepper over C(n, k) tuples. If k < 0 or k > n
// there are no tuples and the first Next returns false. k == 0 yields a single
// empty tuple.
func NewCombination(n, k int) *Combination {
	c := &Combination{n: n}
	if k < 0 || k > n {
		c.done = true

		return c
	}
	c.idx = make([]int, k)
	for i := range c.idx {
		c.idx[i] = i
	}

	return c
}

// Next advances to the next tuple and reports whether one exists.
// The first call positions the stepper on the initial tuple.
//
// Advance rule: find the rightmost index that can still grow without
// colliding with the indices to its right, increment it, and reset every
// index to its right to consecutive values.
func (c *Combination) Next() bool {
	if c.done {
		return false
	}
	if !c.started {
		c.started = true

		return true
	}

	k := len(c.idx)
	a := k - 1
	for ; a >= 0; a-- {
		// idx[a] may grow while it leaves room for the k-1-a indices after it.
		if c.idx[a] < c.n-k+a {
			break
		}
	}
	if a < 0 {
		c.done = true

		return false
	}
	c.idx[a]++
	for b := a + 1; b < k; b++ {
		c.idx[b] = c.idx[b-1] + 1
	}

	return true
}

// Indices returns the current tuple. The slice is owned by the stepper and
// is overwritten by the next call to Next.
func (c *Combination) Indices() []int { return c.idx }

// Subsets returns a lazy sequence over every subset of items whose size lies
// in [kmin, kmax] and for which valid returns true.
//
// Bounds: kmin is raised to 0 and kmax lowered to len(items); if kmin > kmax
// afterwards the sequence is empty. A nil valid accepts every subset.
//
// valid is called exactly once per candidate subset, after the subset is
// built and before it is yielded; rejected subsets are skipped. Every yielded
// slice is freshly allocated and may be retained by the caller.
func Subsets[T any](items []T, kmin, kmax int, valid func([]T) bool) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		n := len(items)
		lo, hi := max(kmin, 0), min(kmax, n)
		for k := lo; k <= hi; k++ {
			c := NewCombination(n, k)
			for c.Next() {
				subset := make([]T, k)
				for i, j := range c.Indices() {
					subset[i] = items[j]
				}
				if valid != nil && !valid(subset) {
					continue
				}
				if !yield(subset) {
					return
				}
			}
		}
	}
}

// Binomial returns C(n, k), saturating at math.MaxInt. It returns 0 when
// k < 0 or k > n.
func Binomial(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	k = min(k, n-k)
	r := 1
	for i := 0; i < k; i++ {
		// r·(n-i) is always divisible by (i+1) at this point.
		if r > math.MaxInt/(n-i) {
			return math.MaxInt
		}
		r = r * (n - i) / (i + 1)
	}

	return r
}

// Count returns the number of subsets of an n-element list with size in
// [kmin, kmax] (before any predicate), saturating at math.MaxInt.
func Count(n, kmin, kmax int) int {
	lo, hi := max(kmin, 0), min(kmax, n)
	total := 0
	for k := lo; k <= hi; k++ {
		c := Binomial(n, k)
		if total > math.MaxInt-c {
			return math.MaxInt
		}
		total += c
	}

	return total
}
