package combin

import "iter"

// Product returns a lazy sequence over the cartesian product of the index
// ranges [0, sizes[i]). Tuples are produced odometer-style: the rightmost
// axis varies fastest.
//
// Edge cases: any axis of size ≤ 0 makes the product empty; zero axes yield
// exactly one empty tuple.
//
// The yielded slice is reused between iterations; copy it to retain it.
// The walk is iterative, so stack depth does not grow with len(sizes).
func Product(sizes []int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for _, s := range sizes {
			if s <= 0 {
				return
			}
		}

		idx := make([]int, len(sizes))
		for {
			if !yield(idx) {
				return
			}
			k := len(idx) - 1
			for ; k >= 0; k-- {
				idx[k]++
				if idx[k] < sizes[k] {
					break
				}
				idx[k] = 0
			}
			if k < 0 {
				return
			}
		}
	}
}
