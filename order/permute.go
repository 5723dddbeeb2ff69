package order

import "github.com/mvstrip/spp/item"

// Permutations lazily enumerates every permutation of items using Heap's
// algorithm, yielding one freshly-copied slice per permutation. Nothing
// beyond the current permutation and Heap's O(n) index bookkeeping is
// ever materialised, per SPEC_FULL.md §9 ("emit permutations lazily to
// bound memory at O(n); do not materialise n! sequences").
//
// The iteration stops as soon as the consumer breaks out of its range
// loop (range-over-func: yield returning false), so ALL_PERMUTATIONS callers
// combined with a tight incumbent can short-circuit without ever
// generating the remaining permutations.
//
// Complexity: O(n!) calls, O(n) space for the working buffer plus O(n)
// per yielded copy.
func Permutations(items []item.Item) func(yield func([]item.Item) bool) {
	return func(yield func([]item.Item) bool) {
		n := len(items)
		buf := make([]item.Item, n)
		copy(buf, items)

		if n == 0 {
			yield(buf)
			return
		}

		var generate func(k int) bool
		generate = func(k int) bool {
			if k == 1 {
				out := make([]item.Item, n)
				copy(out, buf)
				return yield(out)
			}
			for i := 0; i < k; i++ {
				if !generate(k - 1) {
					return false
				}
				if k%2 == 0 {
					buf[i], buf[k-1] = buf[k-1], buf[i]
				} else {
					buf[0], buf[k-1] = buf[k-1], buf[0]
				}
			}

			return true
		}
		generate(n)
	}
}
