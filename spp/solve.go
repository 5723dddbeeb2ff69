// Package spp implements the Martello-Vigo corner-point branch-and-bound
// search for the two-dimensional strip-packing problem, plus the
// dispatcher that drives it under every ordering strategy in order.Strategy
// — including the three composite policies (AllPermutations, Synthetic2,
// Synthetic4) that order.Order itself refuses.
//
// Grounded on lvlath/tsp's bb.go/solve.go split: a private bbEngine type
// carrying all search state, and a small exported dispatcher that
// validates input, builds the engine, and packages its result.
package spp

import (
	"time"

	"github.com/mvstrip/spp/item"
	"github.com/mvstrip/spp/order"
)

// Solve computes the minimum-height layout for inst under opts. It never
// mutates inst; the search works on a private copy of inst.Items.
//
// n==0 is handled directly: the result is height 0, an empty layout,
// Found true, Optimal, with no recursion.
//
// Complexity: exponential worst case for a single exact run; order.Order's
// composite strategies multiply that by the number of arms they run.
func Solve(inst item.Instance, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	start := time.Now()

	var (
		res Result
		err error
	)
	switch opts.Strategy {
	case order.AllPermutations:
		res, err = solveAllPermutations(inst, opts)
	case order.Synthetic2:
		res, err = solveBestOf(inst, opts, []order.Strategy{order.HeightWidth, order.WidthHeight})
	case order.Synthetic4:
		res, err = solveBestOf(inst, opts, []order.Strategy{order.Height, order.HeightWidth, order.Width, order.WidthHeight})
	default:
		res, err = solveOrdered(inst, opts)
	}
	if err != nil {
		return Result{}, err
	}

	res.Elapsed = time.Since(start)

	return res, nil
}

// solveOrdered runs a single full search under one simple (non-composite)
// ordering strategy.
//
// Complexity: see Solve.
func solveOrdered(inst item.Instance, opts Options) (Result, error) {
	seq, err := order.Order(inst.Items, opts.Strategy)
	if err != nil {
		return Result{}, err
	}

	return runSearch(inst.W, inst.Rotation, seq, opts), nil
}

// solveBestOf runs solveOrdered once per arm and keeps the best result
// (per betterResult: found beats not-found, then lowest height). Each arm
// is an independent search with its own incumbent and the full node/time
// budget of opts — SYNTHETIC_2/4 are "run several heuristics, keep the
// winner", not a single shared search.
//
// Complexity: len(arms) independent single-strategy searches.
func solveBestOf(inst item.Instance, opts Options, arms []order.Strategy) (Result, error) {
	var best Result
	for i, s := range arms {
		sub := opts
		sub.Strategy = s

		r, err := solveOrdered(inst, sub)
		if err != nil {
			return Result{}, err
		}

		if i == 0 || betterResult(r, best) {
			best = r
		}
	}

	return best, nil
}

// betterResult reports whether r should replace best: found beats
// not-found, and among found results lower height wins.
//
// Complexity: O(1).
func betterResult(r, best Result) bool {
	if r.Found != best.Found {
		return r.Found
	}

	return r.Found && r.Height < best.Height
}

// solveAllPermutations runs one search per permutation of inst.Items, all
// sharing a single engine (and therefore a single incumbent and a single
// node/time budget) so that an early permutation's incumbent prunes the
// later ones — this is the exact variant, equivalent in result to running
// every permutation from a cold incumbent but far cheaper in practice.
//
// Complexity: O(n!) permutations, each a full search under the shared
// incumbent.
func solveAllPermutations(inst item.Instance, opts Options) (Result, error) {
	n := len(inst.Items)
	if n == 0 {
		return runSearch(inst.W, inst.Rotation, nil, opts), nil
	}

	e := newEngine(inst.W, inst.Rotation, n, opts)
	for perm := range order.Permutations(inst.Items) {
		e.placements = e.placements[:0]
		e.pack(perm, 0)
		if e.budgetHit {
			break
		}
	}

	return e.result(), nil
}

// runSearch drives a single engine over one already-ordered sequence,
// handling the n==0 special case directly.
//
// Complexity: see Solve.
func runSearch(w int, rotation bool, seq []item.Item, opts Options) Result {
	if len(seq) == 0 {
		return Result{Found: true, Outcome: Optimal}
	}

	e := newEngine(w, rotation, len(seq), opts)
	e.pack(seq, 0)

	return e.result()
}
