package spp

import (
	"errors"
	"time"

	"github.com/mvstrip/spp/layout"
	"github.com/mvstrip/spp/order"
)

// ErrInvalidOptions indicates a negative TimeBudget or NodeBudget.
var ErrInvalidOptions = errors.New("spp: invalid options")

// Options configures a single Solve call. The zero value is not
// meaningful; use DefaultOptions.
type Options struct {
	// Strategy selects the ordering heuristic (or composite policy) used
	// to seed the search, per order.Strategy.
	Strategy order.Strategy

	// TimeBudget, if non-zero, is a soft wall-clock limit. The engine
	// checks it sparsely (every 4096 node events) and returns the best
	// incumbent found so far, tagged BudgetExhausted, rather than
	// blocking past it.
	TimeBudget time.Duration

	// NodeBudget, if non-zero, caps the number of placement attempts
	// across the whole search (including every permutation run under
	// AllPermutations). It is checked on the same sparse schedule as
	// TimeBudget (every 4096 node events), so the search can run past
	// the cap by up to that many events before stopping.
	NodeBudget int64

	// Debug enables post-improvement invariant checking (layout.Validate)
	// on every new incumbent. Invariant violations are implementation
	// bugs and panic rather than returning an error.
	Debug bool
}

// DefaultOptions returns a single search over the HeightWidth ordering
// (a heuristic; it does not always reach the optimum) with no time or
// node budget and debug checks disabled.
func DefaultOptions() Options {
	return Options{Strategy: order.HeightWidth}
}

// Outcome reports how a search concluded.
type Outcome int

const (
	// Optimal means the search explored its full branch-and-bound tree
	// (for the configured strategy) without hitting a budget.
	Optimal Outcome = iota
	// BudgetExhausted means a TimeBudget or NodeBudget cut the search
	// short; Result still carries the best incumbent found so far.
	BudgetExhausted
)

// String returns a lowercase tag for the outcome.
func (o Outcome) String() string {
	if o == BudgetExhausted {
		return "budget_exhausted"
	}

	return "optimal"
}

// Result is the outcome of a Solve call.
type Result struct {
	// Found reports whether any feasible layout was recorded. False only
	// if a budget expired before the search placed a single complete
	// sequence (instances are pre-validated feasible at construction, so
	// Found==false implies BudgetExhausted, never an infeasible instance).
	Found bool

	// Height is the incumbent's height; meaningful only if Found.
	Height int

	// Layout is the incumbent's placement snapshot; meaningful only if Found.
	Layout layout.Layout

	// Outcome reports whether the search was exhaustive for its strategy.
	Outcome Outcome

	// Nodes counts placement attempts across the whole search.
	Nodes int64

	// Elapsed is wall-clock time spent inside Solve.
	Elapsed time.Duration
}
