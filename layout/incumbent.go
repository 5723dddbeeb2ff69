package layout

import "math"

// Incumbent tracks the best feasible height found during a search and a
// snapshot of the layout that achieves it. It is threaded through the
// search as a component-local value (one per Solve call), never a
// package global, so repeated solves never leak state into each other.
//
// The "no solution yet" state is represented by Found==false rather than
// a floating-point +Inf sentinel (see SPEC_FULL.md Part A, §9).
type Incumbent struct {
	BestHeight int
	BestLayout Layout
	Found      bool
}

// NewIncumbent returns an incumbent with no recorded solution.
//
// Complexity: O(1).
func NewIncumbent() Incumbent {
	return Incumbent{BestHeight: math.MaxInt}
}

// Improves reports whether height would strictly improve this incumbent.
//
// Complexity: O(1).
func (inc *Incumbent) Improves(height int) bool {
	return !inc.Found || height < inc.BestHeight
}

// Record commits height/placements as the new incumbent. placements is
// copied so later mutation of the caller's working buffer cannot corrupt
// the stored snapshot.
//
// Complexity: O(n).
func (inc *Incumbent) Record(height int, placements []Placement) {
	snapshot := make([]Placement, len(placements))
	copy(snapshot, placements)

	inc.BestHeight = height
	inc.BestLayout = Layout{Height: height, Placements: snapshot}
	inc.Found = true
}
