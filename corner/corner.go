// Package corner computes the corner-point candidate set used by the
// branch-and-bound engine to restrict placement positions to a provably
// complete small set, per the Martello-Vigo corner-point construction.
//
// Grounded on original_source/Exact_Algorithm/branch_and_bound_class.py's
// two_dim_corners, generalized per SPEC_FULL.md §4.3: the extreme-item
// scan runs over the (y+h, x+w)-descending sort (fixing the "top-down
// staircase" reading of the ambiguous source), and the feasibility
// filter removes every violating corner via a fresh slice rather than
// mutating mid-iteration (the source's mutate-while-iterating anomaly is
// not reproduced; see DESIGN.md Open Questions).
package corner

import (
	"sort"

	"github.com/mvstrip/spp/layout"
)

// Point is a candidate bottom-left position for the next item.
type Point struct {
	X, Y int
}

// Corners returns the complete, feasible set of candidate positions for
// the next item, given the items already placed and the minimum width
// among the items not yet placed.
//
// placed is read-only: a local copy is sorted, so the caller's slice
// order is never disturbed.
//
// Complexity: O(m log m) where m = len(placed).
func Corners(placed []layout.Placement, outMinWidth, w int) []Point {
	if len(placed) == 0 {
		return []Point{{X: 0, Y: 0}}
	}

	sorted := make([]layout.Placement, len(placed))
	copy(sorted, placed)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, tj := sorted[i].Top(), sorted[j].Top()
		if ti != tj {
			return ti > tj
		}

		return sorted[i].Right() > sorted[j].Right()
	})

	extremes := extremeItems(sorted)

	m := len(extremes)
	corners := make([]Point, 0, m+1)
	corners = append(corners, Point{X: 0, Y: extremes[0].Top()})
	for k := 1; k < m; k++ {
		corners = append(corners, Point{X: extremes[k-1].Right(), Y: extremes[k].Top()})
	}
	corners = append(corners, Point{X: extremes[m-1].Right(), Y: 0})

	return filterFeasible(corners, outMinWidth, w)
}

// extremeItems walks the (y+h, x+w)-descending sorted placements and
// keeps those whose right edge strictly exceeds the running maximum —
// the staircase skyline seen from the right.
//
// Complexity: O(m).
func extremeItems(sorted []layout.Placement) []layout.Placement {
	extremes := make([]layout.Placement, 0, len(sorted))
	xMax := 0
	for _, p := range sorted {
		if p.Right() > xMax {
			xMax = p.Right()
			extremes = append(extremes, p)
		}
	}

	return extremes
}

// filterFeasible removes every corner that could not receive any
// remaining item regardless of which one is chosen next. It builds a
// fresh slice rather than mutating corners mid-scan.
//
// Complexity: O(m).
func filterFeasible(corners []Point, outMinWidth, w int) []Point {
	kept := corners[:0:0] // fresh backing array; never aliases corners
	for _, c := range corners {
		if c.X+outMinWidth <= w {
			kept = append(kept, c)
		}
	}

	return kept
}
