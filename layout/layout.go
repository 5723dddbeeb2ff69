// Package layout holds the partial and final placement state produced by
// the branch-and-bound search: placed rectangles with concrete (x, y)
// coordinates, and the strict invariant checks a debug build asserts on.
//
// Grounded on lvlath/tsp/validate.go and tour.go: small, side-effect-free
// validation functions returning strict sentinel errors, no logging, no
// panics on ordinary input.
package layout

import "errors"

// Invariant-violation sentinels. These indicate an implementation bug in
// the engine (a corner point outside the strip, two overlapping
// placements) rather than a malformed instance; callers running in a
// debug build should treat them as fatal (see spp.Options.Debug).
var (
	// ErrOutOfStrip indicates a placement violates 0<=x and x+w<=W, or y<0.
	ErrOutOfStrip = errors.New("layout: placement lies outside the strip")

	// ErrOverlap indicates two placed items' interiors intersect.
	ErrOverlap = errors.New("layout: two placements overlap")

	// ErrHeightMismatch indicates the reported height does not equal
	// max(y+h) over all placements.
	ErrHeightMismatch = errors.New("layout: height does not match max(y+h)")
)

// Placement is one item fixed at a concrete position: a width w, a
// height h (post-rotation, if any), and a bottom-left corner (x, y).
type Placement struct {
	X, Y int
	W, H int
}

// Top returns y+h, the placement's top edge.
//
// Complexity: O(1).
func (p Placement) Top() int { return p.Y + p.H }

// Right returns x+w, the placement's right edge.
//
// Complexity: O(1).
func (p Placement) Right() int { return p.X + p.W }

// overlaps reports whether the open rectangles of p and q intersect.
//
// Complexity: O(1).
func (p Placement) overlaps(q Placement) bool {
	if p.X+p.W <= q.X || q.X+q.W <= p.X {
		return false
	}
	if p.Y+p.H <= q.Y || q.Y+q.H <= p.Y {
		return false
	}

	return true
}

// Layout is a complete placement of every item in an instance: the
// achieved height and the placements, in the order the search placed
// them (which is the order of the sequence the search was seeded with,
// not necessarily the caller's original item order).
type Layout struct {
	Height     int
	Placements []Placement
}

// HeightOf returns max(y+h) over placements, or 0 for an empty layout.
//
// Complexity: O(n).
func HeightOf(placements []Placement) int {
	h := 0
	for _, p := range placements {
		if t := p.Top(); t > h {
			h = t
		}
	}

	return h
}

// Validate checks the §3 invariants: every placement lies inside a
// strip of width w, no two placements overlap, and height equals
// max(y+h). It is O(n^2) and is intended for debug builds and tests,
// not the search hot path.
//
// Complexity: O(n^2).
func Validate(w int, l Layout) error {
	for _, p := range l.Placements {
		if p.X < 0 || p.Right() > w || p.Y < 0 {
			return ErrOutOfStrip
		}
	}
	for i := range l.Placements {
		for j := i + 1; j < len(l.Placements); j++ {
			if l.Placements[i].overlaps(l.Placements[j]) {
				return ErrOverlap
			}
		}
	}
	if HeightOf(l.Placements) != l.Height {
		return ErrHeightMismatch
	}

	return nil
}
