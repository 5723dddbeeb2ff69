// Package item defines the Item and Instance value types consumed by the
// strip-packing solver.
//
// Design principles (grounded on lvlath/tsp/types.go):
//   - Strict sentinel errors; no fmt.Errorf where a sentinel suffices.
//   - Flat structs over keyed lookups — items are fixed-schema records.
//   - Mutable-in-place fields (W, H, X, Y): the branch-and-bound engine
//     rewrites them directly during search and restores them on unwind;
//     Item itself enforces no invariant beyond construction-time validity.
package item

import "errors"

// Validation sentinels. Collectively these form the InvalidInstance error
// taxonomy entry: w>W, w<1, h<1, W<1, n<0.
var (
	// ErrInvalidDimension indicates a non-positive width or height.
	ErrInvalidDimension = errors.New("item: width and height must be positive")

	// ErrInvalidStripWidth indicates a non-positive strip width W.
	ErrInvalidStripWidth = errors.New("item: strip width must be positive")

	// ErrItemTooWide indicates an item fits the strip in no allowed orientation.
	ErrItemTooWide = errors.New("item: item does not fit the strip in any allowed orientation")

	// ErrNegativeCount indicates a negative item count was requested of a generator.
	ErrNegativeCount = errors.New("item: item count must be non-negative")
)

// Item is an axis-aligned rectangle: width w (resource footprint) and
// height h (runtime). During search an Item also carries a tentative
// placement (X, Y); rotation may swap W and H for that placement.
//
// Items are otherwise immutable; their identity is positional within
// whichever sequence is currently being explored, not carried in any
// identity field.
type Item struct {
	W, H int // current dimensions; may be swapped in place under rotation
	X, Y int // tentative placement; meaningful only once placed
}

// New constructs an Item with the given width and height, both unplaced
// (X=Y=0). It does not know the strip width, so it cannot check w<=W;
// that check belongs to NewInstance / the engine's per-item feasibility
// check.
//
// Complexity: O(1).
func New(w, h int) (Item, error) {
	if w < 1 || h < 1 {
		return Item{}, ErrInvalidDimension
	}

	return Item{W: w, H: h}, nil
}

// Fits reports whether it can be placed inside a strip of width W in at
// least one allowed orientation.
//
// Complexity: O(1).
func (it Item) Fits(w int, rotation bool) bool {
	if it.W <= w {
		return true
	}

	return rotation && it.H <= w
}

// Area returns w*h, unaffected by any tentative rotation swap (area is
// orientation-invariant).
//
// Complexity: O(1).
func (it Item) Area() int {
	return it.W * it.H
}

// MinSide returns the smaller of W and H — the minimum footprint this
// item could ever present, used by the engine's out_min_width
// computation when rotation is enabled.
//
// Complexity: O(1).
func (it Item) MinSide() int {
	if it.W < it.H {
		return it.W
	}

	return it.H
}
