// Package order implements the closed enumeration of ordering heuristics
// used to seed the branch-and-bound search, per SPEC_FULL.md §4.2.
//
// Grounded on original_source/Exact_Algorithm/exact_solution.py's family
// of *_model sort keys, generalized into a single Strategy enum and a
// stable-sort dispatcher in the style of lvlath/tsp's Algorithm/Options
// pattern (a closed enum routed by a single exported function).
package order

import (
	"errors"
	"sort"

	"github.com/mvstrip/spp/item"
)

// ErrUnsupportedStrategy is returned by Order for a Strategy value
// outside the closed enumeration, or for the three composite strategies
// (ALL_PERMUTATIONS, SYNTHETIC_2, SYNTHETIC_4) which are not a single
// total order and must instead be driven by the spp package dispatcher.
var ErrUnsupportedStrategy = errors.New("order: unsupported or composite strategy")

// Strategy selects a total order (or, for the composite values, a
// multi-run policy driven by the spp dispatcher rather than Order).
type Strategy int

const (
	// Random leaves items in their input order (no sort).
	Random Strategy = iota
	// Height sorts by h, descending.
	Height
	// HeightWidth sorts by (h, w), descending.
	HeightWidth
	// Width sorts by w, descending.
	Width
	// WidthHeight sorts by (w, h), descending.
	WidthHeight
	// WidthHeightAsc sorts by (w, h), ascending.
	WidthHeightAsc
	// Area sorts by w*h, descending.
	Area
	// AreaHeight sorts by (w*h, h), descending.
	AreaHeight
	// AreaWidth sorts by (w*h, w), descending.
	AreaWidth
	// AllPermutations enumerates every permutation of items (composite;
	// see Permutations). Order returns ErrUnsupportedStrategy for it.
	AllPermutations
	// Synthetic2 runs HeightWidth then WidthHeight and keeps the better
	// result (composite; driven by the spp dispatcher).
	Synthetic2
	// Synthetic4 runs Height, HeightWidth, Width, WidthHeight and keeps
	// the best result (composite; driven by the spp dispatcher).
	Synthetic4
)

// String returns the strategy's canonical tag, as accepted by
// ParseStrategy. The results-file columns use their own short names
// (HW_h, WH_h, ...), not these tags.
func (s Strategy) String() string {
	switch s {
	case Random:
		return "RANDOM"
	case Height:
		return "HEIGHT"
	case HeightWidth:
		return "HEIGHT_WIDTH"
	case Width:
		return "WIDTH"
	case WidthHeight:
		return "WIDTH_HEIGHT"
	case WidthHeightAsc:
		return "WIDTH_HEIGHT_ASC"
	case Area:
		return "AREA"
	case AreaHeight:
		return "AREA_HEIGHT"
	case AreaWidth:
		return "AREA_WIDTH"
	case AllPermutations:
		return "ALL_PERMUTATIONS"
	case Synthetic2:
		return "SYNTHETIC_2"
	case Synthetic4:
		return "SYNTHETIC_4"
	default:
		return "UNKNOWN"
	}
}

// IsComposite reports whether s names a multi-run policy rather than a
// single total order (ALL_PERMUTATIONS, SYNTHETIC_2, SYNTHETIC_4).
func (s Strategy) IsComposite() bool {
	return s == AllPermutations || s == Synthetic2 || s == Synthetic4
}

// ParseStrategy resolves a tag (as produced by Strategy.String) back to
// its Strategy value, for config files and CLI flags that name
// strategies by their canonical tag.
//
// Complexity: O(1).
func ParseStrategy(tag string) (Strategy, error) {
	s, ok := tagToStrategy[tag]
	if !ok {
		return 0, ErrUnsupportedStrategy
	}

	return s, nil
}

var tagToStrategy = map[string]Strategy{
	"RANDOM":            Random,
	"HEIGHT":            Height,
	"HEIGHT_WIDTH":      HeightWidth,
	"WIDTH":             Width,
	"WIDTH_HEIGHT":      WidthHeight,
	"WIDTH_HEIGHT_ASC":  WidthHeightAsc,
	"AREA":              Area,
	"AREA_HEIGHT":       AreaHeight,
	"AREA_WIDTH":        AreaWidth,
	"ALL_PERMUTATIONS":  AllPermutations,
	"SYNTHETIC_2":       Synthetic2,
	"SYNTHETIC_4":       Synthetic4,
}

// Order returns items resorted according to strategy. The result is a
// fresh slice; items is never mutated. Sorting is stable: items tied on
// the strategy's key keep their relative input order.
//
// Order does not accept composite strategies — callers wanting
// ALL_PERMUTATIONS, SYNTHETIC_2, or SYNTHETIC_4 must drive multiple
// Order/solve calls themselves (see spp.Solve).
//
// Complexity: O(n log n).
func Order(items []item.Item, strategy Strategy) ([]item.Item, error) {
	if strategy.IsComposite() {
		return nil, ErrUnsupportedStrategy
	}

	out := make([]item.Item, len(items))
	copy(out, items)

	less, ok := lessFuncs[strategy]
	if !ok {
		return nil, ErrUnsupportedStrategy
	}
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}

	return out, nil
}

// lessFuncs maps each simple strategy to its comparator. A nil entry
// (Random) means "no sort, preserve input order".
var lessFuncs = map[Strategy]func(a, b item.Item) bool{
	Random: nil,
	Height: func(a, b item.Item) bool { return a.H > b.H },
	HeightWidth: func(a, b item.Item) bool {
		if a.H != b.H {
			return a.H > b.H
		}
		return a.W > b.W
	},
	Width: func(a, b item.Item) bool { return a.W > b.W },
	WidthHeight: func(a, b item.Item) bool {
		if a.W != b.W {
			return a.W > b.W
		}
		return a.H > b.H
	},
	WidthHeightAsc: func(a, b item.Item) bool {
		if a.W != b.W {
			return a.W < b.W
		}
		return a.H < b.H
	},
	Area: func(a, b item.Item) bool { return a.Area() > b.Area() },
	AreaHeight: func(a, b item.Item) bool {
		aa, ab := a.Area(), b.Area()
		if aa != ab {
			return aa > ab
		}
		return a.H > b.H
	},
	AreaWidth: func(a, b item.Item) bool {
		aa, ab := a.Area(), b.Area()
		if aa != ab {
			return aa > ab
		}
		return a.W > b.W
	},
}
