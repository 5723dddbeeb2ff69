package spp

import (
	"time"

	"github.com/mvstrip/spp/corner"
	"github.com/mvstrip/spp/item"
	"github.com/mvstrip/spp/layout"
)

// engine holds the mutable search state for one Solve invocation (or, for
// AllPermutations, one shared search across every permutation). A fresh
// engine is never reused across unrelated Solve calls: incumbent state is
// component-local, never a package global (§9).
type engine struct {
	w        int
	rotation bool
	debug    bool

	incumbent  layout.Incumbent
	placements []layout.Placement // working skyline, length == depth of current branch

	useDeadline bool
	deadline    time.Time
	maxNodes    int64
	nodes       int64
	steps       int
	budgetHit   bool
}

// newEngine allocates an engine sized for an n-item search under opts.
//
// Complexity: O(n).
func newEngine(w int, rotation bool, n int, opts Options) *engine {
	e := &engine{
		w:          w,
		rotation:   rotation,
		debug:      opts.Debug,
		incumbent:  layout.NewIncumbent(),
		placements: make([]layout.Placement, 0, n),
		maxNodes:   opts.NodeBudget,
	}
	if opts.TimeBudget > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeBudget)
	}

	return e
}

// budgetExceeded performs a rare (every 4096 node events) deadline/node
// check, per the teacher's deadlineCheck discipline.
//
// Complexity: amortized O(1).
func (e *engine) budgetExceeded() bool {
	if e.budgetHit {
		return true
	}
	e.steps++
	if e.steps&4095 != 0 {
		return false
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		e.budgetHit = true
		return true
	}
	if e.maxNodes > 0 && e.nodes >= e.maxNodes {
		e.budgetHit = true
		return true
	}

	return false
}

// pack is the recursive branch-and-bound step: place seq[i] at every
// feasible corner point (in both orientations if rotation is enabled)
// and recurse, restoring seq[i] and the working skyline on unwind.
//
// Complexity: exponential worst case; O(n) per node plus O(m log m) for
// the corner-point generation at that node.
func (e *engine) pack(seq []item.Item, i int) {
	if e.budgetExceeded() {
		return
	}

	overallHeight := layout.HeightOf(e.placements)
	if e.incumbent.Found && overallHeight >= e.incumbent.BestHeight {
		return
	}

	n := len(seq)
	if i == n {
		e.incumbent.Record(overallHeight, e.placements)
		if e.debug {
			if err := layout.Validate(e.w, e.incumbent.BestLayout); err != nil {
				panic(err)
			}
		}

		return
	}

	outMinWidth := minRemainingWidth(seq[i:], e.rotation)
	corners := corner.Corners(e.placements, outMinWidth, e.w)

	for _, c := range corners {
		origW, origH := seq[i].W, seq[i].H

		if c.X+origW <= e.w {
			e.place(seq, i, c, origW, origH)
			e.nodes++
			e.pack(seq, i+1)
			e.unplace(seq, i, origW, origH)
			if e.budgetHit {
				return
			}
		}

		if e.rotation && origW != origH && c.X+origH <= e.w {
			e.place(seq, i, c, origH, origW)
			e.nodes++
			e.pack(seq, i+1)
			e.unplace(seq, i, origW, origH)
			if e.budgetHit {
				return
			}
		}
	}
}

// place fixes seq[i] at corner c with the given (possibly rotated)
// dimensions and pushes the matching Placement onto the working skyline.
//
// Complexity: O(1) amortized.
func (e *engine) place(seq []item.Item, i int, c corner.Point, w, h int) {
	seq[i].X, seq[i].Y = c.X, c.Y
	seq[i].W, seq[i].H = w, h
	e.placements = append(e.placements, layout.Placement{X: c.X, Y: c.Y, W: w, H: h})
}

// unplace pops the working skyline and restores seq[i]'s pre-placement
// dimensions, undoing any rotation swap.
//
// Complexity: O(1).
func (e *engine) unplace(seq []item.Item, i int, origW, origH int) {
	e.placements = e.placements[:len(e.placements)-1]
	seq[i].W, seq[i].H = origW, origH
	seq[i].X, seq[i].Y = 0, 0
}

// minRemainingWidth computes out_min_width: the smallest footprint any
// not-yet-placed item could present (its width, or its narrowest side if
// rotation is allowed).
//
// Complexity: O(n).
func minRemainingWidth(remaining []item.Item, rotation bool) int {
	best := remaining[0].W
	if rotation {
		best = remaining[0].MinSide()
	}
	for _, it := range remaining[1:] {
		v := it.W
		if rotation {
			v = it.MinSide()
		}
		if v < best {
			best = v
		}
	}

	return best
}

// result packages the engine's final incumbent into a Result.
//
// Complexity: O(n) (layout snapshot is already owned by the incumbent;
// no further copy is made here).
func (e *engine) result() Result {
	outcome := Optimal
	if e.budgetHit {
		outcome = BudgetExhausted
	}

	height := 0
	if e.incumbent.Found {
		height = e.incumbent.BestHeight
	}

	return Result{
		Found:   e.incumbent.Found,
		Height:  height,
		Layout:  e.incumbent.BestLayout,
		Outcome: outcome,
		Nodes:   e.nodes,
	}
}
