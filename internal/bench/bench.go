// Package bench generalizes the original compare_models driver:
// accumulate solve time and height per ordering strategy across a
// configured number of repetitions, for a configured range of instance
// sizes, emitting one Row per n.
//
// Grounded on original_source/Exact_Algorithm/exact_solution.py's
// compare_models (accumulate _time/_height per strategy across iter
// repetitions for one fixed instance shape); generalized to loop over a
// range of n because the results-file schema (§6) is indexed by n, which
// the original's single-n compare_models is not.
package bench

import (
	"errors"
	"time"

	"github.com/mvstrip/spp/bound"
	"github.com/mvstrip/spp/internal/geninstance"
	"github.com/mvstrip/spp/item"
	"github.com/mvstrip/spp/order"
	"github.com/mvstrip/spp/spp"
)

// ErrInvalidParams indicates a malformed Params value.
var ErrInvalidParams = errors.New("bench: invalid params")

// Params configures one Compare run. Struct tags let internal/config
// decode it straight out of TOML.
type Params struct {
	W          int   `toml:"w"`
	ResLow     int   `toml:"res_low"`
	ResHigh    int   `toml:"res_high"`
	TimeLow    int   `toml:"time_low"`
	TimeHigh   int   `toml:"time_high"`
	NFrom      int   `toml:"n_from"`
	NTo        int   `toml:"n_to"`
	NStep      int   `toml:"n_step"`
	Iterations int   `toml:"iterations"`
	Seed       int64 `toml:"seed"`
}

// Validate checks Params for internal consistency.
//
// Complexity: O(1).
func (p Params) Validate() error {
	if p.W < 1 {
		return ErrInvalidParams
	}
	if p.ResLow > p.ResHigh || p.TimeLow >= p.TimeHigh {
		return ErrInvalidParams
	}
	if p.NFrom < 0 || p.NTo < p.NFrom || p.NStep < 1 {
		return ErrInvalidParams
	}
	if p.Iterations < 1 {
		return ErrInvalidParams
	}

	return nil
}

// Row is one line of the §6 results file: bound values and, for every
// strategy actually run, summed height and summed solve time across
// Params.Iterations repetitions. Fields for strategies not selected to
// run are left zero, per §6 ("Uncomputed fields are zero").
type Row struct {
	N int

	ConBound   int
	FirstBound int

	ExactHeight int
	ExactTime   time.Duration

	HWHeight int // HEIGHT_WIDTH
	HWTime   time.Duration

	WHHeight int // WIDTH_HEIGHT
	WHTime   time.Duration

	AHHeight int // AREA_HEIGHT
	AHTime   time.Duration

	AWHeight int // AREA_WIDTH
	AWTime   time.Duration

	RandomHeight int
	RandomTime   time.Duration

	SynHeight int // SYNTHETIC_4
	SynTime   time.Duration

	Syn1Height int // SYNTHETIC_2
	Syn1Time   time.Duration
}

// DefaultStrategies returns the default strategy subset: WidthHeight
// alone. Compare runs only the strategies that have a results column
// (HeightWidth, WidthHeight, AreaHeight, AreaWidth, Random, Synthetic4,
// Synthetic2); any other strategy in the map, WidthHeightAsc included,
// is ignored. Callers wanting the full comparison pass all seven.
// AllPermutations need not be listed: Compare always runs it, for
// con_bound/first_bound sandwich checks against it to make sense.
func DefaultStrategies() map[order.Strategy]bool {
	return map[order.Strategy]bool{
		order.WidthHeight: true,
	}
}

// Compare runs p.Iterations repetitions for each n in
// [p.NFrom, p.NTo] stepping by p.NStep, generating a fresh random
// instance per repetition (internal/geninstance.Uniform, seeded
// deterministically from p.Seed and (n, iteration)), and accumulates
// bound values plus per-strategy height/time sums into one Row per n.
//
// run selects which strategies besides AllPermutations to execute;
// AllPermutations itself always runs, since con_bound/first_bound are
// only meaningful measured against the exact optimum (§8 bounds
// sandwich). A nil or empty run still produces con_bound/first_bound/
// exact columns.
//
// Complexity: O(len(n range) * Iterations * (cost of one full exact
// search plus one search per selected strategy)).
func Compare(p Params, run map[order.Strategy]bool) ([]Row, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var rows []Row
	for n := p.NFrom; n <= p.NTo; n += p.NStep {
		row := Row{N: n}
		arms := []arm{
			{order.HeightWidth, &row.HWHeight, &row.HWTime},
			{order.WidthHeight, &row.WHHeight, &row.WHTime},
			{order.AreaHeight, &row.AHHeight, &row.AHTime},
			{order.AreaWidth, &row.AWHeight, &row.AWTime},
			{order.Random, &row.RandomHeight, &row.RandomTime},
			{order.Synthetic4, &row.SynHeight, &row.SynTime},
			{order.Synthetic2, &row.Syn1Height, &row.Syn1Time},
		}

		for iter := 0; iter < p.Iterations; iter++ {
			seed := geninstance.DeriveSeed(p.Seed, uint64(n)*1_000_003+uint64(iter))
			items, err := geninstance.Uniform(seed, n, p.ResLow, p.ResHigh, p.TimeLow, p.TimeHigh)
			if err != nil {
				return nil, err
			}

			row.ConBound += bound.Continuous(items, p.W)
			row.FirstBound += bound.First(items, p.W)

			inst, err := item.NewInstance(p.W, items, false)
			if err != nil {
				return nil, err
			}

			exact, err := solveOne(inst, order.AllPermutations)
			if err != nil {
				return nil, err
			}
			row.ExactHeight += exact.Height
			row.ExactTime += exact.Elapsed

			for _, a := range arms {
				if !run[a.strategy] {
					continue
				}
				res, err := solveOne(inst, a.strategy)
				if err != nil {
					return nil, err
				}
				*a.height += res.Height
				*a.dur += res.Elapsed
			}
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// arm binds a strategy to the Row fields it accumulates into.
type arm struct {
	strategy order.Strategy
	height   *int
	dur      *time.Duration
}

// solveOne runs a single strategy against inst under default options.
//
// Complexity: see spp.Solve.
func solveOne(inst item.Instance, strategy order.Strategy) (spp.Result, error) {
	opts := spp.DefaultOptions()
	opts.Strategy = strategy

	return spp.Solve(inst, opts)
}
