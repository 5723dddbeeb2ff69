// Package geninstance generates random strip-packing instances for the
// compare harness. It is ambient, not core (§1: "random instance
// generation" is explicitly out of scope as a core component).
//
// Determinism is grounded on lvlath/tsp/rng.go's rngFromSeed/deriveSeed
// discipline: a fixed Seed produces identical instances across platforms
// and runs; there is no time-based source anywhere in this package.
package geninstance

import (
	"errors"
	"math/rand"

	"github.com/mvstrip/spp/item"
)

// ErrInvalidRange indicates resLow > resHigh or timeLow >= timeHigh.
var ErrInvalidRange = errors.New("geninstance: invalid resource or time range")

// defaultSeed is the fixed "zero" seed used when callers pass Seed==0,
// mirroring the teacher's rngFromSeed policy.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed==0 maps to
// defaultSeed so a zero-value Options never silently means "random".
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed via a SplitMix64-style avalanche mix, so independent
// substreams (one per (n, iteration) pair in the compare harness) never
// correlate. Grounded on lvlath/tsp/rng.go's deriveSeed verbatim.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Uniform restores the original gen_uniform_jobs(num, res_low, res_high,
// time_low, time_high) generator verbatim: num items with width drawn
// uniformly from [resLow, resHigh] (inclusive) and height drawn uniformly
// from [timeLow, timeHigh) (exclusive upper bound — a documented quirk of
// the source, preserved rather than corrected; see DESIGN.md).
//
// num==0 returns an empty, non-nil slice. A drawn width or height below 1
// (possible if resLow or timeLow is below 1, same as the source's
// unchecked precondition) surfaces as item.ErrInvalidDimension from
// item.New rather than from Uniform itself.
//
// Complexity: O(num).
func Uniform(seed int64, num, resLow, resHigh, timeLow, timeHigh int) ([]item.Item, error) {
	if num < 0 {
		return nil, item.ErrNegativeCount
	}
	if resLow > resHigh || timeLow >= timeHigh {
		return nil, ErrInvalidRange
	}

	r := rngFromSeed(seed)
	jobs := make([]item.Item, 0, num)
	for i := 0; i < num; i++ {
		w := resLow + r.Intn(resHigh-resLow+1)
		h := timeLow + r.Intn(timeHigh-timeLow)
		it, err := item.New(w, h)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, it)
	}

	return jobs, nil
}
