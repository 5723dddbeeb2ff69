// Package resultsfile persists bench.Row values in the exact §6 schema:
// a header line followed by one whitespace-separated line per n, heights
// as integers and times as seconds rounded to 5 decimals, zero for any
// field the caller's strategy subset didn't compute.
//
// Grounded on the distilled schema directly. No teacher component emits
// this exact column layout; the "round before persisting" discipline
// mirrors lvlath/tsp's round1e9 stable-numeric-policy comment, applied
// here at 5 decimals to a wall-clock time.Duration instead of 1e-9 to a
// tour cost (strip packing itself is integer arithmetic throughout).
package resultsfile

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mvstrip/spp/internal/bench"
)

// Header is the exact §6 column line.
const Header = "n con_bound first_bound exact_h exact_t HW_h HW_t WH_h WH_t AH_h AH_t AW_h AW_t random_h random_t syn_h syn_t syn1_h syn1_t"

// Write emits Header followed by one line per row, in the order given.
//
// Complexity: O(len(rows)).
func Write(w io.Writer, rows []bench.Row) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, Header); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(bw, "%d %d %d %d %.5f %d %.5f %d %.5f %d %.5f %d %.5f %d %.5f %d %.5f %d %.5f\n",
			r.N,
			r.ConBound,
			r.FirstBound,
			r.ExactHeight, r.ExactTime.Seconds(),
			r.HWHeight, r.HWTime.Seconds(),
			r.WHHeight, r.WHTime.Seconds(),
			r.AHHeight, r.AHTime.Seconds(),
			r.AWHeight, r.AWTime.Seconds(),
			r.RandomHeight, r.RandomTime.Seconds(),
			r.SynHeight, r.SynTime.Seconds(),
			r.Syn1Height, r.Syn1Time.Seconds(),
		); err != nil {
			return err
		}
	}

	return bw.Flush()
}
