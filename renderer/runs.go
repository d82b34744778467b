package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/cashcast"
)

// RunsMarkdown renders the per-run outcomes: how many occurrences each trial
// drew and where its trajectory ends.
func RunsMarkdown(r *cashcast.SimulationReport) string {
	cur := r.Meta.Currency
	var b strings.Builder
	fmt.Fprintf(&b, "## Runs\n\n")
	fmt.Fprintln(&b, "| Run | Predictions | Final Balance |")
	fmt.Fprintln(&b, "| ---: | ---: | ---: |")
	for _, run := range r.Runs {
		final := 0.0
		if n := len(run.BalanceSeries); n > 0 {
			final = run.BalanceSeries[n-1]
		}
		fmt.Fprintf(&b, "| %d | %d | %s |\n", run.RunIndex, len(run.Predictions), amount(final, cur))
	}
	fmt.Fprintln(&b)
	return b.String()
}
