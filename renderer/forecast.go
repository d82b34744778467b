// Package renderer turns simulation reports into markdown, SVG and HTML.
// Markdown is the primary surface: the CLI pretty-prints it, and the publish
// command converts it to HTML around the chart.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/cashcast"
)

// amount formats a balance value in the report's currency, or as a plain
// number when the report carries no currency.
func amount(v float64, currency string) string {
	if currency == "" {
		return fmt.Sprintf("%.2f", v)
	}
	return cashcast.M(v, currency).String()
}

// ForecastMarkdown renders the percentile forecast as a markdown document.
func ForecastMarkdown(r *cashcast.SimulationReport) string {
	var b strings.Builder
	renderForecastHeader(&b, r)
	renderForecastTable(&b, r)
	return b.String()
}

func renderForecastHeader(w io.Writer, r *cashcast.SimulationReport) {
	fmt.Fprintf(w, "# Balance Forecast from %s\n\n", r.Meta.AsOf)
	fmt.Fprintf(w, "*%d runs over %d days, captured %s (report %s, seed %q)*\n\n",
		r.Meta.RunCount, r.Meta.RunLength, r.Meta.RunDate.Format("2006-01-02 15:04:05"), r.ID, r.Meta.Seed)
}

func renderForecastTable(w io.Writer, r *cashcast.SimulationReport) {
	cur := r.Meta.Currency
	fmt.Fprintln(w, "| Day | Date | P10 | P25 | P50 | P75 | P90 |")
	fmt.Fprintln(w, "| ---: | :--- | ---: | ---: | ---: | ---: | ---: |")
	for _, day := range r.Forecast {
		fmt.Fprintf(w, "| %d | %s | %s | %s | %s | %s | %s |\n",
			day.Day,
			r.Meta.AsOf.Add(day.Day),
			amount(day.P10, cur),
			amount(day.P25, cur),
			amount(day.P50, cur),
			amount(day.P75, cur),
			amount(day.P90, cur),
		)
	}
	fmt.Fprintln(w)
}
