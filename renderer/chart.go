package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/cashcast"
)

// Chart geometry. The SVG scales in the browser, these only fix proportions.
const (
	chartWidth   = 960
	chartHeight  = 420
	chartPadding = 50
)

// ChartSVG renders the forecast as a standalone SVG band chart: the p10-p90
// envelope, the p25-p75 envelope, and the median line.
func ChartSVG(r *cashcast.SimulationReport) string {
	forecast := r.Forecast
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" font-family="sans-serif" font-size="12">`+"\n",
		chartWidth, chartHeight)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="white"/>`+"\n", chartWidth, chartHeight)

	if len(forecast) > 0 {
		lo, hi := forecast[0].P10, forecast[0].P90
		for _, day := range forecast {
			if day.P10 < lo {
				lo = day.P10
			}
			if day.P90 > hi {
				hi = day.P90
			}
		}
		// Always show the zero line, and never collapse the value axis.
		if lo > 0 {
			lo = 0
		}
		if hi < 0 {
			hi = 0
		}
		if hi == lo {
			hi = lo + 1
		}

		x := func(day int) float64 {
			if len(forecast) == 1 {
				return chartWidth / 2
			}
			return chartPadding + float64(day)/float64(len(forecast)-1)*(chartWidth-2*chartPadding)
		}
		y := func(v float64) float64 {
			return chartHeight - chartPadding - (v-lo)/(hi-lo)*(chartHeight-2*chartPadding)
		}

		band := func(upper, lower func(cashcast.PercentileDay) float64) string {
			var pts []string
			for _, day := range forecast {
				pts = append(pts, fmt.Sprintf("%.1f,%.1f", x(day.Day), y(upper(day))))
			}
			for i := len(forecast) - 1; i >= 0; i-- {
				day := forecast[i]
				pts = append(pts, fmt.Sprintf("%.1f,%.1f", x(day.Day), y(lower(day))))
			}
			return strings.Join(pts, " ")
		}

		// p10-p90 envelope, then the tighter p25-p75 envelope on top.
		fmt.Fprintf(&b, `<polygon points="%s" fill="#74a9cf" fill-opacity="0.35"/>`+"\n",
			band(func(d cashcast.PercentileDay) float64 { return d.P90 },
				func(d cashcast.PercentileDay) float64 { return d.P10 }))
		fmt.Fprintf(&b, `<polygon points="%s" fill="#2b8cbe" fill-opacity="0.35"/>`+"\n",
			band(func(d cashcast.PercentileDay) float64 { return d.P75 },
				func(d cashcast.PercentileDay) float64 { return d.P25 }))

		var median []string
		for _, day := range forecast {
			median = append(median, fmt.Sprintf("%.1f,%.1f", x(day.Day), y(day.P50)))
		}
		fmt.Fprintf(&b, `<polyline points="%s" fill="none" stroke="#045a8d" stroke-width="2"/>`+"\n",
			strings.Join(median, " "))

		// Zero line and axis labels.
		fmt.Fprintf(&b, `<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="#999" stroke-dasharray="4 3"/>`+"\n",
			chartPadding, y(0), chartWidth-chartPadding, y(0))
		fmt.Fprintf(&b, `<text x="%d" y="%.1f" text-anchor="end">%s</text>`+"\n",
			chartPadding-6, y(0)+4, amount(0, r.Meta.Currency))
		fmt.Fprintf(&b, `<text x="%d" y="%.1f" text-anchor="end">%s</text>`+"\n",
			chartPadding-6, y(hi)+4, amount(hi, r.Meta.Currency))
		fmt.Fprintf(&b, `<text x="%d" y="%.1f" text-anchor="end">%s</text>`+"\n",
			chartPadding-6, y(lo)+4, amount(lo, r.Meta.Currency))
		fmt.Fprintf(&b, `<text x="%.1f" y="%d" text-anchor="start">%s</text>`+"\n",
			x(0), chartHeight-chartPadding+20, r.Meta.AsOf)
		fmt.Fprintf(&b, `<text x="%.1f" y="%d" text-anchor="end">%s</text>`+"\n",
			x(len(forecast)-1), chartHeight-chartPadding+20, r.Meta.AsOf.Add(len(forecast)-1))
	}

	fmt.Fprintln(&b, `</svg>`)
	return b.String()
}
