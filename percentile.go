package cashcast

import (
	"math"
	"sort"
)

// PercentileDay summarizes the cross-run balance distribution for one
// forecast day. By construction p10 <= p25 <= p50 <= p75 <= p90: all five
// are read off the same sorted sample.
type PercentileDay struct {
	Day int     `json:"day"`
	P10 float64 `json:"p10"`
	P25 float64 `json:"p25"`
	P50 float64 `json:"p50"`
	P75 float64 `json:"p75"`
	P90 float64 `json:"p90"`
}

// reduceForecast computes, for each day, the five percentile bands of the
// balance across all runs. The forecast length is taken from the first run;
// an empty ensemble reduces to an empty forecast.
func reduceForecast(runs [][]float64) []PercentileDay {
	if len(runs) == 0 {
		return nil
	}
	days := len(runs[0])
	forecast := make([]PercentileDay, 0, days)
	sample := make([]float64, 0, len(runs))
	for day := 0; day < days; day++ {
		sample = sample[:0]
		for _, run := range runs {
			// Runs are not assumed to all reach the first run's length.
			if day < len(run) {
				sample = append(sample, run[day])
			}
		}
		sort.Float64s(sample)
		forecast = append(forecast, PercentileDay{
			Day: day,
			P10: percentile(sample, 10),
			P25: percentile(sample, 25),
			P50: percentile(sample, 50),
			P75: percentile(sample, 75),
			P90: percentile(sample, 90),
		})
	}
	return forecast
}

// percentile returns the p-th percentile of a sorted sample, interpolating
// linearly between the two nearest order statistics.
func percentile(sorted []float64, p float64) float64 {
	idx := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi {
		return sorted[lo]
	}
	w := idx - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
