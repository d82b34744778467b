package cashcast

import "github.com/etnz/cashcast/date"

// aggregateRuns folds predictions into one cumulative balance series per run.
//
// For each run, every prediction is bucketed at its whole-day offset from
// asOf; predictions falling outside the forecast window [0, runLength) are
// discarded, same-day predictions accumulate by summation. The per-day
// deltas are then cumulated into a balance series of exactly runLength
// values, with startingBalance applied once at day 0. Runs without any
// prediction still produce a (flat) series.
func aggregateRuns(predictions []Prediction, asOf date.Date, runCount, runLength int, startingBalance float64) [][]float64 {
	deltas := make([][]float64, runCount)
	for run := range deltas {
		deltas[run] = make([]float64, runLength)
	}

	for _, p := range predictions {
		offset := p.OccursOn.Sub(asOf)
		if offset < 0 || offset >= runLength {
			continue
		}
		deltas[p.Run][offset] += p.Value
	}

	series := make([][]float64, runCount)
	for run, delta := range deltas {
		balance := make([]float64, runLength)
		prev := startingBalance
		for i, d := range delta {
			prev += d
			balance[i] = prev
		}
		series[run] = balance
	}
	return series
}
