package cashcast

import (
	"sort"
	"time"

	"github.com/etnz/cashcast/date"
	"github.com/google/uuid"
)

// Now is the clock used to timestamp reports. Overridable in tests.
var Now = time.Now

// Simulate runs the full forecast pipeline: generate jittered predictions,
// fold them into per-run balance trajectories, reduce the ensemble into
// percentile bands, and assemble the report.
//
// asOf is day 0 of the forecast; events dated before it contribute nothing.
// An empty seed selects a fresh random one; either way the seed actually
// used is recorded in the report meta, so any report can be replayed.
func Simulate(events []CashEvent, asOf date.Date, opts SimulationOptions, seed string) (*SimulationReport, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if seed == "" {
		seed = uuid.NewString()
	}

	predictions := generatePredictions(events, asOf, opts.RunCount, opts.DateVarianceDays, opts.ValueVariancePct, seed)
	series := aggregateRuns(predictions, asOf, opts.RunCount, opts.RunLength, opts.StartingBalance)
	forecast := reduceForecast(series)

	return &SimulationReport{
		ID: uuid.NewString(),
		Meta: ReportMeta{
			RunCount:  opts.RunCount,
			RunLength: opts.RunLength,
			AsOf:      asOf,
			RunDate:   Now(),
			Seed:      seed,
		},
		CashEvents: events,
		Runs:       assembleRuns(predictions, series),
		Forecast:   forecast,
	}, nil
}

// assembleRuns groups predictions by run index next to their balance series.
// Within a run, predictions are ordered by occurrence date then event id, so
// the report is stable regardless of generation order.
func assembleRuns(predictions []Prediction, series [][]float64) []SimulationRun {
	groups := make([][]Prediction, len(series))
	for _, p := range predictions {
		groups[p.Run] = append(groups[p.Run], p)
	}
	runs := make([]SimulationRun, len(series))
	for i, balance := range series {
		group := groups[i]
		sort.SliceStable(group, func(a, b int) bool {
			if group[a].OccursOn != group[b].OccursOn {
				return group[a].OccursOn.Before(group[b].OccursOn)
			}
			return group[a].EventID < group[b].EventID
		})
		runs[i] = SimulationRun{RunIndex: i, Predictions: group, BalanceSeries: balance}
	}
	return runs
}
