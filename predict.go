package cashcast

import "github.com/etnz/cashcast/date"

// Prediction is one jittered occurrence of an event in one run. Predictions
// only live between generation and aggregation, except that the report
// echoes them back per run for inspection.
type Prediction struct {
	Run      int       `json:"run"`      // run index, in [0, runCount)
	EventID  string    `json:"eventId"`  // the event this occurrence derives from
	OccursOn date.Date `json:"occursOn"` // jittered occurrence date
	Value    float64   `json:"value"`    // jittered signed amount
}

// generatePredictions produces one jittered occurrence per future event and
// per run. Events dated before asOf are skipped entirely: a payment that
// already happened (or was missed) is not a forecastable uncertainty.
//
// Each (run, event) pair draws from its own stream keyed by
// (seed, run, event id); the date is drawn first, then the value.
func generatePredictions(events []CashEvent, asOf date.Date, runCount int, dateVarianceDays int, valueVariancePct float64, seed string) []Prediction {
	predictions := make([]Prediction, 0, len(events)*runCount)
	for _, e := range events {
		if e.On.Before(asOf) {
			continue
		}
		for run := 0; run < runCount; run++ {
			rng := seededSource(streamKey(seed, run, e.ID))
			occursOn := jitterDate(rng, e.On, dateVarianceDays)
			value := jitterValue(rng, e.Amount, valueVariancePct)
			predictions = append(predictions, Prediction{
				Run:      run,
				EventID:  e.ID,
				OccursOn: occursOn,
				Value:    value,
			})
		}
	}
	return predictions
}
