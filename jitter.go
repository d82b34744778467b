package cashcast

import (
	"math"
	"math/rand"

	"github.com/etnz/cashcast/date"
)

// jitterValue perturbs v by a uniform factor in [-maxVariancePct%, +maxVariancePct%).
// The perturbation is proportional and symmetric around v, also for negative
// values. With a zero variance it returns v exactly.
func jitterValue(rng *rand.Rand, v, maxVariancePct float64) float64 {
	spread := maxVariancePct / 100
	factor := 2*spread*rng.Float64() - spread
	return v + v*factor
}

// jitterDate shifts d by a whole number of days drawn uniformly from
// [-maxDayVariance, +maxDayVariance], rounding to the nearest day. With a
// zero variance it returns d unchanged.
func jitterDate(rng *rand.Rand, d date.Date, maxDayVariance int) date.Date {
	v := float64(maxDayVariance)
	delta := int(math.Round(2*v*rng.Float64() - v))
	return d.Add(delta)
}
