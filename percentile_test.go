package cashcast

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool { return math.Abs(a-b) < eps }

func TestReduceForecast_Interpolation(t *testing.T) {
	runs := [][]float64{
		{100, 150, 200},
		{200, 250, 300},
		{300, 350, 400},
		{400, 450, 500},
		{500, 550, 600},
	}

	forecast := reduceForecast(runs)

	if len(forecast) != 3 {
		t.Fatalf("got %d days, want 3", len(forecast))
	}

	// Day 0 sample is [100 200 300 400 500]: the median falls on an order
	// statistic, p10 and p90 interpolate between two.
	day0 := forecast[0]
	if day0.Day != 0 {
		t.Errorf("day = %d, want 0", day0.Day)
	}
	if !almostEqual(day0.P50, 300) {
		t.Errorf("p50 = %g, want 300", day0.P50)
	}
	if !almostEqual(day0.P10, 140) {
		t.Errorf("p10 = %g, want 140", day0.P10)
	}
	if !almostEqual(day0.P90, 460) {
		t.Errorf("p90 = %g, want 460", day0.P90)
	}
	if !almostEqual(day0.P25, 200) {
		t.Errorf("p25 = %g, want 200", day0.P25)
	}
	if !almostEqual(day0.P75, 400) {
		t.Errorf("p75 = %g, want 400", day0.P75)
	}

	// Later days shift the whole sample by a constant, so do the bands.
	if !almostEqual(forecast[1].P50, 350) || !almostEqual(forecast[2].P50, 400) {
		t.Errorf("p50 over days = [%g %g %g], want [300 350 400]",
			forecast[0].P50, forecast[1].P50, forecast[2].P50)
	}
}

func TestReduceForecast_SingleRun(t *testing.T) {
	forecast := reduceForecast([][]float64{{42, 43}})

	for _, day := range forecast {
		for _, p := range []float64{day.P10, day.P25, day.P50, day.P75, day.P90} {
			if want := forecast[day.Day].P50; p != want {
				t.Errorf("day %d: with a single run all percentiles must equal the value, got %g", day.Day, p)
			}
		}
	}
	if forecast[0].P50 != 42 || forecast[1].P50 != 43 {
		t.Errorf("p50 = [%g %g], want [42 43]", forecast[0].P50, forecast[1].P50)
	}
}

func TestReduceForecast_Empty(t *testing.T) {
	if got := reduceForecast(nil); len(got) != 0 {
		t.Errorf("reduceForecast(nil) = %v, want empty", got)
	}
}

func TestReduceForecast_BandsAreOrdered(t *testing.T) {
	// An arbitrary unsorted ensemble: bands must still come out ordered.
	runs := [][]float64{
		{37, -12, 83}, {-5, 41, 17}, {99, 3, -61}, {12, 12, 12},
		{-44, 70, 25}, {8, -9, 55}, {61, 33, -2},
	}

	for _, day := range reduceForecast(runs) {
		if !(day.P10 <= day.P25 && day.P25 <= day.P50 && day.P50 <= day.P75 && day.P75 <= day.P90) {
			t.Errorf("day %d: bands out of order: %+v", day.Day, day)
		}
	}
}

func TestReduceForecast_RaggedRuns(t *testing.T) {
	// The forecast length follows the first run; a shorter run simply drops
	// out of the sample on the days it does not reach.
	runs := [][]float64{
		{100, 200, 300},
		{400, 500},
	}

	forecast := reduceForecast(runs)

	if len(forecast) != 3 {
		t.Fatalf("got %d days, want 3", len(forecast))
	}
	if !almostEqual(forecast[0].P50, 250) || !almostEqual(forecast[1].P50, 350) {
		t.Errorf("p50 = [%g %g], want [250 350]", forecast[0].P50, forecast[1].P50)
	}
	// Day 2 only has the first run left.
	if forecast[2].P10 != 300 || forecast[2].P90 != 300 {
		t.Errorf("day 2 bands = %+v, want all 300", forecast[2])
	}
}

func TestPercentile(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}
	tests := []struct {
		p    float64
		want float64
	}{
		{p: 0, want: 10},
		{p: 100, want: 40},
		{p: 50, want: 25},  // idx 1.5, halfway between 20 and 30
		{p: 25, want: 17.5}, // idx 0.75
		{p: 90, want: 37},  // idx 2.7
	}
	for _, tc := range tests {
		if got := percentile(sorted, tc.p); !almostEqual(got, tc.want) {
			t.Errorf("percentile(%v, %g) = %g, want %g", sorted, tc.p, got, tc.want)
		}
	}
}
