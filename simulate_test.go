package cashcast

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/etnz/cashcast/date"
)

var simAsOf = date.New(2025, 6, 1)

func simEvents() []CashEvent {
	return []CashEvent{
		{ID: "salary", Label: "monthly salary", Amount: 3000, On: simAsOf.Add(2)},
		{ID: "rent", Label: "rent", Amount: -950, On: simAsOf.Add(3)},
		{ID: "insurance", Label: "car insurance", Amount: -120, On: simAsOf.Add(20)},
	}
}

func TestSimulate_Shape(t *testing.T) {
	opts := SimulationOptions{RunCount: 7, RunLength: 30}
	report, err := Simulate(simEvents(), simAsOf, opts, "seed")
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	if report.ID == "" {
		t.Error("report has no id")
	}
	if report.Meta.Seed != "seed" {
		t.Errorf("meta.seed = %q, want %q", report.Meta.Seed, "seed")
	}
	if report.Meta.RunCount != 7 || report.Meta.RunLength != 30 {
		t.Errorf("meta = %+v, want runCount 7 runLength 30", report.Meta)
	}
	if len(report.Runs) != 7 {
		t.Fatalf("got %d runs, want 7", len(report.Runs))
	}
	for _, run := range report.Runs {
		if len(run.BalanceSeries) != 30 {
			t.Errorf("run %d: series length %d, want 30", run.RunIndex, len(run.BalanceSeries))
		}
	}
	if len(report.Forecast) != 30 {
		t.Errorf("forecast length %d, want 30", len(report.Forecast))
	}
	if !reflect.DeepEqual(report.CashEvents, simEvents()) {
		t.Error("report does not echo the input events verbatim")
	}
}

func TestSimulate_Defaults(t *testing.T) {
	report, err := Simulate(simEvents(), simAsOf, SimulationOptions{}, "seed")
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	if report.Meta.RunCount != DefaultRunCount {
		t.Errorf("runCount = %d, want default %d", report.Meta.RunCount, DefaultRunCount)
	}
	if report.Meta.RunLength != DefaultRunLength {
		t.Errorf("runLength = %d, want default %d", report.Meta.RunLength, DefaultRunLength)
	}
}

func TestSimulate_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts SimulationOptions
		want string
	}{
		{name: "negative run count", opts: SimulationOptions{RunCount: -1}, want: "run count"},
		{name: "negative run length", opts: SimulationOptions{RunLength: -5}, want: "run length"},
		{name: "negative date variance", opts: SimulationOptions{DateVarianceDays: -1}, want: "date variance"},
		{name: "negative value variance", opts: SimulationOptions{ValueVariancePct: -10}, want: "value variance"},
	}
	for _, tc := range tests {
		_, err := Simulate(simEvents(), simAsOf, tc.opts, "seed")
		if err == nil {
			t.Errorf("%s: expected an error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}

func TestSimulate_ZeroVariance(t *testing.T) {
	opts := SimulationOptions{RunCount: 5, RunLength: 30, DateVarianceDays: 0, ValueVariancePct: 0}
	report, err := Simulate(simEvents(), simAsOf, opts, "seed")
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	// Without jitter all trials are identical and the bands collapse.
	first := report.Runs[0].BalanceSeries
	for _, run := range report.Runs[1:] {
		if !reflect.DeepEqual(run.BalanceSeries, first) {
			t.Fatalf("run %d differs from run 0 with zero variance", run.RunIndex)
		}
	}
	for _, day := range report.Forecast {
		if day.P10 != day.P50 || day.P50 != day.P90 || day.P25 != day.P75 || day.P25 != day.P50 {
			t.Errorf("day %d: bands did not collapse: %+v", day.Day, day)
		}
	}

	// And the single trajectory is the plain deterministic cumulation.
	want := make([]float64, 30)
	for i := range want {
		var b float64
		if i >= 2 {
			b += 3000
		}
		if i >= 3 {
			b -= 950
		}
		if i >= 20 {
			b -= 120
		}
		want[i] = b
	}
	if !reflect.DeepEqual(first, want) {
		t.Errorf("series = %v, want %v", first, want)
	}
}

func TestSimulate_Reproducible(t *testing.T) {
	opts := SimulationOptions{RunCount: 10, RunLength: 40}

	a, err := Simulate(simEvents(), simAsOf, opts, "seed")
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	b, err := Simulate(simEvents(), simAsOf, opts, "seed")
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	if !reflect.DeepEqual(a.Runs, b.Runs) {
		t.Error("same seed did not reproduce identical runs")
	}
	if !reflect.DeepEqual(a.Forecast, b.Forecast) {
		t.Error("same seed did not reproduce an identical forecast")
	}
}

func TestSimulate_FreshSeedWhenUnset(t *testing.T) {
	report, err := Simulate(simEvents(), simAsOf, SimulationOptions{RunCount: 2, RunLength: 5}, "")
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	if report.Meta.Seed == "" {
		t.Error("an unset seed must be replaced by a fresh one and echoed in the meta")
	}
}

func TestSimulate_EmptyEvents(t *testing.T) {
	report, err := Simulate(nil, simAsOf, SimulationOptions{RunCount: 3, RunLength: 10}, "seed")
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	zeros := make([]float64, 10)
	for _, run := range report.Runs {
		if !reflect.DeepEqual(run.BalanceSeries, zeros) {
			t.Errorf("run %d: series = %v, want all zeros", run.RunIndex, run.BalanceSeries)
		}
	}
	if len(report.Forecast) != 10 {
		t.Errorf("forecast length = %d, want 10", len(report.Forecast))
	}
}

func TestSimulate_StartingBalance(t *testing.T) {
	events := []CashEvent{{ID: "e", Label: "e", Amount: 100, On: simAsOf}}
	opts := SimulationOptions{RunCount: 1, RunLength: 4, StartingBalance: 1000}
	report, err := Simulate(events, simAsOf, opts, "seed")
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	want := []float64{1100, 1100, 1100, 1100}
	if !reflect.DeepEqual(report.Runs[0].BalanceSeries, want) {
		t.Errorf("series = %v, want %v", report.Runs[0].BalanceSeries, want)
	}
}

func TestReport_JSONRoundTrip(t *testing.T) {
	opts := SimulationOptions{RunCount: 3, RunLength: 8, StartingBalance: 50}
	report, err := Simulate(simEvents(), simAsOf, opts, "seed")
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	b, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var back SimulationReport
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if back.ID != report.ID || !reflect.DeepEqual(back.Forecast, report.Forecast) ||
		!reflect.DeepEqual(back.Runs, report.Runs) || !reflect.DeepEqual(back.CashEvents, report.CashEvents) {
		t.Error("report did not survive a JSON round trip")
	}
}

func TestReport_Window(t *testing.T) {
	report, err := Simulate(nil, simAsOf, SimulationOptions{RunCount: 1, RunLength: 14}, "seed")
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	w := report.Window()
	if w.From != simAsOf || w.Days() != 14 {
		t.Errorf("Window() = %v, want 14 days from %s", w, simAsOf)
	}
}
