package cashcast

import "fmt"

// Default values applied to any unset SimulationOptions field.
const (
	DefaultRunCount         = 20
	DefaultRunLength        = 60
	DefaultDateVarianceDays = 10
	DefaultValueVariancePct = 20.0
)

// SimulationOptions configures one simulation. The zero value means "use the
// defaults"; unset fields are resolved by the orchestrator before use. An
// options value is plain immutable configuration, it is never mutated by the
// simulation.
type SimulationOptions struct {
	RunCount         int     `json:"runCount"`         // number of Monte Carlo trials
	RunLength        int     `json:"runLength"`        // number of forecast days
	DateVarianceDays int     `json:"dateVarianceDays"` // max days an occurrence may shift
	ValueVariancePct float64 `json:"valueVariancePct"` // max amount deviation, in percent
	StartingBalance  float64 `json:"startingBalance"`  // balance on day 0 before any event
}

// DefaultOptions returns the fully resolved default configuration.
func DefaultOptions() SimulationOptions {
	return SimulationOptions{
		RunCount:         DefaultRunCount,
		RunLength:        DefaultRunLength,
		DateVarianceDays: DefaultDateVarianceDays,
		ValueVariancePct: DefaultValueVariancePct,
	}
}

// withDefaults returns a copy with every unset field replaced by its default.
func (o SimulationOptions) withDefaults() SimulationOptions {
	if o.RunCount == 0 {
		o.RunCount = DefaultRunCount
	}
	if o.RunLength == 0 {
		o.RunLength = DefaultRunLength
	}
	return o
}

// Validate checks the resolved options. The simulation fails fast on a
// degenerate configuration rather than producing empty output.
func (o SimulationOptions) Validate() error {
	if o.RunCount <= 0 {
		return fmt.Errorf("invalid run count %d: must be positive", o.RunCount)
	}
	if o.RunLength <= 0 {
		return fmt.Errorf("invalid run length %d: must be positive", o.RunLength)
	}
	if o.DateVarianceDays < 0 {
		return fmt.Errorf("invalid date variance %d days: must not be negative", o.DateVarianceDays)
	}
	if o.ValueVariancePct < 0 {
		return fmt.Errorf("invalid value variance %g%%: must not be negative", o.ValueVariancePct)
	}
	return nil
}
