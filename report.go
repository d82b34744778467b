package cashcast

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/etnz/cashcast/date"
)

// ReportMeta carries the parameters and context a report was produced with,
// enough to reproduce it exactly (same events, same meta, same report).
type ReportMeta struct {
	RunCount  int       `json:"runCount"`
	RunLength int       `json:"runLength"`
	AsOf      date.Date `json:"asOf"`    // day 0 of the forecast
	RunDate   time.Time `json:"runDate"` // when the simulation was captured
	Seed      string    `json:"seed"`    // reproducibility key actually used
	Currency  string    `json:"currency,omitempty"`
}

// SimulationRun is one full Monte Carlo trial: the jittered occurrences it
// drew and the balance trajectory they produced.
type SimulationRun struct {
	RunIndex      int          `json:"runIndex"`
	Predictions   []Prediction `json:"predictions"`
	BalanceSeries []float64    `json:"balanceSeries"`
}

// SimulationReport is the complete outcome of one simulation. It is
// assembled once by Simulate and immutable afterwards; persistence and
// rendering only ever read it.
type SimulationReport struct {
	ID         string          `json:"id"`
	Meta       ReportMeta      `json:"meta"`
	CashEvents []CashEvent     `json:"cashEvents"` // the input, echoed verbatim
	Runs       []SimulationRun `json:"runs"`
	Forecast   []PercentileDay `json:"forecast"`
}

// Window returns the forecast window covered by the report.
func (r *SimulationReport) Window() date.Range {
	return date.Window(r.Meta.AsOf, r.Meta.RunLength)
}

// EncodeReport writes the report as an indented JSON document.
func EncodeReport(w io.Writer, r *SimulationReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("cannot encode report %q: %w", r.ID, err)
	}
	return nil
}

// DecodeReport reads a report previously written by EncodeReport.
func DecodeReport(rd io.Reader) (*SimulationReport, error) {
	var r SimulationReport
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("cannot decode report: %w", err)
	}
	return &r, nil
}
