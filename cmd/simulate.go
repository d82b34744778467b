package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashcast"
	"github.com/etnz/cashcast/date"
	"github.com/etnz/cashcast/renderer"
	"github.com/google/subcommands"
)

// simFlags are the simulation parameters shared by the commands that run the
// engine (simulate, serve). Flag defaults carry the documented option
// defaults, so an unset flag means the default, and 0 means 0.
type simFlags struct {
	runs          int
	days          int
	dateVariance  int
	valueVariance float64
	balance       float64
	seed          string
}

func (s *simFlags) SetFlags(f *flag.FlagSet) {
	f.IntVar(&s.runs, "runs", cashcast.DefaultRunCount, "Number of Monte Carlo runs")
	f.IntVar(&s.days, "days", cashcast.DefaultRunLength, "Number of forecast days")
	f.IntVar(&s.dateVariance, "date-variance", cashcast.DefaultDateVarianceDays, "Max days an event may shift")
	f.Float64Var(&s.valueVariance, "value-variance", cashcast.DefaultValueVariancePct, "Max amount deviation, in percent")
	f.Float64Var(&s.balance, "balance", 0, "Account balance today, before any event")
	f.StringVar(&s.seed, "seed", "", "Reproducibility seed (random when empty)")
}

func (s *simFlags) options() cashcast.SimulationOptions {
	return cashcast.SimulationOptions{
		RunCount:         s.runs,
		RunLength:        s.days,
		DateVarianceDays: s.dateVariance,
		ValueVariancePct: s.valueVariance,
		StartingBalance:  s.balance,
	}
}

// simulate runs the engine on the app event book as of today.
func (s *simFlags) simulate() (*cashcast.SimulationReport, error) {
	events, err := LoadEventBook()
	if err != nil {
		return nil, err
	}
	report, err := cashcast.Simulate(events, date.Today(), s.options(), s.seed)
	if err != nil {
		return nil, err
	}
	report.Meta.Currency = *currency
	return report, nil
}

type simulateCmd struct {
	simFlags
	archive bool
	detail  bool
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "forecast future balances from the event book" }
func (*simulateCmd) Usage() string {
	return `ccast simulate [-runs <n>] [-days <n>] [-date-variance <days>] [-value-variance <pct>] [-balance <amount>] [-seed <seed>] [-archive] [-v]

  Runs a Monte Carlo ensemble over the event book: each run jitters every
  future event's date and amount, and the ensemble is reduced into daily
  percentile bands. -archive stores the report for later inspection.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	c.simFlags.SetFlags(f)
	f.BoolVar(&c.archive, "archive", false, "Store the report in the report archive")
	f.BoolVar(&c.detail, "v", false, "Also print the per-run outcomes")
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := c.simulate()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	md := renderer.ForecastMarkdown(report)
	if c.detail {
		md += renderer.RunsMarkdown(report)
	}
	printMarkdown(md)

	if c.archive {
		s, err := OpenStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening report archive: %v\n", err)
			return subcommands.ExitFailure
		}
		defer s.Close()
		if err := s.Save(report); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Archived report %s\n", report.ID)
	}
	return subcommands.ExitSuccess
}
