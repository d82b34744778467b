package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashcast"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the event book into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `ccast fmt

  Validates and formats the event book. This command reads all events,
  validates them, sorts them by date, and writes them back in a canonical
  JSONL format.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	events, err := cashcast.LoadEventBook(*eventsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load event book: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := cashcast.SaveEventBook(*eventsFile, events); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving event book %q: %v\n", *eventsFile, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %d events in %s.\n", len(events), *eventsFile)
	return subcommands.ExitSuccess
}
