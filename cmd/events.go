package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/etnz/cashcast/date"
	"github.com/etnz/cashcast/renderer"
	"github.com/google/subcommands"
)

type eventsCmd struct {
	from   string
	future bool
}

func (*eventsCmd) Name() string     { return "events" }
func (*eventsCmd) Synopsis() string { return "list the cash events in the book" }
func (*eventsCmd) Usage() string {
	return `ccast events [-s <start_date>] [-future]

  Lists the events in the book, sorted by date. -future keeps only events
  from today on, the ones a forecast would use.
`
}

func (c *eventsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "s", "", "Only list events on or after this date.")
	f.BoolVar(&c.future, "future", false, "Only list events from today on.")
}

func (c *eventsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	events, err := LoadEventBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	from := date.Date{}
	if c.future {
		from = date.Today()
	}
	if c.from != "" {
		from, err = date.Parse(c.from)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	filtered := events[:0:0]
	for _, e := range events {
		if !from.IsZero() && e.On.Before(from) {
			continue
		}
		filtered = append(filtered, e)
	}
	sort.SliceStable(filtered, func(a, b int) bool { return filtered[a].On.Before(filtered[b].On) })

	printMarkdown(renderer.EventsMarkdown(filtered, *currency))
	return subcommands.ExitSuccess
}
