package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/cashcast"
	"github.com/etnz/cashcast/date"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

type addCmd struct {
	date   string
	id     string
	label  string
	amount string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an expected cash event in the book" }
func (*addCmd) Usage() string {
	return `ccast add -l <label> -a <amount> [-d <date>] [-i <id>]

  Records an expected income (positive amount) or expense (negative amount)
  in the event book. The id defaults to a generated one.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Expected occurrence date (YYYY-MM-DD)")
	f.StringVar(&c.id, "i", "", "Unique event id (generated when empty)")
	f.StringVar(&c.label, "l", "", "Human readable description")
	f.StringVar(&c.amount, "a", "", "Signed amount, negative for an expense")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.label == "" || c.amount == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := cashcast.ParseMoney(c.amount, *currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}
	id := c.id
	if id == "" {
		id = strings.Split(uuid.NewString(), "-")[0]
	}

	e := cashcast.CashEvent{ID: id, Label: c.label, Amount: amount.AsFloat(), On: on}
	if err := cashcast.AppendEvent(*eventsFile, e); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to event book %q: %v\n", *eventsFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended event %q to %s\n", id, *eventsFile)
	return subcommands.ExitSuccess
}
