package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type reportsCmd struct {
	limit int
}

func (*reportsCmd) Name() string     { return "reports" }
func (*reportsCmd) Synopsis() string { return "list the archived forecast reports" }
func (*reportsCmd) Usage() string {
	return `ccast reports [-n <limit>]

  Lists the archived reports, most recent first.
`
}

func (c *reportsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 0, "Only list the n most recent reports (0 lists all)")
}

func (c *reportsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening report archive: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	infos, err := s.List(c.limit)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Archived Reports\n\n")
	if len(infos) == 0 {
		fmt.Fprintln(&b, "The archive is empty.")
	} else {
		fmt.Fprintln(&b, "| Captured | As Of | Runs | Days | ID |")
		fmt.Fprintln(&b, "| :--- | :--- | ---: | ---: | :--- |")
		for _, info := range infos {
			fmt.Fprintf(&b, "| %s | %s | %d | %d | %s |\n",
				info.RunDate.Format("2006-01-02 15:04:05"), info.AsOf, info.RunCount, info.RunLength, info.ID)
		}
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
