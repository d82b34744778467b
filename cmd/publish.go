package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/cashcast"
	"github.com/etnz/cashcast/renderer"
	"github.com/google/subcommands"
)

type publishCmd struct {
	id        string
	outputDir string
}

func (*publishCmd) Name() string     { return "publish" }
func (*publishCmd) Synopsis() string { return "generate the HTML page for a forecast report" }
func (*publishCmd) Usage() string {
	return `ccast publish [-id <report>] [-o <dir>]

  Renders an archived report (the latest by default) as a standalone HTML
  page with the forecast band chart, and saves it under the output
  directory.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Report id (defaults to the latest report)")
	f.StringVar(&c.outputDir, "o", "reports", "Root directory for the generated pages")
}

func (c *publishCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening report archive: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	var report *cashcast.SimulationReport
	if c.id == "" {
		report, err = s.Latest()
	} else {
		report, err = s.Get(c.id)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	page, err := renderer.HTMLPage(report)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output directory: %v\n", err)
		return subcommands.ExitFailure
	}
	filename := filepath.Join(c.outputDir, fmt.Sprintf("%s_%s.html", report.Meta.AsOf, report.ID))
	if err := os.WriteFile(filename, []byte(page), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write report page: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Published %s\n", filename)
	return subcommands.ExitSuccess
}
