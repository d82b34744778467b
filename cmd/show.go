package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/cashcast"
	"github.com/etnz/cashcast/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	id     string
	asJSON bool
	path   string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display an archived forecast report" }
func (*showCmd) Usage() string {
	return `ccast show [-id <report>] [-json] [-path <jsonpath>]

  Displays an archived report, the latest one by default. -json dumps the
  raw report document; -path extracts a value from it, e.g.
  '$.forecast[0].p50' or '$.meta.seed'.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Report id (defaults to the latest report)")
	f.BoolVar(&c.asJSON, "json", false, "Dump the raw report JSON document")
	f.StringVar(&c.path, "path", "", "JSONPath expression to extract from the report")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	switch {
	case c.path != "":
		return extractPath(report, c.path)
	case c.asJSON:
		if err := cashcast.EncodeReport(os.Stdout, report); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	default:
		printMarkdown(renderer.ForecastMarkdown(report) + renderer.RunsMarkdown(report))
	}
	return subcommands.ExitSuccess
}

// extractPath evaluates a jsonpath expression against the report document.
func extractPath(report *cashcast.SimulationReport, path string) subcommands.ExitStatus {
	raw, err := json.Marshal(report)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	val, err := jsonpath.Get(path, doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	out, err := json.Marshal(val)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
