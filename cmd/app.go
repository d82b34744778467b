// Package cmd implements the CLI application to manage and forecast a book
// of cash events.
package cmd

import (
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/etnz/cashcast"
	"github.com/etnz/cashcast/store"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "events")
	c.Register(&eventsCmd{}, "events")
	c.Register(&fmtCmd{}, "events")

	c.Register(&simulateCmd{}, "forecast")
	c.Register(&showCmd{}, "forecast")
	c.Register(&reportsCmd{}, "forecast")
	c.Register(&publishCmd{}, "forecast")
	c.Register(&serveCmd{}, "forecast")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var eventsFile = flag.String("events-file", "events.jsonl", "Path to the event book file (JSONL format)")
var reportsDB = flag.String("reports-db", "reports.db", "Path to the report archive (SQLite database)")
var currency = flag.String("currency", "EUR", "Currency used to format amounts in reports")

// LoadEventBook loads the app event book. A missing book is not an error,
// it is simply empty.
func LoadEventBook() ([]cashcast.CashEvent, error) {
	events, err := cashcast.LoadEventBook(*eventsFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, event book does not exist, using an empty book instead")
		return nil, nil
	}
	return events, err
}

// OpenStore opens the app report archive.
func OpenStore() (*store.Store, error) {
	return store.Open(*reportsDB)
}
