package cashcast

import (
	"fmt"

	"github.com/etnz/cashcast/date"
)

// CashEvent is a single expected income or expense: a signed amount that is
// expected to hit the account on a given day. Events are immutable once
// recorded in the book; the simulation reads them and never mutates them.
type CashEvent struct {
	ID     string    `json:"id"`     // unique within a book
	Label  string    `json:"label"`  // human readable description
	Amount float64   `json:"amount"` // signed, negative for expenses
	On     date.Date `json:"on"`     // expected occurrence date
}

// Validate checks the event for correctness. It is applied when events enter
// the book (add command, decoding); the simulation assumes validated events.
func (e CashEvent) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("cash event has no id")
	}
	if e.Label == "" {
		return fmt.Errorf("cash event %q has no label", e.ID)
	}
	if e.On.IsZero() {
		return fmt.Errorf("cash event %q has no date", e.ID)
	}
	return nil
}

// MarshalJSON implements json.Marshaler with a canonical field order, so
// that event book lines stay diff-friendly.
func (e CashEvent) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("label", e.Label)
	w.Append("amount", e.Amount)
	w.Append("on", e.On)
	return w.MarshalJSON()
}
