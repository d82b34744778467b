package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/cashcast"
)

// EventsMarkdown renders an event book as a markdown table.
func EventsMarkdown(events []cashcast.CashEvent, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Cash Events\n\n")
	if len(events) == 0 {
		fmt.Fprintln(&b, "The event book is empty.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | ID | Label | Amount |")
	fmt.Fprintln(&b, "| :--- | :--- | :--- | ---: |")
	var total float64
	for _, e := range events {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", e.On, e.ID, e.Label, signedAmount(e.Amount, currency))
		total += e.Amount
	}
	fmt.Fprintf(&b, "| | | **Net** | **%s** |\n\n", signedAmount(total, currency))
	return b.String()
}

func signedAmount(v float64, currency string) string {
	if currency == "" {
		return fmt.Sprintf("%+.2f", v)
	}
	return cashcast.M(v, currency).SignedString()
}
