package cashcast

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// The event book is persisted as a JSONL file, one event per line, in a way
// that is human-readable and git-friendly. Decoding validates each line so
// the simulation can assume a well-formed book.

// DecodeEvents reads an event book from a stream of JSONL data. It returns
// an error on the first malformed, invalid, or duplicated event.
func DecodeEvents(r io.Reader) ([]CashEvent, error) {
	var events []CashEvent
	seen := make(map[string]int)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue // Skip empty lines
		}

		var e CashEvent
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", line, string(raw), err)
		}
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("invalid event on line %d: %w", line, err)
		}
		if first, ok := seen[e.ID]; ok {
			return nil, fmt.Errorf("duplicate event id %q on line %d (first seen on line %d)", e.ID, line, first)
		}
		seen[e.ID] = line
		events = append(events, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read event book: %w", err)
	}
	return events, nil
}

// EncodeEvent appends a single event as one JSONL line.
func EncodeEvent(w io.Writer, e CashEvent) error {
	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("cannot encode event %q: %w", e.ID, err)
	}
	if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
		return fmt.Errorf("cannot write event %q: %w", e.ID, err)
	}
	return nil
}

// EncodeEvents writes the whole book in canonical form: events sorted by
// date then id, one per line, fields in a fixed order.
func EncodeEvents(w io.Writer, events []CashEvent) error {
	sorted := make([]CashEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].On != sorted[b].On {
			return sorted[a].On.Before(sorted[b].On)
		}
		return sorted[a].ID < sorted[b].ID
	})
	for _, e := range sorted {
		if err := EncodeEvent(w, e); err != nil {
			return err
		}
	}
	return nil
}
