package cashcast

import (
	"fmt"
	"os"
)

// LoadEventBook reads and validates the event book at filename. A missing
// file is reported as-is (fs.ErrNotExist wrapped), callers decide whether an
// empty book is acceptable.
func LoadEventBook(filename string) ([]CashEvent, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open event book %q: %w", filename, err)
	}
	defer f.Close()

	events, err := DecodeEvents(f)
	if err != nil {
		return nil, fmt.Errorf("cannot load event book %q: %w", filename, err)
	}
	return events, nil
}

// SaveEventBook writes the book to filename in canonical form, replacing any
// previous content.
func SaveEventBook(filename string, events []CashEvent) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create event book %q: %w", filename, err)
	}
	defer f.Close()

	if err := EncodeEvents(f, events); err != nil {
		return fmt.Errorf("cannot save event book %q: %w", filename, err)
	}
	return nil
}

// AppendEvent appends a single validated event to the book file, creating it
// if needed. Appending keeps a hand-edited book's layout untouched; `ccast
// fmt` canonicalizes it on demand.
func AppendEvent(filename string, e CashEvent) error {
	if err := e.Validate(); err != nil {
		return err
	}
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("cannot open event book %q: %w", filename, err)
	}
	defer f.Close()

	return EncodeEvent(f, e)
}
