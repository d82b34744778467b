package date

import "fmt"

// Range represents a half-open range of dates [From, To): From is included,
// To is not. Forecast windows are ranges starting on the reference day.
type Range struct{ From, To Date }

// Window returns the range covering days days starting on from.
func Window(from Date, days int) Range { return Range{From: from, To: from.Add(days)} }

// Contains reports whether d falls inside the range.
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && d.Before(r.To) }

// Days returns the number of days covered by the range.
func (r Range) Days() int { return r.To.Sub(r.From) }

// String formats the range in a compact identifier form.
func (r Range) String() string { return fmt.Sprintf("%s_%s", r.From, r.To.Add(-1)) }
