package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNew_Normalizes(t *testing.T) {
	// Day 32 of January is February 1st.
	got := New(2025, time.January, 32)
	if want := New(2025, time.February, 1); got != want {
		t.Errorf("New(2025, 1, 32) = %s, want %s", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-07-01", want: New(2025, 7, 1)},
		{in: "2025-7-1", want: New(2025, 7, 1)},
		{in: "not-a-date", wantErr: true},
		{in: "2025-13-01", wantErr: true},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("Parse(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		name string
		d, x Date
		want int
	}{
		{name: "same day", d: New(2025, 3, 10), x: New(2025, 3, 10), want: 0},
		{name: "next day", d: New(2025, 3, 11), x: New(2025, 3, 10), want: 1},
		{name: "previous day", d: New(2025, 3, 9), x: New(2025, 3, 10), want: -1},
		{name: "across month boundary", d: New(2025, 4, 2), x: New(2025, 3, 30), want: 3},
		{name: "across leap day", d: New(2024, 3, 1), x: New(2024, 2, 28), want: 2},
		{name: "across a year", d: New(2026, 1, 1), x: New(2025, 1, 1), want: 365},
	}
	for _, tc := range tests {
		if got := tc.d.Sub(tc.x); got != tc.want {
			t.Errorf("%s: %s.Sub(%s) = %d, want %d", tc.name, tc.d, tc.x, got, tc.want)
		}
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	d := New(2025, 12, 28)
	for _, i := range []int{-400, -31, -1, 0, 1, 5, 60, 366} {
		if got := d.Add(i).Sub(d); got != i {
			t.Errorf("Add(%d).Sub() = %d", i, got)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2025, 8, 24)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `"2025-08-24"`; string(b) != want {
		t.Errorf("Marshal() = %s, want %s", b, want)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}

func TestWindow(t *testing.T) {
	from := New(2025, 6, 1)
	w := Window(from, 60)

	if got := w.Days(); got != 60 {
		t.Errorf("Days() = %d, want 60", got)
	}
	if !w.Contains(from) {
		t.Error("window must contain its first day")
	}
	if !w.Contains(from.Add(59)) {
		t.Error("window must contain its last day")
	}
	if w.Contains(from.Add(60)) {
		t.Error("window must not contain the day past its end")
	}
	if w.Contains(from.Add(-1)) {
		t.Error("window must not contain the day before its start")
	}
}
