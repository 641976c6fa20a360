package emporium

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in   string
		want Date
	}{
		{"2025-06-01", NewDate(2025, time.June, 1)},
		{"2025-6-1", NewDate(2025, time.June, 1)},
		{" 2025-12-31 ", NewDate(2025, time.December, 31)},
		{"0d", Today()},
		{"", Today()},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := ParseDate("01/06/2025"); err == nil {
		t.Error("ParseDate() should reject non ISO dates")
	}
}

func TestDate_Normalization(t *testing.T) {
	// Out of range day values roll over like time.Date.
	if got, want := NewDate(2025, time.June, 31), NewDate(2025, time.July, 1); got != want {
		t.Errorf("NewDate(2025, June, 31) = %v, want %v", got, want)
	}
	if got, want := NewDate(2025, time.June, 30).Add(1), NewDate(2025, time.July, 1); got != want {
		t.Errorf("Add(1) = %v, want %v", got, want)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	in := NewDate(2025, time.June, 1)
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if got, want := string(data), `"2025-06-01"`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
	var out Date
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if out != in {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}

func TestRange_Contains(t *testing.T) {
	from := NewDate(2025, time.June, 1)
	to := NewDate(2025, time.June, 30)

	testCases := []struct {
		name string
		r    Range
		date Date
		want bool
	}{
		{"inside", NewRange(from, to), NewDate(2025, time.June, 15), true},
		{"on the lower bound", NewRange(from, to), from, true},
		{"on the upper bound", NewRange(from, to), to, true},
		{"before", NewRange(from, to), NewDate(2025, time.May, 31), false},
		{"after", NewRange(from, to), NewDate(2025, time.July, 1), false},
		{"open start", Range{To: to}, NewDate(1999, time.January, 1), true},
		{"open end", Range{From: from}, NewDate(2030, time.January, 1), true},
		{"fully open", Range{}, NewDate(2025, time.June, 15), true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Contains(tc.date); got != tc.want {
				t.Errorf("Contains(%v) = %v, want %v", tc.date, got, tc.want)
			}
		})
	}
}

func TestNewRange_SwapsInvertedBounds(t *testing.T) {
	from := NewDate(2025, time.June, 30)
	to := NewDate(2025, time.June, 1)
	r := NewRange(from, to)
	if r.From.After(r.To) {
		t.Errorf("NewRange did not swap inverted bounds: %v", r)
	}
}

func TestRange_String(t *testing.T) {
	from := NewDate(2025, time.June, 1)
	to := NewDate(2025, time.June, 30)

	testCases := []struct {
		r    Range
		want string
	}{
		{NewRange(from, to), "2025-06-01 to 2025-06-30"},
		{Range{From: from}, "2025-06-01 to today"},
		{Range{To: to}, "start to 2025-06-30"},
		{Range{}, "start to today"},
	}
	for _, tc := range testCases {
		if got := tc.r.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
