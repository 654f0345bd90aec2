package berrytally

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{" 2025-07-31 ", NewDate(2025, time.July, 31), false},
		{"invalid-date", Date{}, true},
		{"", Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDateArithmetic(t *testing.T) {
	d := NewDate(2025, time.July, 31)
	if got := d.Add(1); got != NewDate(2025, time.August, 1) {
		t.Errorf("Add(1) = %v", got)
	}
	if got := d.Sub(NewDate(2025, time.July, 1)); got != 30 {
		t.Errorf("Sub = %d, want 30", got)
	}
	if got := NewDate(2025, time.January, 1).Sub(NewDate(2024, time.December, 31)); got != 1 {
		t.Errorf("Sub across year = %d, want 1", got)
	}
}

func TestDays(t *testing.T) {
	from := NewDate(2025, time.July, 30)
	days := from.Days(NewDate(2025, time.August, 2))
	want := []Date{
		NewDate(2025, time.July, 30),
		NewDate(2025, time.July, 31),
		NewDate(2025, time.August, 1),
		NewDate(2025, time.August, 2),
	}
	if len(days) != len(want) {
		t.Fatalf("Days returned %d entries, want %d", len(days), len(want))
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("Days[%d] = %v, want %v", i, days[i], want[i])
		}
	}
	if got := from.Days(from); len(got) != 1 || got[0] != from {
		t.Errorf("single-day range = %v", got)
	}
	if got := from.Days(from.Add(-1)); got != nil {
		t.Errorf("inverted range = %v, want empty", got)
	}
}

func TestWeekKey(t *testing.T) {
	// 2025-01-01 is a Wednesday (weekday 3): day 0+3=3, week 1.
	tests := []struct {
		date Date
		want string
	}{
		{NewDate(2025, time.January, 1), "2025-W01"},
		{NewDate(2025, time.January, 4), "2025-W01"},  // Saturday, day 3+3=6
		{NewDate(2025, time.January, 5), "2025-W02"},  // Sunday, day 4+3=7
		{NewDate(2025, time.July, 31), "2025-W31"},    // day 211+3=214, 214/7+1=31
		{NewDate(2025, time.December, 31), "2025-W53"},
	}
	for _, tt := range tests {
		t.Run(tt.date.String(), func(t *testing.T) {
			if got := tt.date.WeekKey(); got != tt.want {
				t.Errorf("WeekKey(%v) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestBucketKeys(t *testing.T) {
	d := NewDate(2025, time.July, 5)
	if got := d.MonthKey(); got != "2025-07" {
		t.Errorf("MonthKey = %q", got)
	}
	if got := d.YearKey(); got != "2025" {
		t.Errorf("YearKey = %q", got)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.July, 5)
	raw, err := d.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `"2025-07-05"` {
		t.Errorf("MarshalJSON = %s", raw)
	}
	var back Date
	if err := back.UnmarshalJSON(raw); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
