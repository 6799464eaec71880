// ABOUTME: Tests for the calendar-date helpers.
// ABOUTME: Covers day arithmetic, trailing windows, and malformed input.
package dates

import "testing"

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2024-01-06", "2024-01-07", 1},
		{"2024-01-07", "2024-01-06", 1},
		{"2024-01-01", "2024-01-01", 0},
		{"2024-01-31", "2024-02-01", 1},
		{"2024-02-28", "2024-03-01", 2}, // leap year
		{"2023-12-31", "2024-01-01", 1},
		{"2024-01-01", "2024-01-08", 7},
	}

	for _, tt := range tests {
		if got := DaysBetween(tt.a, tt.b); got != tt.want {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDaysBetweenMalformed(t *testing.T) {
	// Malformed dates must read as an unbounded gap, never as adjacency.
	if got := DaysBetween("not-a-date", "2024-01-01"); got <= 1 {
		t.Errorf("DaysBetween with bad input = %d, want a large gap", got)
	}
	if got := DaysBetween("2024-01-01", ""); got <= 1 {
		t.Errorf("DaysBetween with empty input = %d, want a large gap", got)
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		date string
		n    int
		want string
	}{
		{"2024-01-01", 1, "2024-01-02"},
		{"2024-01-31", 1, "2024-02-01"},
		{"2024-03-01", -1, "2024-02-29"},
		{"2024-01-01", 0, "2024-01-01"},
	}

	for _, tt := range tests {
		got, err := AddDays(tt.date, tt.n)
		if err != nil {
			t.Fatalf("AddDays(%s, %d): %v", tt.date, tt.n, err)
		}
		if got != tt.want {
			t.Errorf("AddDays(%s, %d) = %s, want %s", tt.date, tt.n, got, tt.want)
		}
	}

	if _, err := AddDays("bogus", 1); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestLastN(t *testing.T) {
	got, err := LastN("2024-01-07", 7)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04",
		"2024-01-05", "2024-01-06", "2024-01-07",
	}
	if len(got) != len(want) {
		t.Fatalf("LastN returned %d dates, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("LastN[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLastNAcrossMonthBoundary(t *testing.T) {
	got, err := LastN("2024-03-02", 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"2024-02-29", "2024-03-01", "2024-03-02"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("LastN[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestWeekday(t *testing.T) {
	if got := Weekday("2024-01-01"); got != "Mon" {
		t.Errorf("Weekday(2024-01-01) = %s, want Mon", got)
	}
	if got := Weekday("bad"); got != "" {
		t.Errorf("Weekday(bad) = %q, want empty", got)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "2024/01/01", "01-01-2024", "2024-13-40"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", s)
		}
	}
}
