package calendar

import "testing"

func TestBuildCalendarLayout(t *testing.T) {
	// June 2024 starts on a Saturday: 5 padding cells, then 30 days in 5 rows.
	title, markup := BuildCalendar(2024, 6)
	if title != "Pick a date: June 2024" {
		t.Errorf("title = %q", title)
	}
	rows := markup.InlineKeyboard
	if len(rows) != 1+5+1 {
		t.Fatalf("got %d rows, want header, 5 weeks and navigation", len(rows))
	}
	first := rows[1][5]
	if first.Unique != KeyDay || first.Data != "2024-06-01" || first.Text != "1" {
		t.Errorf("first day button = %+v", first)
	}
	for i, row := range rows[:len(rows)-1] {
		if len(row) != 7 {
			t.Errorf("row %d has %d buttons, want 7", i, len(row))
		}
	}
	nav := rows[len(rows)-1]
	if nav[0].Data != "2024-05" || nav[1].Data != "2024-07" {
		t.Errorf("navigation = %q / %q", nav[0].Data, nav[1].Data)
	}
}

func TestBuildCalendarNormalisesMonth(t *testing.T) {
	title, markup := BuildCalendar(2024, 13)
	if title != "Pick a date: January 2025" {
		t.Errorf("title = %q", title)
	}
	nav := markup.InlineKeyboard[len(markup.InlineKeyboard)-1]
	if nav[0].Data != "2024-12" {
		t.Errorf("prev = %q, want 2024-12", nav[0].Data)
	}
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		in    string
		y, m  int
		valid bool
	}{
		{"2024-02", 2024, 2, true},
		{"2024-13", 0, 0, false},
		{"june", 0, 0, false},
		{"2024-x", 0, 0, false},
	}
	for _, tt := range tests {
		y, m, ok := ParseMonth(tt.in)
		if ok != tt.valid || y != tt.y || m != tt.m {
			t.Errorf("ParseMonth(%q) = %d, %d, %v", tt.in, y, m, ok)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := daysInMonth(2024, 2); got != 29 {
		t.Errorf("Feb 2024 = %d days", got)
	}
	if got := daysInMonth(2023, 2); got != 28 {
		t.Errorf("Feb 2023 = %d days", got)
	}
}
