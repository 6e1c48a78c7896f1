package timesheet_test

import (
	"errors"
	"testing"
	"time"

	"driver-buddy/internal/model"
	"driver-buddy/pkg/timesheet"
)

func TestParseHHMM(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"0000", 0, false},
		{"0730", 450, false},
		{"2359", 1439, false},
		{"2400", 0, true},
		{"0760", 0, true},
		{"730", 0, true},
		{"ab30", 0, true},
		{"07+5", 0, true},
		{"+130", 0, true},
		{"-130", 0, true},
		{"07 5", 0, true},
	}
	for _, tt := range tests {
		got, err := timesheet.ParseHHMM(tt.in)
		if tt.wantErr {
			if !errors.Is(err, timesheet.ErrInvalidClock) {
				t.Errorf("ParseHHMM(%q) err = %v, want ErrInvalidClock", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseHHMM(%q) = %d, %v; want %d", tt.in, got, err, tt.want)
		}
	}
}

func TestEntryMinutesOvernight(t *testing.T) {
	got, err := timesheet.EntryMinutes(model.TimeEntry{StartTime: "2200", EndTime: "0130"})
	if err != nil {
		t.Fatal(err)
	}
	if got != 210 {
		t.Errorf("EntryMinutes = %d, want 210", got)
	}
}

func TestSubmit(t *testing.T) {
	entries := []model.TimeEntry{
		{ID: 1, StartTime: "0600", EndTime: "1030"},
		{ID: 2, StartTime: "1115", EndTime: "1500"},
		{ID: 3, StartTime: "bad", EndTime: "1500"},
	}
	now := time.Date(2024, 6, 10, 18, 0, 0, 0, time.UTC)
	sub := timesheet.Submit(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), entries, now)

	if sub.Date != "2024-06-10" {
		t.Errorf("date = %q", sub.Date)
	}
	if sub.TotalMinutes != 270+225 {
		t.Errorf("total minutes = %d, want %d", sub.TotalMinutes, 270+225)
	}
	entries[0].StartTime = "0000"
	if sub.Entries[0].StartTime != "0600" {
		t.Error("submission must not alias the working set")
	}
	if got := timesheet.FormatMinutes(sub.TotalMinutes); got != "8h 15m" {
		t.Errorf("FormatMinutes = %q", got)
	}
}
