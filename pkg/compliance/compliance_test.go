package compliance_test

import (
	"testing"

	"driver-buddy/internal/model"
	"driver-buddy/pkg/compliance"
)

func sub(date string, minutes int, entries ...model.TimeEntry) model.DailySubmission {
	return model.DailySubmission{Date: date, TotalMinutes: minutes, Entries: entries}
}

func rules(fs []compliance.Finding) map[string]int {
	out := map[string]int{}
	for _, f := range fs {
		out[f.Rule]++
	}
	return out
}

func TestCheckEmpty(t *testing.T) {
	rep := compliance.Check(nil)
	if !rep.OK() || len(rep.Warnings) != 0 {
		t.Errorf("Check(nil) = %+v, want clean report", rep)
	}
}

func TestCheckDailyAndExtendedDays(t *testing.T) {
	subs := []model.DailySubmission{
		sub("2024-06-10", 9*60+30),
		sub("2024-06-11", 9*60+30),
		sub("2024-06-12", 9*60+30),
		sub("2024-06-13", 10*60+30),
	}
	got := rules(compliance.Check(subs).Violations)
	if got[compliance.RuleExtended] != 1 {
		t.Errorf("extended-day violations = %d, want 1", got[compliance.RuleExtended])
	}
	if got[compliance.RuleDaily] != 1 {
		t.Errorf("daily violations = %d, want 1", got[compliance.RuleDaily])
	}
}

func TestCheckWeeklyAndFortnight(t *testing.T) {
	var subs []model.DailySubmission
	// Six 9h days in the week of 2024-06-10 (54h), then six 9h days the next week.
	for _, d := range []string{"10", "11", "12", "13", "14", "15", "17", "18", "19", "20", "21", "22"} {
		subs = append(subs, sub("2024-06-"+d, 9*60))
	}
	rep := compliance.Check(subs)
	got := rules(rep.Violations)
	if got[compliance.RuleWeekly] != 0 {
		t.Errorf("weekly violations = %d, want 0", got[compliance.RuleWeekly])
	}
	if got[compliance.RuleFortnight] != 1 {
		t.Errorf("fortnight violations = %d, want 1", got[compliance.RuleFortnight])
	}
	if rules(rep.Warnings)[compliance.RuleAverageWeek] != 1 {
		t.Errorf("expected an average working week warning, got %+v", rep.Warnings)
	}
}

func TestCheckBreaks(t *testing.T) {
	noBreak := sub("2024-06-10", 300,
		model.TimeEntry{StartTime: "0600", EndTime: "0900"},
		model.TimeEntry{StartTime: "0920", EndTime: "1100"},
	)
	withBreak := sub("2024-06-11", 300,
		model.TimeEntry{StartTime: "0600", EndTime: "0900"},
		model.TimeEntry{StartTime: "0945", EndTime: "1145"},
	)
	got := rules(compliance.Check([]model.DailySubmission{noBreak, withBreak}).Violations)
	if got[compliance.RuleBreak] != 1 {
		t.Errorf("break violations = %d, want 1", got[compliance.RuleBreak])
	}
}

func TestCheckBreaksOverlappingEntries(t *testing.T) {
	tests := []struct {
		name string
		day  model.DailySubmission
		want int
	}{
		{"overlap counted once", sub("2024-06-10", 240,
			model.TimeEntry{StartTime: "0600", EndTime: "0900"},
			model.TimeEntry{StartTime: "0800", EndTime: "1000"},
		), 0},
		{"contained entry", sub("2024-06-11", 240,
			model.TimeEntry{StartTime: "0600", EndTime: "1000"},
			model.TimeEntry{StartTime: "0700", EndTime: "0800"},
		), 0},
		{"overlap still too long", sub("2024-06-12", 300,
			model.TimeEntry{StartTime: "0600", EndTime: "0900"},
			model.TimeEntry{StartTime: "0830", EndTime: "1100"},
		), 1},
	}
	for _, tt := range tests {
		got := rules(compliance.Check([]model.DailySubmission{tt.day}).Violations)
		if got[compliance.RuleBreak] != tt.want {
			t.Errorf("%s: break violations = %d, want %d", tt.name, got[compliance.RuleBreak], tt.want)
		}
	}
}
