// Package compliance checks submitted days against GB/EU drivers' hours
// limits. Every minute in a submission is treated as driving time.
package compliance

import (
	"fmt"
	"sort"
	"time"

	"driver-buddy/internal/model"
	"driver-buddy/pkg/period"
	"driver-buddy/pkg/timesheet"
)

const (
	DailyLimit          = 9 * 60
	ExtendedDailyLimit  = 10 * 60
	ExtendedDaysPerWeek = 2
	WeeklyLimit         = 56 * 60
	FortnightLimit      = 90 * 60
	DrivingBeforeBreak  = 4*60 + 30
	BreakLength         = 45
	AverageWeekLimit    = 48 * 60
	MaxWorkingWeek      = 60 * 60
)

// Rule codes carried on findings.
const (
	RuleDaily       = "daily-driving"
	RuleExtended    = "extended-days"
	RuleWeekly      = "weekly-driving"
	RuleFortnight   = "fortnight-driving"
	RuleBreak       = "break"
	RuleAverageWeek = "average-working-week"
	RuleWorkingWeek = "max-working-week"
)

type Finding struct {
	Rule    string `json:"rule"`
	Date    string `json:"date"`
	Message string `json:"message"`
}

type Report struct {
	Violations []Finding `json:"violations"`
	Warnings   []Finding `json:"warnings"`
}

// OK reports whether no limit was broken.
func (r Report) OK() bool { return len(r.Violations) == 0 }

type day struct {
	date    time.Time
	minutes int
	entries []model.TimeEntry
}

// Check evaluates every rule over the submissions. Submissions with an
// unparseable date are ignored.
func Check(subs []model.DailySubmission) Report {
	rep := Report{Violations: []Finding{}, Warnings: []Finding{}}

	days := mergeDays(subs)
	if len(days) == 0 {
		return rep
	}

	weeks := map[time.Time]int{}
	extended := map[time.Time]int{}
	for _, d := range days {
		key := d.date.Format(period.DateLayout)
		week := period.ResolveRange(period.Week, d.date, time.Monday).Start
		weeks[week] += d.minutes

		switch {
		case d.minutes > ExtendedDailyLimit:
			rep.Violations = append(rep.Violations, Finding{RuleDaily, key,
				fmt.Sprintf("drove %s, over the 10h extended daily limit", timesheet.FormatMinutes(d.minutes))})
		case d.minutes > DailyLimit:
			extended[week]++
			if extended[week] > ExtendedDaysPerWeek {
				rep.Violations = append(rep.Violations, Finding{RuleExtended, key,
					"more than two 10h days in the same week"})
			}
		}

		if longest := longestStint(d.entries); longest > DrivingBeforeBreak {
			rep.Violations = append(rep.Violations, Finding{RuleBreak, key,
				fmt.Sprintf("drove %s without a 45m break", timesheet.FormatMinutes(longest))})
		}
	}

	starts := make([]time.Time, 0, len(weeks))
	for w := range weeks {
		starts = append(starts, w)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	total := 0
	for _, w := range starts {
		key := w.Format(period.DateLayout)
		minutes := weeks[w]
		total += minutes
		if minutes > WeeklyLimit {
			rep.Violations = append(rep.Violations, Finding{RuleWeekly, key,
				fmt.Sprintf("drove %s in the week, over 56h", timesheet.FormatMinutes(minutes))})
		}
		if minutes > MaxWorkingWeek {
			rep.Warnings = append(rep.Warnings, Finding{RuleWorkingWeek, key,
				"over 60h of working time in one week"})
		}
		prev := w.AddDate(0, 0, -7)
		if pm, ok := weeks[prev]; ok && pm+minutes > FortnightLimit {
			rep.Violations = append(rep.Violations, Finding{RuleFortnight, key,
				fmt.Sprintf("drove %s over two weeks, over 90h", timesheet.FormatMinutes(pm+minutes))})
		}
	}

	if avg := total / len(starts); avg > AverageWeekLimit {
		rep.Warnings = append(rep.Warnings, Finding{RuleAverageWeek, starts[0].Format(period.DateLayout),
			fmt.Sprintf("average week of %s is over 48h", timesheet.FormatMinutes(avg))})
	}
	return rep
}

func mergeDays(subs []model.DailySubmission) []day {
	byDate := map[string]*day{}
	for _, s := range subs {
		d, err := period.ParseDate(s.Date)
		if err != nil {
			continue
		}
		cur, ok := byDate[s.Date]
		if !ok {
			cur = &day{date: d}
			byDate[s.Date] = cur
		}
		cur.minutes += s.TotalMinutes
		cur.entries = append(cur.entries, s.Entries...)
	}
	out := make([]day, 0, len(byDate))
	for _, d := range byDate {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].date.Before(out[j].date) })
	return out
}

// longestStint is the longest run of driving not interrupted by a gap of at
// least BreakLength minutes. Overlapping entries count their shared minutes
// once.
func longestStint(entries []model.TimeEntry) int {
	type span struct{ start, end int }
	spans := make([]span, 0, len(entries))
	for _, e := range entries {
		start, err := timesheet.ParseHHMM(e.StartTime)
		if err != nil {
			continue
		}
		length, err := timesheet.EntryMinutes(e)
		if err != nil {
			continue
		}
		spans = append(spans, span{start, start + length})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	longest, run, lastEnd := 0, 0, -1
	for _, s := range spans {
		switch {
		case lastEnd >= 0 && s.start < lastEnd:
			if s.end > lastEnd {
				run += s.end - lastEnd
			}
		case lastEnd >= 0 && s.start-lastEnd < BreakLength:
			run += s.end - s.start
		default:
			run = s.end - s.start
		}
		if run > longest {
			longest = run
		}
		if s.end > lastEnd {
			lastEnd = s.end
		}
	}
	return longest
}
