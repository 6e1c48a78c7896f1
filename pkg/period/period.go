package period

import (
	"fmt"
	"strings"
	"time"
)

// Kind is the bucketing granularity of a history view.
type Kind string

const (
	Week  Kind = "week"
	Month Kind = "month"
	All   Kind = "all"
)

const DateLayout = "2006-01-02"

// Range is an inclusive interval. An unbounded range matches every date.
type Range struct {
	Start     time.Time
	End       time.Time
	Unbounded bool
}

// Contains reports whether t lies in [Start, End].
func (r Range) Contains(t time.Time) bool {
	if r.Unbounded {
		return true
	}
	return !t.Before(r.Start) && !t.After(r.End)
}

func (r Range) String() string {
	if r.Unbounded {
		return "[all]"
	}
	return "[" + r.Start.Format(DateLayout) + ", " + r.End.Format(DateLayout) + "]"
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseKind falls back to Week for anything it does not recognise.
func ParseKind(s string) Kind {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case Month:
		return Month
	case All:
		return All
	default:
		return Week
	}
}

// ParseWeekStart maps a weekday name to time.Weekday, defaulting to Monday.
func ParseWeekStart(s string) time.Weekday {
	if wd, ok := weekdays[strings.ToLower(strings.TrimSpace(s))]; ok {
		return wd
	}
	return time.Monday
}

// ValidWeekStart reports whether s is one of the seven accepted names.
func ValidWeekStart(s string) bool {
	_, ok := weekdays[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// WeekdayName is the lower-case name used in settings.
func WeekdayName(wd time.Weekday) string {
	return strings.ToLower(wd.String())
}

// ParseDate parses a YYYY-MM-DD calendar date at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// CalendarDay is ref's calendar date at UTC midnight, the same zone ParseDate
// yields, so ranges and stored dates always compare in one zone.
func CalendarDay(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
}

// ResolveRange computes the window of the given kind that contains ref's
// calendar date.
func ResolveRange(kind Kind, ref time.Time, weekStart time.Weekday) Range {
	ref = CalendarDay(ref)
	switch kind {
	case All:
		return Range{Unbounded: true}
	case Month:
		first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		last := first.AddDate(0, 1, -1)
		return Range{Start: first, End: endOfDay(last)}
	default:
		delta := (int(ref.Weekday()) - int(weekStart) + 7) % 7
		start := startOfDay(ref).AddDate(0, 0, -delta)
		return Range{Start: start, End: endOfDay(start.AddDate(0, 0, 6))}
	}
}

// Label renders the short heading shown above a history view.
func Label(kind Kind, ref time.Time, weekStart time.Weekday) string {
	switch kind {
	case All:
		return "All Time"
	case Month:
		return ref.Format("January 2006")
	default:
		r := ResolveRange(Week, ref, weekStart)
		return fmt.Sprintf("%s %d %s - %d %s",
			r.Start.Format("Mon"), r.Start.Day(), r.Start.Format("Jan"),
			r.End.Day(), r.End.Format("Jan"))
	}
}

// Navigate moves ref one whole period forward (direction > 0) or back.
func Navigate(kind Kind, ref time.Time, direction int) time.Time {
	step := 1
	if direction < 0 {
		step = -1
	} else if direction == 0 {
		return ref
	}
	switch kind {
	case All:
		return ref
	case Month:
		return time.Date(ref.Year(), ref.Month()+time.Month(step), 1, 0, 0, 0, 0, ref.Location())
	default:
		return ref.AddDate(0, 0, 7*step)
	}
}
