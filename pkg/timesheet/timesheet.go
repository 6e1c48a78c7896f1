package timesheet

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"driver-buddy/internal/model"
)

// ErrInvalidClock is returned for anything that is not a 24h HHMM string.
var ErrInvalidClock = errors.New("time must be HHMM in 24h format")

// ParseHHMM returns minutes past midnight for a clock string like "0730".
func ParseHHMM(s string) (int, error) {
	if len(s) != 4 {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidClock)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%q: %w", s, ErrInvalidClock)
		}
	}
	h, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidClock)
	}
	m, err := strconv.Atoi(s[2:])
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidClock)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidClock)
	}
	return h*60 + m, nil
}

// EntryMinutes is the length of one segment. An end before the start means
// the shift ran past midnight.
func EntryMinutes(e model.TimeEntry) (int, error) {
	start, err := ParseHHMM(e.StartTime)
	if err != nil {
		return 0, err
	}
	end, err := ParseHHMM(e.EndTime)
	if err != nil {
		return 0, err
	}
	if end < start {
		end += 24 * 60
	}
	return end - start, nil
}

// SumMinutes totals the valid entries and skips malformed ones.
func SumMinutes(entries []model.TimeEntry) int {
	total := 0
	for _, e := range entries {
		if m, err := EntryMinutes(e); err == nil {
			total += m
		}
	}
	return total
}

// Submit snapshots a day's entries.
func Submit(date time.Time, entries []model.TimeEntry, now time.Time) model.DailySubmission {
	snapshot := append([]model.TimeEntry(nil), entries...)
	return model.DailySubmission{
		Date:         date.Format("2006-01-02"),
		Timestamp:    now.UTC().Format(time.RFC3339),
		Entries:      snapshot,
		TotalMinutes: SumMinutes(snapshot),
	}
}

// FormatMinutes renders minutes as "8h 05m".
func FormatMinutes(total int) string {
	return fmt.Sprintf("%dh %02dm", total/60, total%60)
}
