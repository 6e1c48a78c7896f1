// Package views renders bot replies as plain text.
package views

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"driver-buddy/internal/app/service"
	"driver-buddy/internal/model"
	"driver-buddy/pkg/compliance"
	"driver-buddy/pkg/timesheet"
)

var ErrBadNumber = errors.New("not a number")

var symbols = map[string]string{"GBP": "£", "EUR": "€", "USD": "$"}

// Money formats v in the given ISO currency, e.g. "£12.50".
func Money(currency string, v float64) string {
	if sym, ok := symbols[strings.ToUpper(currency)]; ok {
		if v < 0 {
			return fmt.Sprintf("-%s%.2f", sym, -v)
		}
		return fmt.Sprintf("%s%.2f", sym, v)
	}
	return fmt.Sprintf("%s %.2f", currency, v)
}

func FormatHistory(v service.HistoryView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 %s\n\n", v.Label)
	if v.Totals.Count == 0 {
		b.WriteString("No pay saved for this period.")
		return b.String()
	}
	t := v.Totals
	money := func(x float64) string { return Money(v.Currency, x) }
	fmt.Fprintf(&b, "Total: %s (%d days, %s)\n", money(t.TotalPay), t.Count, v.Duration)
	fmt.Fprintf(&b, "Standard: %s · Overtime: %s\n", money(t.StandardPay), money(t.OvertimePay))
	if t.Tax > 0 {
		fmt.Fprintf(&b, "Tax: -%s\n", money(t.Tax))
	}
	if t.NI > 0 {
		fmt.Fprintf(&b, "NI: -%s\n", money(t.NI))
	}
	fmt.Fprintf(&b, "Net: %s\n", money(t.Net))
	if v.Goal > 0 {
		fmt.Fprintf(&b, "Goal: %.0f%% of %s\n", v.Progress, money(v.Goal))
	}
	for _, g := range v.Groups {
		fmt.Fprintf(&b, "\n%s  %s", g.Date, money(g.Total))
		for _, r := range g.Records {
			line := fmt.Sprintf("\n  • %dh%02d", r.StandardHours, r.StandardMinutes)
			if r.OvertimeHours > 0 || r.OvertimeMinutes > 0 {
				line += fmt.Sprintf(" + %dh%02d OT", r.OvertimeHours, r.OvertimeMinutes)
			}
			line += " = " + money(r.TotalPay)
			if r.Notes != "" {
				line += " (" + r.Notes + ")"
			}
			b.WriteString(line)
		}
	}
	return b.String()
}

func FormatPay(p model.DailyPay, currency string) string {
	money := func(x float64) string { return Money(currency, x) }
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Saved %s\n", p.Date)
	fmt.Fprintf(&b, "Standard %dh%02d × %s = %s\n", p.StandardHours, p.StandardMinutes, money(p.StandardRate), money(p.StandardPay))
	if p.OvertimeHours > 0 || p.OvertimeMinutes > 0 {
		fmt.Fprintf(&b, "Overtime %dh%02d × %s = %s\n", p.OvertimeHours, p.OvertimeMinutes, money(p.OvertimeRate), money(p.OvertimePay))
	}
	fmt.Fprintf(&b, "Total %s", money(p.TotalPay))
	if p.TaxAmount != nil {
		fmt.Fprintf(&b, "\nTax -%s", money(*p.TaxAmount))
	}
	if p.NIAmount != nil {
		fmt.Fprintf(&b, "\nNI -%s", money(*p.NIAmount))
	}
	return b.String()
}

func FormatEntries(entries []model.TimeEntry) string {
	if len(entries) == 0 {
		return "⏱ No time logged yet today.\nSend a shift as HHMM-HHMM, e.g. 0600-1430."
	}
	var b strings.Builder
	b.WriteString("⏱ Today so far:\n")
	for _, e := range entries {
		mins, err := timesheet.EntryMinutes(e)
		if err != nil {
			fmt.Fprintf(&b, "• %s-%s (invalid)\n", e.StartTime, e.EndTime)
			continue
		}
		fmt.Fprintf(&b, "• %s-%s  %s\n", e.StartTime, e.EndTime, timesheet.FormatMinutes(mins))
	}
	fmt.Fprintf(&b, "Total: %s", timesheet.FormatMinutes(timesheet.SumMinutes(entries)))
	return b.String()
}

func FormatSubmission(s model.DailySubmission) string {
	return fmt.Sprintf("✅ Submitted %s: %d entries, %s.", s.Date, len(s.Entries), timesheet.FormatMinutes(s.TotalMinutes))
}

func FormatSettings(s model.Settings) string {
	var b strings.Builder
	b.WriteString("⚙️ Settings\n")
	fmt.Fprintf(&b, "Standard rate: %s/h\n", Money(s.Currency, s.StandardRate()))
	fmt.Fprintf(&b, "Overtime rate: %s/h\n", Money(s.Currency, s.OvertimeRate()))
	fmt.Fprintf(&b, "Tax rate: %.0f%%\n", s.TaxRate*100)
	if s.WeeklyGoal > 0 {
		fmt.Fprintf(&b, "Weekly goal: %s\n", Money(s.Currency, s.WeeklyGoal))
	}
	if s.MonthlyGoal > 0 {
		fmt.Fprintf(&b, "Monthly goal: %s\n", Money(s.Currency, s.MonthlyGoal))
	}
	fmt.Fprintf(&b, "Storage: %s", s.StorageMode)
	return b.String()
}

func FormatCompliance(r compliance.Report) string {
	if r.OK() && len(r.Warnings) == 0 {
		return "⚖️ All submitted days are within the driving limits."
	}
	var b strings.Builder
	b.WriteString("⚖️ Driving limits")
	for _, f := range r.Violations {
		fmt.Fprintf(&b, "\n❌ %s: %s", f.Date, f.Message)
	}
	for _, f := range r.Warnings {
		fmt.Fprintf(&b, "\n⚠️ %s: %s", f.Date, f.Message)
	}
	return b.String()
}

// ParseHours reads "8", "8:30", "8h30" or "8.5" into hours and minutes.
func ParseHours(text string) (h, m int, err error) {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.TrimSuffix(s, "m")
	for _, sep := range []string{":", "h"} {
		if hs, ms, ok := strings.Cut(s, sep); ok {
			h, err1 := strconv.Atoi(strings.TrimSpace(hs))
			m := 0
			var err2 error
			if ms = strings.TrimSpace(ms); ms != "" {
				m, err2 = strconv.Atoi(ms)
			}
			if err1 != nil || err2 != nil || h < 0 || m < 0 || m > 59 {
				return 0, 0, fmt.Errorf("%w: %q", ErrBadNumber, text)
			}
			return h, m, nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadNumber, text)
	}
	total := int(f*60 + 0.5)
	return total / 60, total % 60, nil
}

// ParseAmount reads a non-negative money or rate value, allowing a leading
// currency symbol or a trailing percent sign.
func ParseAmount(text string) (float64, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimLeft(s, "£€$")
	s = strings.TrimSuffix(s, "%")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, text)
	}
	return v, nil
}
