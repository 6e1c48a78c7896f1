package payroll

import (
	"fmt"
	"sort"

	"driver-buddy/internal/model"
	"driver-buddy/pkg/period"
)

// NI policy. The daily threshold is the annual primary threshold pro-rated
// per day; only the 12% main band is applied.
const (
	NIDailyThreshold = 34.44
	NIRate           = 0.12
)

// Options are the deduction toggles currently in force.
type Options struct {
	TaxEnabled bool
	TaxRate    float64
	NIEnabled  bool
}

// OptionsFromSettings picks the deduction toggles out of a driver's settings.
func OptionsFromSettings(s model.Settings) Options {
	return Options{TaxEnabled: s.EnableTax, TaxRate: s.TaxRate, NIEnabled: s.EnableNI}
}

// Totals is the rollup of a set of pay records.
type Totals struct {
	Count        int     `json:"count"`
	TotalPay     float64 `json:"totalPay"`
	StandardPay  float64 `json:"standardPay"`
	OvertimePay  float64 `json:"overtimePay"`
	TotalHours   int     `json:"totalHours"`
	TotalMinutes int     `json:"totalMinutes"`
	Tax          float64 `json:"totalTax"`
	AfterTax     float64 `json:"afterTaxPay"`
	NI           float64 `json:"totalNi"`
	AfterNI      float64 `json:"afterNiPay"`
	Net          float64 `json:"netPay"`
}

// Duration folds the raw minute sum into hours for display.
func (t Totals) Duration() string {
	h := t.TotalHours + t.TotalMinutes/60
	return fmt.Sprintf("%dh %dm", h, t.TotalMinutes%60)
}

// DayGroup is the set of records saved for one calendar date.
type DayGroup struct {
	Date    string           `json:"date"`
	Records []model.DailyPay `json:"records"`
	Total   float64          `json:"total"`
}

// NationalInsurance returns the NI due on one day's earnings.
func NationalInsurance(earnings float64) float64 {
	if earnings <= NIDailyThreshold {
		return 0
	}
	return (earnings - NIDailyThreshold) * NIRate
}

// FilterByPeriod keeps the records whose date falls in rng. Records with a
// missing or unparseable date are dropped unless the range is unbounded.
func FilterByPeriod(records []model.DailyPay, rng period.Range) []model.DailyPay {
	out := make([]model.DailyPay, 0, len(records))
	for _, r := range records {
		if rng.Unbounded {
			out = append(out, r)
			continue
		}
		d, err := period.ParseDate(r.Date)
		if err != nil {
			continue
		}
		if rng.Contains(d) {
			out = append(out, r)
		}
	}
	return out
}

// GroupByDate buckets records by their date string, keeping input order
// within each bucket.
func GroupByDate(records []model.DailyPay) map[string][]model.DailyPay {
	groups := make(map[string][]model.DailyPay)
	for _, r := range records {
		groups[r.Date] = append(groups[r.Date], r)
	}
	return groups
}

// SortedGroups returns the display order: newest date first, and newest
// timestamp first inside each day.
func SortedGroups(records []model.DailyPay) []DayGroup {
	groups := GroupByDate(records)
	out := make([]DayGroup, 0, len(groups))
	for date, recs := range groups {
		sorted := append([]model.DailyPay(nil), recs...)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Timestamp > sorted[j].Timestamp
		})
		var total float64
		for _, r := range sorted {
			total += r.TotalPay
		}
		out = append(out, DayGroup{Date: date, Records: sorted, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// taxFor returns the stored tax when present, else recomputes it.
func taxFor(r model.DailyPay, rate float64) float64 {
	if r.TaxAmount != nil {
		return *r.TaxAmount
	}
	return r.TotalPay * rate
}

func niFor(r model.DailyPay) float64 {
	if r.NIAmount != nil {
		return *r.NIAmount
	}
	return NationalInsurance(r.TotalPay)
}

// Aggregate sums records into period totals.
func Aggregate(records []model.DailyPay, opts Options) Totals {
	var t Totals
	for _, r := range records {
		t.Count++
		t.TotalPay += r.TotalPay
		t.StandardPay += r.StandardPay
		t.OvertimePay += r.OvertimePay
		t.TotalHours += r.StandardHours + r.OvertimeHours
		t.TotalMinutes += r.StandardMinutes + r.OvertimeMinutes

		if opts.TaxEnabled {
			tax := taxFor(r, opts.TaxRate)
			t.Tax += tax
			t.AfterTax += r.TotalPay - tax
		} else {
			if r.TaxAmount != nil {
				t.Tax += *r.TaxAmount
			}
			if r.AfterTaxPay != nil {
				t.AfterTax += *r.AfterTaxPay
			}
		}

		if opts.NIEnabled {
			ni := niFor(r)
			t.NI += ni
			t.AfterNI += r.TotalPay - ni
		} else {
			if r.NIAmount != nil {
				t.NI += *r.NIAmount
			}
			if r.AfterNIPay != nil {
				t.AfterNI += *r.AfterNIPay
			}
		}
	}

	switch {
	case opts.TaxEnabled && opts.NIEnabled:
		t.Net = t.TotalPay - t.Tax - t.NI
	case opts.TaxEnabled:
		t.Net = t.AfterTax
	case opts.NIEnabled:
		t.Net = t.AfterNI
	default:
		t.Net = t.TotalPay
	}
	return t
}

// Progress is the percentage of goal reached by amount. A zero or negative
// goal reports 0.
func Progress(amount, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	p := amount / goal * 100
	if p < 0 {
		return 0
	}
	return p
}
