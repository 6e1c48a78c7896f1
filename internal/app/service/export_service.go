package service

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"driver-buddy/internal/model"
	"driver-buddy/pkg/payroll"
	"driver-buddy/pkg/period"
)

var csvHeader = []string{
	"Date", "Submission Time", "Method",
	"Standard Hours", "Standard Minutes", "Standard Rate", "Standard Pay",
	"Overtime Hours", "Overtime Minutes", "Overtime Rate", "Overtime Pay",
	"Total Pay", "Tax", "After Tax", "NI", "After NI", "Notes",
}

type ExportService struct {
	Pay *PayService
}

func NewExportService(pay *PayService) *ExportService {
	return &ExportService{Pay: pay}
}

// WriteCSV writes the user's pay records in the given period, oldest first.
func (s *ExportService) WriteCSV(ctx context.Context, w io.Writer, userID int64, kind period.Kind, ref time.Time) error {
	settings, err := s.Pay.Settings.Load(ctx, userID)
	if err != nil {
		return err
	}
	pays, err := s.Pay.List(ctx, userID)
	if err != nil {
		return err
	}
	rng := period.ResolveRange(kind, ref, period.ParseWeekStart(settings.WeekStartDay))
	return WritePayCSV(w, payroll.FilterByPeriod(pays, rng))
}

func WritePayCSV(w io.Writer, pays []model.DailyPay) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range pays {
		row := []string{
			p.Date, p.SubmissionTime, p.CalculationMethod,
			strconv.Itoa(p.StandardHours), strconv.Itoa(p.StandardMinutes), money(p.StandardRate), money(p.StandardPay),
			strconv.Itoa(p.OvertimeHours), strconv.Itoa(p.OvertimeMinutes), money(p.OvertimeRate), money(p.OvertimePay),
			money(p.TotalPay), optMoney(p.TaxAmount), optMoney(p.AfterTaxPay), optMoney(p.NIAmount), optMoney(p.AfterNIPay),
			p.Notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func optMoney(v *float64) string {
	if v == nil {
		return ""
	}
	return money(*v)
}
