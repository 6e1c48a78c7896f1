package payroll

import "driver-buddy/internal/model"

// PayInput is what a driver enters when saving or editing a pay record.
type PayInput struct {
	Date              string  `json:"date"`
	StandardHours     int     `json:"standardHours"`
	StandardMinutes   int     `json:"standardMinutes"`
	StandardRate      float64 `json:"standardRate"`
	OvertimeHours     int     `json:"overtimeHours"`
	OvertimeMinutes   int     `json:"overtimeMinutes"`
	OvertimeRate      float64 `json:"overtimeRate"`
	CalculationMethod string  `json:"calculationMethod"`
	Notes             string  `json:"notes"`
}

// HoursPay is the pay for h hours and m minutes at rate.
func HoursPay(h, m int, rate float64) float64 {
	return (float64(h) + float64(m)/60) * rate
}

// ComputePay fills every derived field of a record from its inputs. Inputs
// are taken as given, including zero or negative values.
func ComputePay(in PayInput, opts Options) model.DailyPay {
	p := model.DailyPay{
		Date:              in.Date,
		StandardHours:     in.StandardHours,
		StandardMinutes:   in.StandardMinutes,
		StandardRate:      in.StandardRate,
		OvertimeHours:     in.OvertimeHours,
		OvertimeMinutes:   in.OvertimeMinutes,
		OvertimeRate:      in.OvertimeRate,
		CalculationMethod: in.CalculationMethod,
		Notes:             in.Notes,
	}
	if p.CalculationMethod != model.MethodTimeTracker {
		p.CalculationMethod = model.MethodManualHours
	}
	p.StandardPay = HoursPay(in.StandardHours, in.StandardMinutes, in.StandardRate)
	p.OvertimePay = HoursPay(in.OvertimeHours, in.OvertimeMinutes, in.OvertimeRate)
	p.TotalPay = p.StandardPay + p.OvertimePay

	if opts.TaxEnabled {
		tax := p.TotalPay * opts.TaxRate
		after := p.TotalPay - tax
		rate := opts.TaxRate
		p.TaxAmount, p.AfterTaxPay, p.TaxRate = &tax, &after, &rate
	}
	if opts.NIEnabled {
		ni := NationalInsurance(p.TotalPay)
		after := p.TotalPay - ni
		p.NIAmount, p.AfterNIPay = &ni, &after
	}
	return p
}
