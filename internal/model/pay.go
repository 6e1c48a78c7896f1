package model

// Calculation methods recorded on a DailyPay.
const (
	MethodTimeTracker = "timeTracker"
	MethodManualHours = "manualHours"
)

// DailyPay is one saved pay calculation. Derived fields are recomputed on
// every save or edit; the optional deduction fields are only present when the
// corresponding feature was enabled at that time.
type DailyPay struct {
	ID                string   `json:"id"`
	Date              string   `json:"date"`
	Timestamp         string   `json:"timestamp"`
	SubmissionTime    string   `json:"submissionTime"`
	StandardHours     int      `json:"standardHours"`
	StandardMinutes   int      `json:"standardMinutes"`
	StandardRate      float64  `json:"standardRate"`
	StandardPay       float64  `json:"standardPay"`
	OvertimeHours     int      `json:"overtimeHours"`
	OvertimeMinutes   int      `json:"overtimeMinutes"`
	OvertimeRate      float64  `json:"overtimeRate"`
	OvertimePay       float64  `json:"overtimePay"`
	TotalPay          float64  `json:"totalPay"`
	CalculationMethod string   `json:"calculationMethod"`
	TaxAmount         *float64 `json:"taxAmount,omitempty"`
	AfterTaxPay       *float64 `json:"afterTaxPay,omitempty"`
	TaxRate           *float64 `json:"taxRate,omitempty"`
	NIAmount          *float64 `json:"niAmount,omitempty"`
	AfterNIPay        *float64 `json:"afterNiPay,omitempty"`
	Notes             string   `json:"notes,omitempty"`
}
